package timezone_test

import (
	"testing"
	"time"
	"tzconv/shared/constant"
	"tzconv/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "known zone", id: "Europe/London"},
		{name: "nested zone", id: "America/Argentina/Buenos_Aires"},
		{name: "unknown zone", id: "Invalid/Timezone", wantErr: true},
		{name: "empty id", id: "", wantErr: true},
		{name: "case sensitive", id: "europe/london", wantErr: true},
		{name: "host zone alias", id: "Local", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := timezone.Load(tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, loc)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, loc.String())
		})
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "utc", offset: 0, want: "+00:00"},
		{name: "half hour east", offset: 5*3600 + 30*60, want: "+05:30"},
		{name: "quarter hour east", offset: 5*3600 + 45*60, want: "+05:45"},
		{name: "west", offset: -4 * 3600, want: "-04:00"},
		{name: "half hour west", offset: -(3*3600 + 30*60), want: "-03:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.FixedZone("test", tt.offset))

			assert.Equal(t, tt.want, timezone.FormatOffset(at))
		})
	}
}

func TestOffsetOf(t *testing.T) {
	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		id   string
		at   time.Time
		want string
	}{
		{name: "new york winter", id: "America/New_York", at: winter, want: "-05:00"},
		{name: "new york summer", id: "America/New_York", at: summer, want: "-04:00"},
		{name: "london summer", id: "Europe/London", at: summer, want: "+01:00"},
		{name: "kolkata", id: constant.TargetTimezoneID, at: summer, want: constant.TargetOffset},
		{name: "unknown id falls back to zero", id: "Bogus/Zone", at: winter, want: constant.ZeroOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.OffsetOf(tt.id, tt.at))
		})
	}
}

func TestParseIn(t *testing.T) {
	newYork, err := timezone.Load("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "naive reading is localized",
			value: "2024-01-15T12:00:00",
			want:  time.Date(2024, 1, 15, 12, 0, 0, 0, newYork),
		},
		{
			name:  "naive reading with space separator",
			value: "2024-01-15 08:30:00",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, newYork),
		},
		{
			name:  "naive reading without seconds",
			value: "2024-01-15T08:30",
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, newYork),
		},
		{
			name:  "date only",
			value: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, newYork),
		},
		{
			name:  "utc reading is converted",
			value: "2024-01-15T17:00:00Z",
			want:  time.Date(2024, 1, 15, 12, 0, 0, 0, newYork),
		},
		{
			name:  "offset reading is converted",
			value: "2024-01-15T22:30:00+05:30",
			want:  time.Date(2024, 1, 15, 12, 0, 0, 0, newYork),
		},
		{
			name:    "garbage",
			value:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseIn(tt.value, newYork)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, newYork, got.Location())
		})
	}
}

func TestParseInAcrossTransitions(t *testing.T) {
	newYork, err := timezone.Load("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name       string
		value      string
		wantClock  string
		wantOffset string
		wantUTC    time.Time
	}{
		{
			name:       "clocks set back resolve to standard time",
			value:      "2024-11-03T01:30:00",
			wantClock:  "01:30:00",
			wantOffset: "-05:00",
			wantUTC:    time.Date(2024, 11, 3, 6, 30, 0, 0, time.UTC),
		},
		{
			name:       "skipped reading keeps its wall clock",
			value:      "2024-03-10T02:30:00",
			wantClock:  "02:30:00",
			wantOffset: "-05:00",
			wantUTC:    time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC),
		},
		{
			name:       "reading after the jump",
			value:      "2024-03-10T03:30:00",
			wantClock:  "03:30:00",
			wantOffset: "-04:00",
			wantUTC:    time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC),
		},
		{
			name:       "reading after the overlap",
			value:      "2024-11-03T02:30:00",
			wantClock:  "02:30:00",
			wantOffset: "-05:00",
			wantUTC:    time.Date(2024, 11, 3, 7, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseIn(tt.value, newYork)

			require.NoError(t, err)
			assert.Equal(t, tt.wantClock, got.Format(constant.TimeLayout))
			assert.Equal(t, tt.wantOffset, timezone.FormatOffset(got))
			assert.True(t, tt.wantUTC.Equal(got), "want %s, got %s", tt.wantUTC, got.UTC())
		})
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	clock := timezone.FixedClock{At: at}

	assert.Equal(t, at, clock.Now())
	assert.False(t, timezone.NewSystemClock().Now().IsZero())
}
