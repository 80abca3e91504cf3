package timezone

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"tzconv/shared/constant"

	// Embedded IANA database; hosts without /usr/share/zoneinfo resolve the same rules.
	_ "time/tzdata"
)

var ErrEmptyTimezone = errors.New("timezone identifier is empty")

var (
	zonedLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04Z07:00",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		time.DateOnly,
	}
)

// Load resolves an IANA identifier against the rule database.
func Load(id string) (*time.Location, error) {
	if id == "" {
		return nil, ErrEmptyTimezone
	}

	// "Local" names the host zone, not an IANA entry.
	if id == time.Local.String() {
		return nil, fmt.Errorf("unknown time zone %s", id)
	}

	// LoadLocation already reports "unknown time zone <id>"
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return loc, nil
}

// FormatOffset renders the UTC offset of t as ±HH:MM.
func FormatOffset(t time.Time) string {
	_, seconds := t.Zone()

	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// OffsetOf returns the offset of id at the given instant, or "+00:00" when the
// rule database does not know id.
func OffsetOf(id string, at time.Time) string {
	loc, err := Load(id)
	if err != nil {
		return constant.ZeroOffset
	}

	return FormatOffset(at.In(loc))
}

// ParseIn parses an ISO 8601 date-time into loc. Readings that carry a zone are
// converted to loc; naive readings are taken as wall-clock time in loc.
func ParseIn(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("datetime is empty")
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}

	for _, layout := range naiveLayouts {
		if wall, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return localize(wall, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid isoformat string: '%s'", value)
}

type zoneRule struct {
	name   string
	offset int
	dst    bool
}

// localize reads the clock fields of a UTC-parsed reading as wall-clock time in
// loc. Ambiguous readings (clocks set back) resolve to standard time. Readings
// that fall into a gap (clocks set forward) keep their wall clock with the
// standard offset of the transition.
func localize(fields time.Time, loc *time.Location) time.Time {
	rules := rulesAround(fields, loc)

	var matches []time.Time

	for _, rule := range rules {
		t := fields.Add(-time.Duration(rule.offset) * time.Second).In(loc)
		if _, offset := t.Zone(); offset == rule.offset {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		rule := standardRule(rules)

		return time.Date(fields.Year(), fields.Month(), fields.Day(),
			fields.Hour(), fields.Minute(), fields.Second(), fields.Nanosecond(),
			time.FixedZone(rule.name, rule.offset))
	case 1:
		return matches[0]
	}

	for _, t := range matches {
		if !t.IsDST() {
			return t
		}
	}

	return matches[0]
}

// rulesAround collects the distinct zone rules in effect a day either side of
// the wall clock, which covers any single transition.
func rulesAround(fields time.Time, loc *time.Location) []zoneRule {
	var rules []zoneRule

	for _, at := range []time.Time{fields.Add(-24 * time.Hour), fields, fields.Add(24 * time.Hour)} {
		local := at.In(loc)
		name, offset := local.Zone()

		rule := zoneRule{name: name, offset: offset, dst: local.IsDST()}
		if !slices.Contains(rules, rule) {
			rules = append(rules, rule)
		}
	}

	return rules
}

func standardRule(rules []zoneRule) zoneRule {
	for _, rule := range rules {
		if !rule.dst {
			return rule
		}
	}

	return rules[0]
}
