package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/transport/http/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"time": "12:00:00"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, map[string]any{"time": "12:00:00"}, decode(t, rec))
}

func TestWithJSONArray(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{"a", "b"})

	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, constant.ResponseMessageRoot)

	assert.Equal(t, map[string]any{"message": constant.ResponseMessageRoot}, decode(t, rec))
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		want     string
	}{
		{
			name:     "failure carries its code",
			err:      failure.TimezoneNotFound,
			wantCode: http.StatusNotFound,
			want:     "Timezone not found",
		},
		{
			name:     "wrapped failure",
			err:      errors.Join(errors.New("context"), failure.TimezoneAlreadySaved),
			wantCode: http.StatusConflict,
			want:     "context\nTimezone already saved",
		},
		{
			name:     "plain error is internal and hidden",
			err:      errors.New("connection() error occurred during connection handshake: dial tcp 10.0.0.7:27017"),
			wantCode: http.StatusInternalServerError,
			want:     "Internal Server Error",
		},
		{
			name:     "internal failure is hidden",
			err:      failure.InternalError(errors.New("failed to save timezone: server selection timeout")),
			wantCode: http.StatusInternalServerError,
			want:     "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, map[string]any{"detail": tt.want}, decode(t, rec))
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		wantCode int
		want     string
	}{
		{name: "rate limited", write: response.WithRequestLimitExceeded, wantCode: http.StatusTooManyRequests, want: constant.ResponseErrorRequestLimitExceeded},
		{name: "shutting down", write: response.WithPreparingShutdown, wantCode: http.StatusServiceUnavailable, want: constant.ResponseErrorPrepareShutdown},
		{name: "unhealthy", write: response.WithUnhealthy, wantCode: http.StatusServiceUnavailable, want: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, map[string]any{"detail": tt.want}, decode(t, rec))
		})
	}
}
