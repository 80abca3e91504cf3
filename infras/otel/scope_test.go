package otel_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tzconv/infras/otel"
	"tzconv/shared/failure"
)

func record(t *testing.T, use func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.Convert")
	scope := otel.NewScope(span)

	use(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func attributeValue(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantCode   int64
	}{
		{
			name:       "rejected request leaves status unset",
			err:        failure.TimezoneNotFound,
			wantStatus: codes.Unset,
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "bad input leaves status unset",
			err:        failure.BadRequestFromString("Timezone conversion error: unknown time zone Bogus/Zone"),
			wantStatus: codes.Unset,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "store failure marks the span",
			err:        fmt.Errorf("failed to save timezone: %w", errors.New("server selection timeout")),
			wantStatus: codes.Error,
			wantCode:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) {
				scope.TraceIfError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)

			code, ok := attributeValue(span, "failure.code")
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, code.AsInt64())
		})
	}
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
		scope.TraceError(nil)
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Empty(t, span.Events())
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"timezone.source":    "Asia/Tokyo",
			"timezone.requested": 3,
			"timezone.deleted":   int64(1),
			"timezone.cataloged": true,
			"timezone.ids":       []string{"UTC", "Asia/Tokyo"},
			"timezone.offset":    struct{ Minutes int }{Minutes: 330},
		})
	})

	tests := []struct {
		key  string
		want attribute.Value
	}{
		{key: "timezone.source", want: attribute.StringValue("Asia/Tokyo")},
		{key: "timezone.requested", want: attribute.IntValue(3)},
		{key: "timezone.deleted", want: attribute.Int64Value(1)},
		{key: "timezone.cataloged", want: attribute.BoolValue(true)},
		{key: "timezone.ids", want: attribute.StringSliceValue([]string{"UTC", "Asia/Tokyo"})},
		{key: "timezone.offset", want: attribute.StringValue("{330}")},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := attributeValue(span, tt.key)

			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
