package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
)

// traced runs one request through withTraceID and returns the response
// header value and the line the inner handler logged.
func traced(t *testing.T, incoming string) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Str("func", "drain").Send()
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/drain", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	return rr.Header().Get(traceIDHeader), buf.String()
}

func TestWithTraceID_ReusesSyncctlID(t *testing.T) {
	got, line := traced(t, "syncctl-4f2a")

	assert.Equal(t, "syncctl-4f2a", got)
	assert.Contains(t, line, `"trace_id":"syncctl-4f2a"`)
}

func TestWithTraceID_GeneratesWhenMissingOrOversized(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "no header", incoming: ""},
		{name: "oversized header", incoming: strings.Repeat("x", maxTraceIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, line := traced(t, tt.incoming)

			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.NotEqual(t, tt.incoming, got)
			assert.Contains(t, line, `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_LongestAcceptedIDIsKept(t *testing.T) {
	id := strings.Repeat("a", maxTraceIDLen)

	got, _ := traced(t, id)

	assert.Equal(t, id, got)
}

func TestWithTraceID_EachRequestGetsItsOwnID(t *testing.T) {
	first, _ := traced(t, "")
	second, _ := traced(t, "")

	assert.NotEqual(t, first, second)
}

func TestWithTraceID_DoesNotLeakIntoDaemonLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/sync/status", nil))
	h.logger.Info().Msg("prober tick")

	assert.NotContains(t, buf.String(), "trace_id")
}
