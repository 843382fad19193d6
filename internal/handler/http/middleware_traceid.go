package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
)

const traceIDHeader = adapter.TraceHeader

// maxTraceIDLen bounds caller-supplied ids before they reach the logs.
const maxTraceIDLen = 64

// withTraceID tags the request logger with a trace id and echoes it back.
// syncctl forwards its own id so a CLI invocation and the daemon lines it
// caused share one trace; anything empty or oversized is replaced.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = uuid.NewString()
		}

		reqLog := h.logger.GetChildLogger()
		reqLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLog.WithContext(r.Context())))
	})
}
