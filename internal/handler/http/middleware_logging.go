package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
)

// withLogging writes one access line per request. Lines carry the chi route
// pattern so record ids stay out of the aggregate, the actor and any operator
// confirmation. Server errors log at error, client errors at warn and health
// checks at debug.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		log := logger.FromRequest(r)
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		var ev *zerolog.Event
		switch {
		case rw.status >= http.StatusInternalServerError:
			ev = log.Error()
		case rw.status >= http.StatusBadRequest:
			ev = log.Warn()
		case route == "/api/health":
			ev = log.Debug()
		default:
			ev = log.Info()
		}

		if actor, ok := utils.ActorFromContext(r.Context()); ok {
			ev = ev.Str("actor", actor)
		}
		if confirm := r.Header.Get(adapter.ConfirmHeader); confirm != "" {
			ev = ev.Str("confirm", confirm)
		}

		ev.Str("method", r.Method).
			Str("route", route).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
