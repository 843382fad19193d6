package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-clinic-sync/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withActor)
	router.Use(withLogging)

	// bounded request/response routes
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/sync/status", h.getSyncStatus)
		r.Post("/api/sync/status/refresh", h.refreshSyncStatus)
		r.Get("/api/sync/pending", h.getPendingDetails)
		r.Get("/api/sync/pending/summary", h.getPendingSummary)
		r.Delete("/api/sync/pending/{id}", h.discardPending)

		r.Post("/api/records/{table}", h.createRecord)
		r.Get("/api/records/{table}/{id}", h.getRecord)
		r.Put("/api/records/{table}/{id}", h.updateRecord)
		r.Delete("/api/records/{table}/{id}", h.deleteRecord)
	})

	// a manual drain runs until the ledger is empty or the client goes
	// away; the event stream is long-lived
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/sync/drain", h.drain)
	})
	router.Get("/api/sync/events", h.streamEvents)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return router
}
