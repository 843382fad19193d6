package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
)

const defaultPendingLimit = 100

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatusReporter.Summarize(r.Context()), http.StatusOK) //nolint:errcheck
}

// refreshSyncStatus probes both backends before summarizing, so the
// answer reflects connectivity right now rather than the last probe.
func (h *Handler) refreshSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.services.Prober.Probe(ctx)
	utils.WriteJSON(w, h.services.StatusReporter.Summarize(ctx), http.StatusOK) //nolint:errcheck
}

func (h *Handler) getPendingDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit := defaultPendingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Error().Str("func", "*Handler.getPendingDetails").Str("limit", raw).Msg("invalid limit")
			utils.WriteError(w, ErrInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	details, err := h.services.PendingService.Details(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPendingDetails").Msg("error reading pending changes")
		utils.WriteError(w, "error reading pending changes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, details, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getPendingSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.services.PendingService.Summary(ctx)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPendingSummary").Msg("error reading pending summary")
		utils.WriteError(w, "error reading pending summary", statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK) //nolint:errcheck
}

// drain runs a drain synchronously and reports its result. A drain that
// found another one running comes back with Skipped set.
func (h *Handler) drain(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r, adapter.ConfirmDrain) {
		utils.WriteError(w, ErrMissingConfirmation.Error(), http.StatusPreconditionRequired)
		return
	}

	ctx := r.Context()
	result := h.services.SyncExecutor.Drain(ctx)

	logger.FromRequest(r).Info().
		Str("func", "*Handler.drain").
		Int("applied", result.Applied).
		Int("failed", len(result.Failed)).
		Bool("skipped", result.Skipped).
		Msg("manual drain finished")

	if !result.Skipped {
		h.PublishStatus(ctx)
	}
	utils.WriteJSON(w, result, http.StatusOK) //nolint:errcheck
}

func (h *Handler) discardPending(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r, adapter.ConfirmDiscard) {
		utils.WriteError(w, ErrMissingConfirmation.Error(), http.StatusPreconditionRequired)
		return
	}

	ctx := r.Context()
	entryID := chi.URLParam(r, "id")

	if err := h.services.PendingService.Discard(ctx, entryID); err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "*Handler.discardPending").
			Str("entry_id", entryID).
			Msg("error discarding pending change")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	h.PublishStatus(ctx)
	w.WriteHeader(http.StatusNoContent)
}

func confirmed(r *http.Request, action string) bool {
	return r.Header.Get(adapter.ConfirmHeader) == action
}
