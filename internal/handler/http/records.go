package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
	"github.com/MKhiriev/go-clinic-sync/models"
)

type createRecordRequest struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

type updateRecordRequest struct {
	Payload json.RawMessage `json:"payload"`
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table, id := chi.URLParam(r, "table"), chi.URLParam(r, "id")

	record, err := h.services.DataGateway.Get(ctx, table, id)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "*Handler.getRecord").
			Str("table", table).
			Str("record_id", id).
			Msg("error reading record")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var body createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createRecord").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	h.applyMutation(w, r, models.Mutation{
		Table:     chi.URLParam(r, "table"),
		RecordID:  body.ID,
		Operation: models.OperationInsert,
		Payload:   body.Payload,
	}, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	var body updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateRecord").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	h.applyMutation(w, r, models.Mutation{
		Table:     chi.URLParam(r, "table"),
		RecordID:  chi.URLParam(r, "id"),
		Operation: models.OperationUpdate,
		Payload:   body.Payload,
	}, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	h.applyMutation(w, r, models.Mutation{
		Table:     chi.URLParam(r, "table"),
		RecordID:  chi.URLParam(r, "id"),
		Operation: models.OperationDelete,
	}, http.StatusNoContent)
}

func (h *Handler) applyMutation(w http.ResponseWriter, r *http.Request, m models.Mutation, status int) {
	ctx := r.Context()
	m.Actor, _ = utils.ActorFromContext(ctx)

	record, err := h.services.DataGateway.Apply(ctx, m)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "*Handler.applyMutation").
			Str("table", m.Table).
			Str("record_id", m.RecordID).
			Str("operation", string(m.Operation)).
			Msg("write failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	h.PublishStatus(ctx)

	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	utils.WriteJSON(w, record, status) //nolint:errcheck
}
