package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *Hub

	tokenSignKey   string
	tokenIssuer    string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hub:            NewHub(logger),
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// PublishStatus pushes the current status summary to every connected
// event stream.
func (h *Handler) PublishStatus(ctx context.Context) {
	if h.hub.Clients() == 0 {
		return
	}
	h.hub.Broadcast(ctx, h.services.StatusReporter.Summarize(ctx))
}

// CloseStreams disconnects every event stream client.
func (h *Handler) CloseStreams() {
	h.hub.Close()
}
