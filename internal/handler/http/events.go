// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
)

const eventWriteTimeout = 5 * time.Second

// streamEvents upgrades the request to a websocket and pushes a status
// summary on connect and after every change. Messages from the client are
// ignored.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamEvents").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	client := h.hub.register()
	defer h.hub.unregister(client)

	ctx := conn.CloseRead(r.Context())

	initial, err := json.Marshal(h.services.StatusReporter.Summarize(ctx))
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamEvents").Msg("failed to marshal status")
		conn.Close(websocket.StatusInternalError, "status unavailable") //nolint:errcheck
		return
	}
	if err = writeEvent(ctx, conn, initial); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.hub.Done():
			conn.Close(websocket.StatusGoingAway, "daemon shutting down") //nolint:errcheck
			return
		case data := <-client.send:
			if err = writeEvent(ctx, conn, data); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Err(err).Str("func", "*Handler.streamEvents").Msg("failed to write event")
				}
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}
