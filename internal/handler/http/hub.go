// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
)

const clientBuffer = 4

// Hub fans status summaries out to the connected event stream clients.
// A client that falls behind loses messages instead of blocking the
// broadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[*hubClient]struct{}
	done    chan struct{}
	once    sync.Once

	logger *logger.Logger
}

type hubClient struct {
	send chan []byte
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*hubClient]struct{}),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Broadcast marshals v once and queues it for every client.
func (h *Hub) Broadcast(ctx context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Hub.Broadcast").Msg("failed to marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn().Str("func", "Hub.Broadcast").Msg("event stream client is slow, dropping event")
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Done is closed by [Hub.Close].
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Close disconnects every client. It is safe to call more than once.
func (h *Hub) Close() {
	h.once.Do(func() {
		close(h.done)
	})
}

func (h *Hub) register() *hubClient {
	c := &hubClient{send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Int("clients", total).Msg("event stream client connected")
	return c
}

func (h *Hub) unregister(c *hubClient) {
	h.mu.Lock()
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Int("clients", total).Msg("event stream client disconnected")
}
