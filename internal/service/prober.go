// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

const defaultProbeTimeout = 3 * time.Second

type statusListener = func(ctx context.Context, status models.ConnectionStatus)

type prober struct {
	cloud   adapter.CloudBackend
	local   LocalBackend
	runtime models.RuntimeEnvironment
	timeout time.Duration
	now     func() time.Time

	latest atomic.Pointer[models.ConnectionStatus]

	// publishMu makes Probe the single writer of latest and keeps
	// listeners seeing statuses in publication order.
	publishMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []statusListener
}

// NewProber constructs a [Prober]. On a runtime without local backend
// support the local store is never pinged.
func NewProber(cloud adapter.CloudBackend, local LocalBackend, runtime models.RuntimeEnvironment, timeout time.Duration) Prober {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &prober{
		cloud:   cloud,
		local:   local,
		runtime: runtime,
		timeout: timeout,
		now:     time.Now,
	}
}

func (p *prober) Probe(ctx context.Context) models.ConnectionStatus {
	log := logger.FromContext(ctx)

	var cloudOK, localOK bool
	checkedAt := p.now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cloudOK = p.ping(gctx, "cloud", p.cloud.Ping)
		return nil
	})
	if p.runtime.SupportsLocalBackend() {
		g.Go(func() error {
			localOK = p.ping(gctx, "local", p.local.Ping)
			return nil
		})
	}
	_ = g.Wait()

	status := models.ConnectionStatus{
		Mode:           SelectMode(p.runtime, cloudOK, localOK),
		CloudAvailable: cloudOK,
		LocalAvailable: localOK,
		CheckedAt:      checkedAt,
	}
	if p.runtime.SupportsLocalBackend() {
		status.LocalEndpoint = p.local.Endpoint()
	}

	if ctx.Err() != nil {
		log.Debug().
			Str("func", "prober.Probe").
			Msg("probe cancelled, status not published")
		return status
	}

	if !p.publish(ctx, status) {
		log.Debug().
			Str("func", "prober.Probe").
			Time("checked_at", status.CheckedAt).
			Msg("newer probe already published, status discarded")
		latest, _ := p.Latest()
		return latest
	}
	return status
}

func (p *prober) ping(ctx context.Context, backend string, ping func(context.Context) error) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "prober.ping").
			Str("backend", backend).
			Msg("backend unreachable")
		return false
	}
	return true
}

// publish stores and fans out status unless a probe that started later has
// already been published.
func (p *prober) publish(ctx context.Context, status models.ConnectionStatus) bool {
	p.publishMu.Lock()
	defer p.publishMu.Unlock()

	if latest := p.latest.Load(); latest != nil && status.CheckedAt.Before(latest.CheckedAt) {
		return false
	}
	p.latest.Store(&status)

	p.listenersMu.RLock()
	listeners := append([]statusListener(nil), p.listeners...)
	p.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, status)
	}
	return true
}

func (p *prober) Latest() (models.ConnectionStatus, bool) {
	status := p.latest.Load()
	if status == nil {
		return models.ConnectionStatus{}, false
	}
	return *status, true
}

// Subscribe registers fn. Listeners run synchronously in registration
// order on the probing goroutine.
func (p *prober) Subscribe(fn statusListener) {
	p.listenersMu.Lock()
	defer p.listenersMu.Unlock()
	p.listeners = append(p.listeners, fn)
}
