// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/service"
)

const defaultProbeInterval = 30 * time.Second

// ProbeWorker probes both backends once at start and then on every tick.
type ProbeWorker struct {
	prober   service.Prober
	interval time.Duration
}

func NewProbeWorker(prober service.Prober, interval time.Duration) *ProbeWorker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &ProbeWorker{prober: prober, interval: interval}
}

func (w *ProbeWorker) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info().Str("func", "ProbeWorker.Run").Dur("interval", w.interval).Msg("probe worker started")

	w.prober.Probe(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("func", "ProbeWorker.Run").Msg("probe worker stopped")
			return nil
		case <-ticker.C:
			w.prober.Probe(ctx)
		}
	}
}
