// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/service"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// DrainWorker runs the sync executor for every scheduled drain request.
type DrainWorker struct {
	scheduler service.DrainScheduler
	executor  service.SyncExecutor
	onDone    func(ctx context.Context, result models.SyncResult)
}

// NewDrainWorker constructs a DrainWorker. onDone, when not nil, receives
// every drain result.
func NewDrainWorker(scheduler service.DrainScheduler, executor service.SyncExecutor, onDone func(ctx context.Context, result models.SyncResult)) *DrainWorker {
	return &DrainWorker{scheduler: scheduler, executor: executor, onDone: onDone}
}

func (w *DrainWorker) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("func", "DrainWorker.Run").Msg("drain worker stopped")
			return nil
		case <-w.scheduler.Requests():
			result := w.executor.Drain(ctx)
			if w.onDone != nil {
				w.onDone(ctx, result)
			}
		}
	}
}
