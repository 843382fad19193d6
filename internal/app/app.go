// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/handler"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/server"
	"github.com/MKhiriev/go-clinic-sync/internal/service"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
	"github.com/MKhiriev/go-clinic-sync/internal/workers"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// BuildInfo carries the values stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// App is an assembled daemon. Build it with [New], start it with [App.Run]
// and release it with [App.Close].
type App struct {
	Services *service.Services
	Handlers *handler.Handlers

	storages *store.Storages
	cloud    adapter.CloudBackend
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// New opens both backends and wires every component. Nothing runs until
// [App.Run] is called.
func New(ctx context.Context, cfg config.StructuredConfig, build BuildInfo, log *logger.Logger) (*App, error) {
	if build.Version != "" {
		cfg.App.Version = build.Version
	}

	kind, err := models.ParseRuntimeKind(cfg.App.Runtime)
	if err != nil {
		return nil, err
	}
	runtime := models.RuntimeEnvironment{Kind: kind}

	storages, err := store.NewStorages(ctx, cfg, runtime, log)
	if err != nil {
		return nil, err
	}

	cloud, err := adapter.NewCloudBackend(ctx, cfg, log)
	if err != nil {
		closeQuietly(log, storages)
		return nil, fmt.Errorf("open cloud backend: %w", err)
	}

	appInfo, err := service.NewAppInfoService(cfg.App, build.Date, build.Commit, log)
	if err != nil {
		closeQuietly(log, cloud, storages)
		return nil, err
	}

	services := service.NewServices(storages.Local, storages.Ledger, cloud, runtime, appInfo, cfg)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		closeQuietly(log, cloud, storages)
		return nil, err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		closeQuietly(log, cloud, storages)
		return nil, err
	}

	services.Prober.Subscribe(func(ctx context.Context, _ models.ConnectionStatus) {
		handlers.HTTP.PublishStatus(ctx)
	})

	background := workers.NewWorkers(
		workers.NewProbeWorker(services.Prober, cfg.Workers.ProbeInterval),
		workers.NewDrainWorker(services.DrainScheduler, services.SyncExecutor, func(ctx context.Context, result models.SyncResult) {
			logDrainResult(ctx, result)
			handlers.HTTP.PublishStatus(ctx)
		}),
	)

	log.Info().
		Str("runtime", string(kind)).
		Str("cloud", cloud.Name()).
		Str("local", cfg.Storage.Local.DSN).
		Strs("tables", cfg.Sync.TableOrder).
		Msg("sync daemon assembled")

	return &App{
		Services: services,
		Handlers: handlers,
		storages: storages,
		cloud:    cloud,
		server:   srv,
		workers:  background,
		logger:   log,
	}, nil
}

// Run starts the background workers and the HTTP API and blocks until ctx
// is cancelled or one of them fails.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	g.Go(func() error {
		return a.server.Run(gctx)
	})

	err := g.Wait()
	a.logger.Info().Err(err).Msg("sync daemon stopped")
	return err
}

// Close releases both backends.
func (a *App) Close() error {
	return errors.Join(a.cloud.Close(), a.storages.Close())
}

func closeQuietly(log *logger.Logger, closers ...io.Closer) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Str("func", "closeQuietly").Msg("error releasing backend")
		}
	}
}

func logDrainResult(ctx context.Context, result models.SyncResult) {
	if result.Skipped || (result.Empty() && result.Error == "") {
		return
	}

	event := logger.FromContext(ctx).Info()
	if result.Error != "" {
		event = logger.FromContext(ctx).Warn().Str("error", result.Error)
	}
	event.
		Str("func", "logDrainResult").
		Int("applied", result.Applied).
		Int("failed", len(result.Failed)).
		Strs("tables", result.TablesTouched).
		Bool("interrupted", result.Interrupted).
		Dur("took", result.FinishedAt.Sub(result.StartedAt)).
		Msg("drain finished")
}
