// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
)

// NewCloudBackend builds the cloud backend selected by the storage
// configuration. Schema migration failures are logged and tolerated: the
// cloud may simply be unreachable at startup.
func NewCloudBackend(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (CloudBackend, error) {
	tables := cfg.Sync.TableOrder

	switch cfg.Storage.Cloud.Driver {
	case config.CloudDriverPostgres:
		db, err := store.NewConnectPostgres(ctx, cfg.Storage.Cloud.DSN, log)
		if err != nil {
			return nil, err
		}
		backend := NewPostgresCloud(db, tables).(*postgresCloud)

		if cfg.Storage.Cloud.Migrate {
			if err = db.MigrateCloud(); err == nil {
				err = backend.EnsureTables(ctx)
			}
			if err != nil {
				log.Warn().Err(err).Str("func", "NewCloudBackend").Msg("cloud schema migration skipped")
			}
		}
		return backend, nil

	case config.CloudDriverHTTP:
		return NewHTTPCloud(cfg.Storage.Cloud.URL, cfg.Adapter.RequestTimeout, cfg.Adapter.CloudToken)

	case config.CloudDriverNone, "":
		log.Warn().Str("func", "NewCloudBackend").Msg("no cloud backend configured, running local-only")
		return NewNoCloud(), nil

	default:
		return nil, fmt.Errorf("unknown cloud driver %q", cfg.Storage.Cloud.Driver)
	}
}
