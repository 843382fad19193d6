// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound clients of the sync layer: the cloud
// backend implementations (PostgreSQL and REST) used by the daemon, and the
// daemon API client used by syncctl.
//
// Cloud errors are normalised to [ErrCloudUnavailable] (transient, retry
// later) and [ErrCloudRejected] (the cloud refused this write) so callers
// can decide with [errors.Is] without knowing the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CloudBackend is the authoritative remote store. Writes are idempotent:
// Upsert by id and Delete by id, where deleting a missing row succeeds.
type CloudBackend interface {
	// Name identifies the driver in logs and status output.
	Name() string

	// Ping checks reachability.
	Ping(ctx context.Context) error

	// Get reads one record. A missing row yields [ErrCloudNotFound].
	Get(ctx context.Context, table, id string) (models.Record, error)

	// Upsert creates or replaces a record.
	Upsert(ctx context.Context, record models.Record) error

	// Delete removes a record.
	Delete(ctx context.Context, table, id string) error

	// Close releases connections.
	Close() error
}

// SyncDaemon is the syncd HTTP API as seen by the operator CLI.
type SyncDaemon interface {
	Version(ctx context.Context) (models.AppBuildInfo, error)
	Status(ctx context.Context) (models.StatusSummary, error)
	Refresh(ctx context.Context) (models.StatusSummary, error)
	Pending(ctx context.Context, limit int) ([]models.PendingEntryDetail, error)
	PendingSummary(ctx context.Context) (models.SyncPendingStatus, error)
	Drain(ctx context.Context) (models.SyncResult, error)
	Discard(ctx context.Context, entryID string) error
}
