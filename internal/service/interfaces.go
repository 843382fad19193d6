// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the synchronisation core of the daemon: probing
// both backends, deriving the active mode, replaying the pending-change
// ledger on the cloud, and routing data access to the right backend.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-clinic-sync/models"
)

// LocalBackend is the on-premise record store. Writes through
// ApplyAndRecord commit the row and its ledger entry together.
type LocalBackend interface {
	Ping(ctx context.Context) error
	Endpoint() *string
	CheckTable(table string) error
	Get(ctx context.Context, table, id string) (models.Record, error)
	Apply(ctx context.Context, m models.Mutation) (models.Record, error)
	ApplyAndRecord(ctx context.Context, m models.Mutation) (models.Record, models.PendingChangeEntry, error)
	Restore(ctx context.Context, table, id string, prior *models.Record) error
}

// PendingLedger is the durable list of local writes awaiting cloud replay.
type PendingLedger interface {
	List(ctx context.Context, limit int) ([]models.PendingChangeEntry, error)
	Get(ctx context.Context, id string) (models.PendingChangeEntry, error)
	Aggregate(ctx context.Context) (models.SyncPendingStatus, error)
	Remove(ctx context.Context, id string) error
	RecordFailure(ctx context.Context, id string, cause error) error
	Details(ctx context.Context, limit int) ([]models.PendingEntryDetail, error)
}

// Prober checks the reachability of both backends.
type Prober interface {
	// Probe pings both backends and publishes the result. It never fails;
	// an unreachable backend is reported as unavailable.
	Probe(ctx context.Context) models.ConnectionStatus

	// Latest returns the last published status, false before the first
	// probe completes.
	Latest() (models.ConnectionStatus, bool)

	// Subscribe registers fn to receive every published status.
	Subscribe(fn func(ctx context.Context, status models.ConnectionStatus))
}

// ModeSelector derives the active mode from connection statuses.
type ModeSelector interface {
	Mode() models.Mode
	OnStatus(ctx context.Context, status models.ConnectionStatus)
	// Subscribe registers fn to receive mode transitions. It is not called
	// when a status leaves the mode unchanged.
	Subscribe(fn func(ctx context.Context, from, to models.Mode))
}

// DrainScheduler coalesces drain requests: at most one request is queued.
type DrainScheduler interface {
	// Schedule queues a drain and reports whether a new request was queued.
	Schedule() bool
	Requests() <-chan struct{}
}

// SyncExecutor replays the ledger on the cloud backend.
type SyncExecutor interface {
	// Drain replays every pending entry. A call made while another drain is
	// running returns at once with Skipped set.
	Drain(ctx context.Context) models.SyncResult

	// LastResult returns the most recent finished drain, nil before the
	// first one.
	LastResult() *models.SyncResult
}

// StatusReporter builds the operator-facing sync indicator.
type StatusReporter interface {
	Summarize(ctx context.Context) models.StatusSummary
}

// PendingService is the administrator view over the ledger.
type PendingService interface {
	Details(ctx context.Context, limit int) ([]models.PendingEntryDetail, error)
	Summary(ctx context.Context) (models.SyncPendingStatus, error)
	Discard(ctx context.Context, id string) error
}

// DataGateway routes record reads and writes to the backend of the active
// mode.
type DataGateway interface {
	Get(ctx context.Context, table, id string) (models.Record, error)
	Apply(ctx context.Context, m models.Mutation) (models.Record, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
