// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
	"github.com/MKhiriev/go-clinic-sync/models"
)

type dataGateway struct {
	local   LocalBackend
	cloud   adapter.CloudBackend
	modes   ModeSelector
	runtime models.RuntimeEnvironment
	now     func() time.Time
}

func NewDataGateway(local LocalBackend, cloud adapter.CloudBackend, modes ModeSelector, runtime models.RuntimeEnvironment) DataGateway {
	return &dataGateway{
		local:   local,
		cloud:   cloud,
		modes:   modes,
		runtime: runtime,
		now:     time.Now,
	}
}

func (g *dataGateway) Get(ctx context.Context, table, id string) (models.Record, error) {
	if err := g.local.CheckTable(table); err != nil {
		return models.Record{}, err
	}

	switch g.modes.Mode() {
	case models.ModeLocal:
		return g.local.Get(ctx, table, id)

	case models.ModeCloud:
		record, err := g.cloud.Get(ctx, table, id)
		switch {
		case err == nil:
			return record, nil
		case errors.Is(err, adapter.ErrCloudNotFound):
			return models.Record{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, table, id)
		case isTransient(err):
			return models.Record{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		default:
			return models.Record{}, err
		}

	default:
		return models.Record{}, ErrBackendUnavailable
	}
}

// Apply performs a write in the active mode. In local mode the write is
// ledgered for replay. In cloud mode the cloud row decides whether the write
// is allowed; the local mirror is rolled back if the cloud write does not hold.
func (g *dataGateway) Apply(ctx context.Context, m models.Mutation) (models.Record, error) {
	if m.Actor == "" {
		m.Actor, _ = utils.ActorFromContext(ctx)
	}
	if err := g.local.CheckTable(m.Table); err != nil {
		return models.Record{}, err
	}

	switch g.modes.Mode() {
	case models.ModeLocal:
		record, entry, err := g.local.ApplyAndRecord(ctx, m)
		if err != nil {
			return models.Record{}, err
		}
		logger.FromContext(ctx).Debug().
			Str("func", "dataGateway.Apply").
			Str("entry_id", entry.ID).
			Str("table", m.Table).
			Str("record_id", m.RecordID).
			Msg("local write ledgered")
		return record, nil

	case models.ModeCloud:
		if !g.runtime.SupportsLocalBackend() {
			return g.applyCloudOnly(ctx, m)
		}
		return g.applyMirrored(ctx, m)

	default:
		return models.Record{}, ErrReadOnly
	}
}

// applyMirrored checks the mutation against the cloud row, brings the local
// mirror in line and then writes the cloud.
func (g *dataGateway) applyMirrored(ctx context.Context, m models.Mutation) (models.Record, error) {
	cloudPrior, err := g.checkCloudTarget(ctx, m)
	if err != nil {
		return models.Record{}, err
	}

	var localPrior *models.Record
	current, err := g.local.Get(ctx, m.Table, m.RecordID)
	switch {
	case err == nil:
		localPrior = &current
	case !errors.Is(err, store.ErrRecordNotFound):
		return models.Record{}, err
	}

	record, err := g.mirrorLocally(ctx, m, localPrior != nil)
	if err != nil {
		return models.Record{}, err
	}

	cloudErr := writeCloud(ctx, g.cloud, record, m.Operation == models.OperationDelete)
	if cloudErr == nil {
		return record, nil
	}

	log := logger.FromContext(ctx)
	log.Warn().Err(cloudErr).
		Str("func", "dataGateway.applyMirrored").
		Str("table", m.Table).
		Str("record_id", m.RecordID).
		Msg("cloud write failed, restoring local record")

	restoreCtx := context.WithoutCancel(ctx)
	if errors.Is(cloudErr, ErrPostConditionFailed) {
		g.restoreCloud(restoreCtx, m.Table, m.RecordID, cloudPrior)
	}

	if err = g.local.Restore(restoreCtx, m.Table, m.RecordID, localPrior); err != nil {
		log.Err(err).
			Str("func", "dataGateway.applyMirrored").
			Str("table", m.Table).
			Str("record_id", m.RecordID).
			Msg("local record left diverged from cloud")
		return models.Record{}, errors.Join(cloudErr, fmt.Errorf("%w: %w", ErrRestoreFailed, err))
	}

	return models.Record{}, cloudErr
}

// mirrorLocally applies m to the local copy, which may lag behind the cloud.
// A missing local row turns an UPDATE into an INSERT, an existing one turns
// an INSERT into an UPDATE, and a DELETE of a missing row is a no-op.
func (g *dataGateway) mirrorLocally(ctx context.Context, m models.Mutation, localExists bool) (models.Record, error) {
	local := m
	switch {
	case m.Operation == models.OperationDelete && !localExists:
		return models.Record{
			Table:     m.Table,
			ID:        m.RecordID,
			UpdatedAt: g.now().UTC(),
			UpdatedBy: m.Actor,
		}, nil
	case m.Operation == models.OperationDelete:
	case localExists:
		local.Operation = models.OperationUpdate
	default:
		local.Operation = models.OperationInsert
	}

	record, err := g.local.Apply(ctx, local)
	if err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// restoreCloud puts the cloud row back to what it was before a write whose
// read-back did not match.
func (g *dataGateway) restoreCloud(ctx context.Context, table, id string, prior *models.Record) {
	var err error
	if prior == nil {
		err = g.cloud.Delete(ctx, table, id)
	} else {
		err = g.cloud.Upsert(ctx, *prior)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "dataGateway.restoreCloud").
			Str("table", table).
			Str("record_id", id).
			Msg("failed to restore cloud record")
	}
}

// checkCloudTarget validates m against the cloud row it targets and returns
// that row, nil when the cloud does not have it.
func (g *dataGateway) checkCloudTarget(ctx context.Context, m models.Mutation) (*models.Record, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidMutation, err)
	}

	current, err := g.cloud.Get(ctx, m.Table, m.RecordID)
	exists := err == nil
	if err != nil && !errors.Is(err, adapter.ErrCloudNotFound) {
		return nil, err
	}

	switch {
	case m.Operation == models.OperationInsert && exists:
		return nil, fmt.Errorf("%w: %s/%s", store.ErrRecordExists, m.Table, m.RecordID)
	case m.Operation != models.OperationInsert && !exists:
		return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, m.Table, m.RecordID)
	}

	if !exists {
		return nil, nil
	}
	return &current, nil
}

// applyCloudOnly serves runtimes without a local backend.
func (g *dataGateway) applyCloudOnly(ctx context.Context, m models.Mutation) (models.Record, error) {
	if _, err := g.checkCloudTarget(ctx, m); err != nil {
		return models.Record{}, err
	}

	record := models.Record{
		Table:     m.Table,
		ID:        m.RecordID,
		Payload:   m.Payload,
		UpdatedAt: g.now().UTC(),
		UpdatedBy: m.Actor,
	}
	remove := m.Operation == models.OperationDelete
	if remove {
		record.Payload = nil
	}

	if err := writeCloud(ctx, g.cloud, record, remove); err != nil {
		return models.Record{}, err
	}
	return record, nil
}
