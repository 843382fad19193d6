// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
	"github.com/MKhiriev/go-clinic-sync/models"
)

const (
	defaultDrainEntryTimeout = 15 * time.Second
	defaultDrainRetryBase    = 200 * time.Millisecond
)

type syncExecutor struct {
	local  LocalBackend
	ledger PendingLedger
	cloud  adapter.CloudBackend

	rank         map[string]int
	entryTimeout time.Duration
	retries      uint64
	retryBase    time.Duration
	now          func() time.Time

	running atomic.Bool
	last    atomic.Pointer[models.SyncResult]
}

// NewSyncExecutor constructs the ledger replayer. tables is the dependency
// order, parents first.
func NewSyncExecutor(local LocalBackend, ledger PendingLedger, cloud adapter.CloudBackend, cfg config.Workers, tables []string) SyncExecutor {
	e := &syncExecutor{
		local:        local,
		ledger:       ledger,
		cloud:        cloud,
		rank:         tableRank(tables),
		entryTimeout: cfg.DrainEntryTimeout,
		retryBase:    cfg.DrainRetryBase,
		now:          time.Now,
	}
	if cfg.DrainRetries > 0 {
		e.retries = uint64(cfg.DrainRetries)
	}
	if e.entryTimeout <= 0 {
		e.entryTimeout = defaultDrainEntryTimeout
	}
	if e.retryBase <= 0 {
		e.retryBase = defaultDrainRetryBase
	}
	return e
}

func (e *syncExecutor) LastResult() *models.SyncResult {
	return e.last.Load()
}

func (e *syncExecutor) Drain(ctx context.Context) (result models.SyncResult) {
	log := logger.FromContext(ctx)

	if !e.running.CompareAndSwap(false, true) {
		now := e.now().UTC()
		log.Debug().Str("func", "syncExecutor.Drain").Msg("drain already running, skipped")
		return models.SyncResult{StartedAt: now, FinishedAt: now, Skipped: true}
	}
	defer e.running.Store(false)

	result = models.SyncResult{
		StartedAt:      e.now().UTC(),
		AppliedByTable: make(map[string]int),
	}
	defer func() {
		result.FinishedAt = e.now().UTC()
		stored := result
		e.last.Store(&stored)
	}()

	entries, err := e.ledger.List(ctx, 0)
	if err != nil {
		log.Err(err).Str("func", "syncExecutor.Drain").Msg("failed to snapshot ledger")
		result.Error = err.Error()
		result.Interrupted = true
		return result
	}
	if len(entries) == 0 {
		return result
	}

	groups := planReplay(entries, e.rank)
	log.Info().
		Str("func", "syncExecutor.Drain").
		Int("entries", len(entries)).
		Int("records", len(groups)).
		Msg("drain started")

	for _, g := range groups {
		if ctx.Err() != nil {
			result.Interrupted = true
			setFirstError(&result, ctx.Err())
			break
		}

		// The group in flight finishes even if ctx is cancelled meanwhile.
		gctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.entryTimeout)
		stop := e.runGroup(gctx, g, &result)
		cancel()
		if stop {
			result.Interrupted = true
			break
		}
	}

	ev := log.Info()
	if result.Error != "" {
		ev = log.Warn().Str("error", result.Error)
	}
	ev.Str("func", "syncExecutor.Drain").
		Int("applied", result.Applied).
		Int("failed", len(result.Failed)).
		Bool("interrupted", result.Interrupted).
		Msg("drain finished")

	return result
}

// runGroup replays one record and updates result. It reports whether the
// drain must stop.
func (e *syncExecutor) runGroup(ctx context.Context, g replayGroup, result *models.SyncResult) bool {
	log := logger.FromContext(ctx)

	err := e.replayWithRetry(ctx, g)
	switch {
	case err == nil:
		for _, entry := range g.entries {
			if rmErr := e.ledger.Remove(ctx, entry.ID); rmErr != nil {
				log.Err(rmErr).
					Str("func", "syncExecutor.runGroup").
					Str("entry_id", entry.ID).
					Msg("cloud write confirmed but ledger entry not removed")
				setFirstError(result, rmErr)
				return true
			}
			if result.AppliedByTable[g.table] == 0 {
				result.TablesTouched = append(result.TablesTouched, g.table)
			}
			result.AppliedByTable[g.table]++
			result.Applied++
		}
		return false

	case errors.Is(err, ErrLocalUnreadable):
		log.Err(err).
			Str("func", "syncExecutor.runGroup").
			Str("table", g.table).
			Str("record_id", g.recordID).
			Msg("local state unreadable, drain interrupted")
		setFirstError(result, err)
		return true

	case isTransient(err):
		log.Warn().Err(err).
			Str("func", "syncExecutor.runGroup").
			Str("table", g.table).
			Str("record_id", g.recordID).
			Msg("cloud unavailable, drain interrupted")
		setFirstError(result, err)
		return true

	default:
		log.Err(err).
			Str("func", "syncExecutor.runGroup").
			Str("table", g.table).
			Str("record_id", g.recordID).
			Msg("cloud rejected record, keeping it pending")
		for _, entry := range g.entries {
			if rfErr := e.ledger.RecordFailure(ctx, entry.ID, err); rfErr != nil {
				log.Err(rfErr).
					Str("func", "syncExecutor.runGroup").
					Str("entry_id", entry.ID).
					Msg("failed to record sync failure")
			}
		}
		result.Failed = append(result.Failed, models.SyncFailure{
			EntryIDs:  g.entryIDs(),
			TableName: g.table,
			RecordID:  g.recordID,
			Operation: g.last().Operation,
			Error:     err.Error(),
		})
		setFirstError(result, err)
		return false
	}
}

func (e *syncExecutor) replayWithRetry(ctx context.Context, g replayGroup) error {
	backoff := retry.WithMaxRetries(e.retries, retry.NewExponential(e.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := e.replay(ctx, g)
		if err != nil && isTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// replay writes the current local state of the record to the cloud. A
// record that no longer exists locally is deleted on the cloud.
func (e *syncExecutor) replay(ctx context.Context, g replayGroup) error {
	target := models.Record{Table: g.table, ID: g.recordID}
	if g.remove {
		return writeCloud(ctx, e.cloud, target, true)
	}

	record, err := e.local.Get(ctx, g.table, g.recordID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return writeCloud(ctx, e.cloud, target, true)
	}
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", ErrLocalUnreadable, g.table, g.recordID, err)
	}

	return writeCloud(ctx, e.cloud, record, false)
}

func setFirstError(result *models.SyncResult, err error) {
	if result.Error == "" && err != nil {
		result.Error = err.Error()
	}
}
