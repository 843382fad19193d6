// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
	"github.com/MKhiriev/go-clinic-sync/models"
)

const (
	pendingChangesTable = "pending_changes"
	syncFailuresTable   = "sync_failures"
)

var pendingChangeColumns = []string{"id", "table_name", "record_id", "operation", "created_at", "actor", "seq"}

// IDGenerator produces ledger entry identifiers.
type IDGenerator interface {
	Generate() string
}

// Ledger is the durable log of local writes awaiting replay on the cloud.
// It lives in the same SQLite file as the local clinic tables so an entry
// can be committed in the same transaction as the write it describes.
//
// Entries are only ever created by Record/RecordTx and deleted by Remove.
type Ledger struct {
	db  *DB
	ids IDGenerator
	now func() time.Time
}

// NewLedger constructs a ledger over the local database.
func NewLedger(db *DB) *Ledger {
	return &Ledger{
		db:  db,
		ids: utils.NewUUIDGenerator(),
		now: time.Now,
	}
}

// RecordTx appends an entry inside the caller's transaction. On error the
// caller must roll back its own write.
func (l *Ledger) RecordTx(ctx context.Context, tx *sql.Tx, change models.PendingChange) (models.PendingChangeEntry, error) {
	log := logger.FromContext(ctx)

	if err := change.Operation.Validate(); err != nil {
		return models.PendingChangeEntry{}, fmt.Errorf("%w: %w", ErrLedgerWrite, err)
	}
	if change.TableName == "" || change.RecordID == "" {
		return models.PendingChangeEntry{}, fmt.Errorf("%w: empty table or record id", ErrLedgerWrite)
	}

	entry := models.PendingChangeEntry{
		ID:        l.ids.Generate(),
		TableName: change.TableName,
		RecordID:  change.RecordID,
		Operation: change.Operation,
		CreatedAt: l.now().UTC(),
		Actor:     change.Actor,
	}

	query, args, err := sq.Insert(pendingChangesTable).
		Columns("id", "table_name", "record_id", "operation", "created_at", "actor").
		Values(entry.ID, entry.TableName, entry.RecordID, string(entry.Operation), entry.CreatedAt.UnixNano(), entry.Actor).
		ToSql()
	if err != nil {
		return models.PendingChangeEntry{}, fmt.Errorf("%w: %w: %w", ErrLedgerWrite, ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "Ledger.RecordTx").
			Str("table", entry.TableName).
			Str("record_id", entry.RecordID).
			Msg("failed to insert pending change")
		return models.PendingChangeEntry{}, fmt.Errorf("%w: %w", ErrLedgerWrite, err)
	}

	if entry.Seq, err = res.LastInsertId(); err != nil {
		return models.PendingChangeEntry{}, fmt.Errorf("%w: %w", ErrLedgerWrite, err)
	}

	log.Debug().
		Str("func", "Ledger.RecordTx").
		Str("entry_id", entry.ID).
		Str("table", entry.TableName).
		Str("record_id", entry.RecordID).
		Str("operation", string(entry.Operation)).
		Msg("pending change recorded")

	return entry, nil
}

// Record appends an entry in its own transaction.
func (l *Ledger) Record(ctx context.Context, change models.PendingChange) (models.PendingChangeEntry, error) {
	var entry models.PendingChangeEntry

	err := l.db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := l.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w: %w", ErrLedgerWrite, ErrBeginningTransaction, err)
		}
		defer tx.Rollback() //nolint:errcheck

		if entry, err = l.RecordTx(ctx, tx, change); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w: %w", ErrLedgerWrite, ErrCommitingTransaction, err)
		}
		return nil
	})

	return entry, err
}

// List returns pending entries in creation order. limit <= 0 means all.
func (l *Ledger) List(ctx context.Context, limit int) ([]models.PendingChangeEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(pendingChangeColumns...).
		From(pendingChangesTable).
		OrderBy("created_at ASC", "seq ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrBuildingSQLQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "Ledger.List").Msg("failed to query pending changes")
		return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.PendingChangeEntry, 0, 32)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "Ledger.List").Msg("failed to scan pending change")
			return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRows, err)
	}

	return entries, nil
}

// Get returns one entry by id.
func (l *Ledger) Get(ctx context.Context, id string) (models.PendingChangeEntry, error) {
	query, args, err := sq.Select(pendingChangeColumns...).
		From(pendingChangesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.PendingChangeEntry{}, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(l.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingChangeEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.PendingChangeEntry{}, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRow, err)
	}

	return entry, nil
}

// Aggregate counts pending entries per table.
func (l *Ledger) Aggregate(ctx context.Context) (models.SyncPendingStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("table_name", "COUNT(*)").
		From(pendingChangesTable).
		GroupBy("table_name").
		ToSql()
	if err != nil {
		return models.SyncPendingStatus{}, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrBuildingSQLQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "Ledger.Aggregate").Msg("failed to aggregate pending changes")
		return models.SyncPendingStatus{}, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrExecutingQuery, err)
	}
	defer rows.Close()

	status := models.SyncPendingStatus{ByTable: make(map[string]int)}
	for rows.Next() {
		var table string
		var count int
		if err = rows.Scan(&table, &count); err != nil {
			return models.SyncPendingStatus{}, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRow, err)
		}
		status.ByTable[table] = count
		status.TotalPending += count
	}
	if err = rows.Err(); err != nil {
		return models.SyncPendingStatus{}, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRows, err)
	}

	return status, nil
}

// Remove deletes an entry and its failure row. Removing an unknown id is
// not an error.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	return l.db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := l.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback() //nolint:errcheck

		deletes := []sq.DeleteBuilder{
			sq.Delete(syncFailuresTable).Where(sq.Eq{"entry_id": id}),
			sq.Delete(pendingChangesTable).Where(sq.Eq{"id": id}),
		}
		for _, del := range deletes {
			query, args, buildErr := del.ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "Ledger.Remove").
					Str("entry_id", id).
					Msg("failed to delete pending change")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

// RecordFailure stores the last error of an entry and increments its
// attempt counter.
func (l *Ledger) RecordFailure(ctx context.Context, id string, cause error) error {
	log := logger.FromContext(ctx)

	message := "unknown error"
	if cause != nil {
		message = cause.Error()
	}

	query, args, err := sq.Insert(syncFailuresTable).
		Columns("entry_id", "error", "attempts", "failed_at").
		Values(id, message, 1, l.now().UTC().UnixNano()).
		Suffix("ON CONFLICT (entry_id) DO UPDATE SET error = excluded.error, attempts = " +
			syncFailuresTable + ".attempts + 1, failed_at = excluded.failed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.db.withRetry(ctx, func(ctx context.Context) error {
		if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "Ledger.RecordFailure").
				Str("entry_id", id).
				Msg("failed to store entry failure")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// Failures returns the recorded failures keyed by entry id.
func (l *Ledger) Failures(ctx context.Context) (map[string]models.EntryFailure, error) {
	query, args, err := sq.Select("entry_id", "error", "attempts", "failed_at").
		From(syncFailuresTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrBuildingSQLQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrExecutingQuery, err)
	}
	defer rows.Close()

	failures := make(map[string]models.EntryFailure)
	for rows.Next() {
		var f models.EntryFailure
		var failedAt int64
		if err = rows.Scan(&f.EntryID, &f.Error, &f.Attempts, &failedAt); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRow, err)
		}
		f.FailedAt = time.Unix(0, failedAt).UTC()
		failures[f.EntryID] = f
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLedgerRead, ErrScanningRows, err)
	}

	return failures, nil
}

// Details returns entries in creation order joined with their last failure.
func (l *Ledger) Details(ctx context.Context, limit int) ([]models.PendingEntryDetail, error) {
	entries, err := l.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	failures, err := l.Failures(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.PendingEntryDetail, 0, len(entries))
	for _, entry := range entries {
		detail := models.PendingEntryDetail{PendingChangeEntry: entry}
		if f, ok := failures[entry.ID]; ok {
			detail.Failure = &f
		}
		details = append(details, detail)
	}

	return details, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.PendingChangeEntry, error) {
	var entry models.PendingChangeEntry
	var operation string
	var createdAt int64

	if err := row.Scan(&entry.ID, &entry.TableName, &entry.RecordID, &operation, &createdAt, &entry.Actor, &entry.Seq); err != nil {
		return models.PendingChangeEntry{}, err
	}
	entry.Operation = models.Operation(operation)
	entry.CreatedAt = time.Unix(0, createdAt).UTC()

	return entry, nil
}
