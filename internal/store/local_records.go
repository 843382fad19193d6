// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

var recordColumns = []string{"id", "payload", "updated_at", "updated_by"}

// LocalRecords is the on-premise backend: the clinic tables in the local
// SQLite file plus the ledger that shares it.
type LocalRecords struct {
	db       *DB
	ledger   *Ledger
	tables   map[string]struct{}
	order    []string
	endpoint string
	now      func() time.Time
}

// NewLocalRecords constructs the local backend for the given tables.
// endpoint is the human-readable location reported in the connection
// status; empty means the local backend is not configured.
func NewLocalRecords(db *DB, ledger *Ledger, tables []string, endpoint string) *LocalRecords {
	set := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		set[t] = struct{}{}
	}

	return &LocalRecords{
		db:       db,
		ledger:   ledger,
		tables:   set,
		order:    tables,
		endpoint: endpoint,
		now:      time.Now,
	}
}

// EnsureTables creates every configured table that the migrations did not.
func (s *LocalRecords) EnsureTables(ctx context.Context) error {
	for _, table := range s.order {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id         TEXT PRIMARY KEY,
    payload    TEXT    NOT NULL,
    updated_at INTEGER NOT NULL,
    updated_by TEXT    NOT NULL DEFAULT ''
)`, quoteIdent(table))
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrExecutingStatement, table, err)
		}
	}
	return nil
}

// Ping checks that the local database answers.
func (s *LocalRecords) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Endpoint returns the local database location, nil when unconfigured.
func (s *LocalRecords) Endpoint() *string {
	if s.endpoint == "" {
		return nil
	}
	endpoint := s.endpoint
	return &endpoint
}

// CheckTable returns [ErrUnknownTable] for names outside the configured
// dependency order.
func (s *LocalRecords) CheckTable(table string) error {
	if _, ok := s.tables[table]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}

// Get reads one record. A missing row yields [ErrRecordNotFound].
func (s *LocalRecords) Get(ctx context.Context, table, id string) (models.Record, error) {
	if err := s.CheckTable(table); err != nil {
		return models.Record{}, err
	}

	query, args, err := sq.Select(recordColumns...).
		From(quoteIdent(table)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	var updatedAt int64
	record := models.Record{Table: table}
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &payload, &updatedAt, &record.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, table, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "LocalRecords.Get").
			Str("table", table).
			Str("record_id", id).
			Msg("failed to read local record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	record.Payload = json.RawMessage(payload)
	record.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return record, nil
}

// Apply performs a write without touching the ledger. It is used in cloud
// mode, where the write is mirrored to the cloud synchronously.
func (s *LocalRecords) Apply(ctx context.Context, m models.Mutation) (models.Record, error) {
	var record models.Record

	err := s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		record, err = s.applyTx(ctx, tx, m)
		return err
	})

	return record, err
}

// ApplyAndRecord performs a write and appends its ledger entry in the same
// transaction. If the ledger insert fails the write is rolled back.
func (s *LocalRecords) ApplyAndRecord(ctx context.Context, m models.Mutation) (models.Record, models.PendingChangeEntry, error) {
	var record models.Record
	var entry models.PendingChangeEntry

	err := s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		if record, err = s.applyTx(ctx, tx, m); err != nil {
			return err
		}
		entry, err = s.ledger.RecordTx(ctx, tx, models.PendingChange{
			TableName: m.Table,
			RecordID:  m.RecordID,
			Operation: m.Operation,
			Actor:     m.Actor,
		})
		return err
	})
	if err != nil {
		return models.Record{}, models.PendingChangeEntry{}, err
	}

	return record, entry, nil
}

// Restore puts a record back to a previously captured state. A nil prior
// means the record did not exist and is deleted.
func (s *LocalRecords) Restore(ctx context.Context, table, id string, prior *models.Record) error {
	if err := s.CheckTable(table); err != nil {
		return err
	}

	var builder sq.Sqlizer
	if prior == nil {
		builder = sq.Delete(quoteIdent(table)).Where(sq.Eq{"id": id})
	} else {
		builder = sq.Insert(quoteIdent(table)).
			Columns(recordColumns...).
			Values(id, string(prior.Payload), prior.UpdatedAt.UnixNano(), prior.UpdatedBy).
			Suffix("ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, " +
				"updated_at = excluded.updated_at, updated_by = excluded.updated_by")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.db.withRetry(ctx, func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "LocalRecords.Restore").
				Str("table", table).
				Str("record_id", id).
				Msg("failed to restore local record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (s *LocalRecords) inTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback() //nolint:errcheck

		if err = fn(ctx, tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (s *LocalRecords) applyTx(ctx context.Context, tx *sql.Tx, m models.Mutation) (models.Record, error) {
	log := logger.FromContext(ctx)

	if err := s.validateMutation(m); err != nil {
		return models.Record{}, err
	}

	record := models.Record{
		Table:     m.Table,
		ID:        m.RecordID,
		Payload:   m.Payload,
		UpdatedAt: s.now().UTC(),
		UpdatedBy: m.Actor,
	}

	var builder sq.Sqlizer
	switch m.Operation {
	case models.OperationInsert:
		builder = sq.Insert(quoteIdent(m.Table)).
			Columns(recordColumns...).
			Values(record.ID, string(record.Payload), record.UpdatedAt.UnixNano(), record.UpdatedBy)
	case models.OperationUpdate:
		builder = sq.Update(quoteIdent(m.Table)).
			Set("payload", string(record.Payload)).
			Set("updated_at", record.UpdatedAt.UnixNano()).
			Set("updated_by", record.UpdatedBy).
			Where(sq.Eq{"id": record.ID})
	case models.OperationDelete:
		builder = sq.Delete(quoteIdent(m.Table)).Where(sq.Eq{"id": record.ID})
		record.Payload = nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return models.Record{}, fmt.Errorf("%w: %s/%s", ErrRecordExists, m.Table, m.RecordID)
		}
		log.Err(err).
			Str("func", "LocalRecords.applyTx").
			Str("table", m.Table).
			Str("record_id", m.RecordID).
			Str("operation", string(m.Operation)).
			Msg("failed to apply local write")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if m.Operation != models.OperationInsert {
		affected, err := res.RowsAffected()
		if err != nil {
			return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return models.Record{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, m.Table, m.RecordID)
		}
	}

	return record, nil
}

func (s *LocalRecords) validateMutation(m models.Mutation) error {
	if err := s.CheckTable(m.Table); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}
	return nil
}

// quoteIdent quotes a table name that was already checked against the
// configured set.
func quoteIdent(name string) string {
	return `"` + name + `"`
}
