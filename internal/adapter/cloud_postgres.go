// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
	"github.com/MKhiriev/go-clinic-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresCloud talks to the cloud PostgreSQL database directly.
type postgresCloud struct {
	db     *store.DB
	tables map[string]struct{}
	order  []string
}

// NewPostgresCloud wraps an opened cloud pool. tables limits the accepted
// table names.
func NewPostgresCloud(db *store.DB, tables []string) CloudBackend {
	set := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		set[t] = struct{}{}
	}
	return &postgresCloud{db: db, tables: set, order: tables}
}

func (p *postgresCloud) Name() string { return "postgres" }

func (p *postgresCloud) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return p.classify(err)
	}
	return nil
}

// EnsureTables creates configured tables missing from the cloud schema.
func (p *postgresCloud) EnsureTables(ctx context.Context) error {
	for _, table := range p.order {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id         TEXT PRIMARY KEY,
    payload    JSONB       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    updated_by TEXT        NOT NULL DEFAULT ''
)`, quoteIdent(table))
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return p.classify(err)
		}
	}
	return nil
}

func (p *postgresCloud) Get(ctx context.Context, table, id string) (models.Record, error) {
	if err := p.checkTable(table); err != nil {
		return models.Record{}, err
	}

	query, args, err := psql.Select("id", "payload", "updated_at", "updated_by").
		From(quoteIdent(table)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", store.ErrBuildingSQLQuery, err)
	}

	record := models.Record{Table: table}
	var payload string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &payload, &record.UpdatedAt, &record.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, fmt.Errorf("%w: %s/%s", ErrCloudNotFound, table, id)
	}
	if err != nil {
		return models.Record{}, p.classify(err)
	}
	record.Payload = []byte(payload)
	record.UpdatedAt = record.UpdatedAt.UTC()

	return record, nil
}

func (p *postgresCloud) Upsert(ctx context.Context, record models.Record) error {
	if err := p.checkTable(record.Table); err != nil {
		return err
	}

	query, args, err := psql.Insert(quoteIdent(record.Table)).
		Columns("id", "payload", "updated_at", "updated_by").
		Values(record.ID, string(record.Payload), record.UpdatedAt.UTC(), record.UpdatedBy).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, " +
			"updated_at = EXCLUDED.updated_at, updated_by = EXCLUDED.updated_by").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCloud.Upsert").
			Str("table", record.Table).
			Str("record_id", record.ID).
			Str("sqlstate", store.PostgresErrorCode(err)).
			Msg("cloud upsert failed")
		return p.classify(err)
	}
	return nil
}

func (p *postgresCloud) Delete(ctx context.Context, table, id string) error {
	if err := p.checkTable(table); err != nil {
		return err
	}

	query, args, err := psql.Delete(quoteIdent(table)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCloud.Delete").
			Str("table", table).
			Str("record_id", id).
			Str("sqlstate", store.PostgresErrorCode(err)).
			Msg("cloud delete failed")
		return p.classify(err)
	}
	return nil
}

func (p *postgresCloud) Close() error {
	return p.db.Close()
}

func (p *postgresCloud) checkTable(table string) error {
	if _, ok := p.tables[table]; !ok {
		return fmt.Errorf("%w: unknown table %q", ErrCloudRejected, table)
	}
	return nil
}

func (p *postgresCloud) classify(err error) error {
	if p.db.Classify(err) == store.Retryable {
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrCloudRejected, err)
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}
