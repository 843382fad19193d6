// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
)

// NewConnectPostgres opens the cloud PostgreSQL pool. It does not ping:
// the cloud may be unreachable at startup and reachability is the
// connection prober's business.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(8)
	conn.SetMaxIdleConns(4)

	log.Info().Str("func", "NewConnectPostgres").Msg("cloud database pool opened")

	return NewDB(conn, NewPostgresErrorClassifier(), log), nil
}

// PostgresErrorCode returns the SQLSTATE of err, or "" for non-server
// errors.
func PostgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
