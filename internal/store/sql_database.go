// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/migrations"
)

const (
	busyRetries   = 3
	busyRetryBase = 25 * time.Millisecond
)

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database handle with the driver-specific error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened handle. It is used by tests with sqlmock
// and by callers that manage the driver themselves.
func NewDB(conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) *DB {
	if log == nil {
		log = logger.Nop()
	}
	return &DB{DB: conn, errorClassificator: classifier, logger: log}
}

// Classify reports how err should be treated by retry loops.
func (db *DB) Classify(err error) ErrorClassification {
	if err == nil || db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// MigrateLocal applies the local SQLite schema.
func (db *DB) MigrateLocal() error {
	return migrations.MigrateLocal(db.DB)
}

// MigrateCloud applies the cloud PostgreSQL schema.
func (db *DB) MigrateCloud() error {
	return migrations.MigrateCloud(db.DB)
}

// withRetry runs fn and retries it while the classifier reports the error
// as retryable (lock contention, dropped connection).
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewExponential(busyRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
