// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgError(code string) error {
	return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), Retryable},
		{"deadline", context.DeadlineExceeded, Retryable},
		{"plain error", assert.AnError, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorCode(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, PostgresErrorCode(pgError(pgerrcode.UniqueViolation)))
	assert.Empty(t, PostgresErrorCode(assert.AnError))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
}

func TestDB_ClassifyWithoutClassifier(t *testing.T) {
	assert.Equal(t, NonRetryable, NewDB(nil, nil, nil).Classify(assert.AnError))
}

func TestSQLiteDSN(t *testing.T) {
	dsn, err := sqliteDSN("file:custom.db?mode=ro")
	require.NoError(t, err)
	assert.Equal(t, "file:custom.db?mode=ro", dsn)

	dsn, err = sqliteDSN(":memory:")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dsn, "file::memory:?"))

	path := filepath.Join(t.TempDir(), "nested", "dir", "clinic.db")
	dsn, err = sqliteDSN(path)
	require.NoError(t, err)
	assert.Equal(t, "file:"+path+"?"+sqliteParams, dsn)
	assert.DirExists(t, filepath.Dir(path))
}
