// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
)

var testTables = []string{"branches", "patients", "appointments"}

// newTestDB opens a migrated SQLite file in a temp dir.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "clinic.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.MigrateLocal())
	return db
}

// fixedClock returns the same instant on every call.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// steppingClock advances by one millisecond on every call.
func steppingClock(start time.Time) func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		return start.Add(time.Duration(n.Add(1)) * time.Millisecond)
	}
}
