// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

func change(table, id string, op models.Operation) models.PendingChange {
	return models.PendingChange{TableName: table, RecordID: id, Operation: op, Actor: "nurse"}
}

// ── Record / List / Remove ────────────────────────────────────────────────────

func TestLedger_RecordListRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(newTestDB(t))

	entry, err := ledger.Record(ctx, change("patients", "p1", models.OperationInsert))
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Positive(t, entry.Seq)
	assert.Equal(t, "nurse", entry.Actor)

	entries, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, models.OperationInsert, entries[0].Operation)
	assert.True(t, entry.CreatedAt.Equal(entries[0].CreatedAt))

	require.NoError(t, ledger.Remove(ctx, entry.ID))

	entries, err = ledger.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(newTestDB(t))

	entry, err := ledger.Record(ctx, change("patients", "p1", models.OperationInsert))
	require.NoError(t, err)

	require.NoError(t, ledger.Remove(ctx, entry.ID))
	require.NoError(t, ledger.Remove(ctx, entry.ID))
	require.NoError(t, ledger.Remove(ctx, "never-existed"))
}

func TestLedger_ListOrder(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(newTestDB(t))
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// identical timestamps are ordered by insertion sequence
	ledger.now = fixedClock(base)
	first, err := ledger.Record(ctx, change("patients", "p1", models.OperationInsert))
	require.NoError(t, err)
	second, err := ledger.Record(ctx, change("patients", "p1", models.OperationUpdate))
	require.NoError(t, err)

	// an older timestamp recorded later still sorts first
	ledger.now = fixedClock(base.Add(-time.Hour))
	older, err := ledger.Record(ctx, change("branches", "b1", models.OperationInsert))
	require.NoError(t, err)

	entries, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{older.ID, first.ID, second.ID},
		[]string{entries[0].ID, entries[1].ID, entries[2].ID})

	limited, err := ledger.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestLedger_RecordValidation(t *testing.T) {
	ledger := NewLedger(newTestDB(t))

	_, err := ledger.Record(context.Background(), change("patients", "p1", "UPSERT"))
	assert.ErrorIs(t, err, ErrLedgerWrite)

	_, err = ledger.Record(context.Background(), change("", "p1", models.OperationInsert))
	assert.ErrorIs(t, err, ErrLedgerWrite)
}

// ── Get / Aggregate ───────────────────────────────────────────────────────────

func TestLedger_Get(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(newTestDB(t))

	entry, err := ledger.Record(ctx, change("patients", "p1", models.OperationDelete))
	require.NoError(t, err)

	got, err := ledger.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.RecordID, got.RecordID)
	assert.Equal(t, models.OperationDelete, got.Operation)

	_, err = ledger.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestLedger_Aggregate(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(newTestDB(t))

	empty, err := ledger.Aggregate(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalPending)
	assert.Empty(t, empty.ByTable)

	for _, c := range []models.PendingChange{
		change("patients", "p1", models.OperationInsert),
		change("patients", "p2", models.OperationInsert),
		change("patients", "p1", models.OperationUpdate),
		change("invoices", "i1", models.OperationInsert),
	} {
		_, err := ledger.Record(ctx, c)
		require.NoError(t, err)
	}

	status, err := ledger.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, status.TotalPending)
	assert.Equal(t, map[string]int{"patients": 3, "invoices": 1}, status.ByTable)
}

// ── failures ──────────────────────────────────────────────────────────────────

func TestLedger_RecordFailureAndDetails(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(newTestDB(t))

	ok, err := ledger.Record(ctx, change("patients", "p1", models.OperationInsert))
	require.NoError(t, err)
	bad, err := ledger.Record(ctx, change("patients", "p2", models.OperationInsert))
	require.NoError(t, err)

	require.NoError(t, ledger.RecordFailure(ctx, bad.ID, errors.New("rejected: first")))
	require.NoError(t, ledger.RecordFailure(ctx, bad.ID, errors.New("rejected: second")))

	details, err := ledger.Details(ctx, 0)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, ok.ID, details[0].ID)
	assert.Nil(t, details[0].Failure)

	require.NotNil(t, details[1].Failure)
	assert.Equal(t, "rejected: second", details[1].Failure.Error)
	assert.Equal(t, 2, details[1].Failure.Attempts)

	require.NoError(t, ledger.Remove(ctx, bad.ID))
	failures, err := ledger.Failures(ctx)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

// ── persistence ───────────────────────────────────────────────────────────────

func TestLedger_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/clinic.db"

	db, err := NewConnectSQLite(ctx, path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.MigrateLocal())
	entry, err := NewLedger(db).Record(ctx, change("patients", "p1", models.OperationInsert))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := NewConnectSQLite(ctx, path, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := NewLedger(reopened).Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.RecordID)
}

// ── driver failures ───────────────────────────────────────────────────────────

func TestLedger_ListQueryError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("SELECT .* FROM pending_changes").WillReturnError(assert.AnError)

	_, err = NewLedger(NewDB(conn, nil, nil)).List(context.Background(), 0)

	assert.ErrorIs(t, err, ErrLedgerRead)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
