// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/models"
)

func newTestLocal(t *testing.T) (*LocalRecords, *Ledger) {
	t.Helper()
	db := newTestDB(t)
	ledger := NewLedger(db)
	local := NewLocalRecords(db, ledger, testTables, "clinic.db")
	local.now = steppingClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))
	return local, ledger
}

func insert(table, id, payload string) models.Mutation {
	return models.Mutation{Table: table, RecordID: id, Operation: models.OperationInsert, Payload: json.RawMessage(payload), Actor: "nurse"}
}

// ── ApplyAndRecord ────────────────────────────────────────────────────────────

func TestLocalRecords_ApplyAndRecord(t *testing.T) {
	ctx := context.Background()
	local, ledger := newTestLocal(t)

	record, entry, err := local.ApplyAndRecord(ctx, insert("patients", "p1", `{"name":"Ann"}`))
	require.NoError(t, err)
	assert.Equal(t, "p1", record.ID)
	assert.Equal(t, "patients", entry.TableName)
	assert.Equal(t, models.OperationInsert, entry.Operation)
	assert.Equal(t, "nurse", entry.Actor)

	got, err := local.Get(ctx, "patients", "p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann"}`, string(got.Payload))
	assert.Equal(t, "nurse", got.UpdatedBy)

	entries, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestLocalRecords_FailedWriteLeavesNoEntry(t *testing.T) {
	ctx := context.Background()
	local, ledger := newTestLocal(t)

	_, _, err := local.ApplyAndRecord(ctx, insert("patients", "p1", `{"v":1}`))
	require.NoError(t, err)

	_, _, err = local.ApplyAndRecord(ctx, insert("patients", "p1", `{"v":2}`))
	assert.ErrorIs(t, err, ErrRecordExists)

	_, _, err = local.ApplyAndRecord(ctx, models.Mutation{Table: "patients", RecordID: "ghost", Operation: models.OperationUpdate, Payload: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, _, err = local.ApplyAndRecord(ctx, models.Mutation{Table: "patients", RecordID: "ghost", Operation: models.OperationDelete})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	status, err := ledger.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalPending)
}

func TestLocalRecords_LedgerFailureRollsBackWrite(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db := NewDB(conn, nil, nil)
	local := NewLocalRecords(db, NewLedger(db), testTables, "")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "patients"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pending_changes`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, _, err = local.ApplyAndRecord(context.Background(), insert("patients", "p1", `{"v":1}`))

	assert.ErrorIs(t, err, ErrLedgerWrite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── validation ────────────────────────────────────────────────────────────────

func TestLocalRecords_Validation(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	tests := []struct {
		name string
		m    models.Mutation
		err  error
	}{
		{name: "unknown table", m: insert("sqlite_master", "x", `{}`), err: ErrUnknownTable},
		{name: "empty id", m: insert("patients", "", `{}`), err: ErrInvalidMutation},
		{name: "array payload", m: insert("patients", "p1", `[1,2]`), err: ErrInvalidMutation},
		{name: "missing payload", m: insert("patients", "p1", ``), err: ErrInvalidMutation},
		{name: "bad operation", m: models.Mutation{Table: "patients", RecordID: "p1", Operation: "MERGE", Payload: json.RawMessage(`{}`)}, err: ErrInvalidMutation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := local.Apply(ctx, tt.m)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := local.Get(ctx, "sqlite_master", "x")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

// ── Apply / Restore ───────────────────────────────────────────────────────────

func TestLocalRecords_ApplyUpdateDelete(t *testing.T) {
	ctx := context.Background()
	local, ledger := newTestLocal(t)

	_, err := local.Apply(ctx, insert("branches", "b1", `{"city":"Oslo"}`))
	require.NoError(t, err)

	_, err = local.Apply(ctx, models.Mutation{Table: "branches", RecordID: "b1", Operation: models.OperationUpdate, Payload: json.RawMessage(`{"city":"Bergen"}`)})
	require.NoError(t, err)

	got, err := local.Get(ctx, "branches", "b1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"city":"Bergen"}`, string(got.Payload))

	_, err = local.Apply(ctx, models.Mutation{Table: "branches", RecordID: "b1", Operation: models.OperationDelete})
	require.NoError(t, err)

	_, err = local.Get(ctx, "branches", "b1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// Apply never touches the ledger
	status, err := ledger.Aggregate(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.TotalPending)
}

func TestLocalRecords_Restore(t *testing.T) {
	ctx := context.Background()
	local, _ := newTestLocal(t)

	original, err := local.Apply(ctx, insert("patients", "p1", `{"name":"Ann"}`))
	require.NoError(t, err)
	_, err = local.Apply(ctx, models.Mutation{Table: "patients", RecordID: "p1", Operation: models.OperationUpdate, Payload: json.RawMessage(`{"name":"Bob"}`)})
	require.NoError(t, err)

	require.NoError(t, local.Restore(ctx, "patients", "p1", &original))
	got, err := local.Get(ctx, "patients", "p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann"}`, string(got.Payload))
	assert.True(t, original.UpdatedAt.Equal(got.UpdatedAt))

	// nil prior means the row did not exist before
	require.NoError(t, local.Restore(ctx, "patients", "p1", nil))
	_, err = local.Get(ctx, "patients", "p1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// restoring a deleted row recreates it
	require.NoError(t, local.Restore(ctx, "patients", "p1", &original))
	_, err = local.Get(ctx, "patients", "p1")
	require.NoError(t, err)
}

// ── tables / endpoint ─────────────────────────────────────────────────────────

func TestLocalRecords_EnsureTablesCreatesCustomTables(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	local := NewLocalRecords(db, NewLedger(db), []string{"branches", "lab_orders"}, "")

	require.NoError(t, local.EnsureTables(ctx))
	require.NoError(t, local.EnsureTables(ctx))

	_, err := local.Apply(ctx, insert("lab_orders", "l1", `{"test":"cbc"}`))
	require.NoError(t, err)
}

func TestLocalRecords_Endpoint(t *testing.T) {
	local, _ := newTestLocal(t)
	require.NotNil(t, local.Endpoint())
	assert.Equal(t, "clinic.db", *local.Endpoint())

	assert.Nil(t, NewLocalRecords(nil, nil, nil, "").Endpoint())
}

func TestLocalRecords_Ping(t *testing.T) {
	local, _ := newTestLocal(t)
	assert.NoError(t, local.Ping(context.Background()))
}
