// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/models"
)

func entry(seq int64, table, id string, op models.Operation, at time.Time) models.PendingChangeEntry {
	return models.PendingChangeEntry{
		ID:        table + "-" + id + "-" + string(op),
		TableName: table,
		RecordID:  id,
		Operation: op,
		CreatedAt: at,
		Seq:       seq,
	}
}

func TestPlanReplay(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rank := tableRank(testTables)

	entries := []models.PendingChangeEntry{
		entry(1, "appointments", "a1", models.OperationInsert, t0),
		entry(2, "patients", "p1", models.OperationInsert, t0.Add(time.Second)),
		entry(3, "patients", "p2", models.OperationInsert, t0.Add(2*time.Second)),
		entry(4, "patients", "p2", models.OperationDelete, t0.Add(3*time.Second)),
		entry(5, "branches", "b1", models.OperationDelete, t0.Add(4*time.Second)),
		entry(6, "patients", "p1", models.OperationUpdate, t0.Add(5*time.Second)),
		entry(7, "unknown", "x1", models.OperationInsert, t0),
	}

	groups := planReplay(entries, rank)

	type step struct {
		table, id string
		remove    bool
		entries   int
	}
	var got []step
	for _, g := range groups {
		got = append(got, step{g.table, g.recordID, g.remove, len(g.entries)})
	}

	assert.Equal(t, []step{
		{"patients", "p1", false, 2},
		{"appointments", "a1", false, 1},
		{"unknown", "x1", false, 1},
		{"patients", "p2", true, 2},
		{"branches", "b1", true, 1},
	}, got)
}

func TestPlanReplay_DeleteThenInsertIsUpsert(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	groups := planReplay([]models.PendingChangeEntry{
		entry(1, "patients", "p1", models.OperationDelete, t0),
		entry(2, "patients", "p1", models.OperationInsert, t0.Add(time.Second)),
	}, tableRank(testTables))

	require.Len(t, groups, 1)
	assert.False(t, groups[0].remove)
	assert.Equal(t, models.OperationInsert, groups[0].last().Operation)
	assert.Equal(t, []string{"patients-p1-DELETE", "patients-p1-INSERT"}, groups[0].entryIDs())
}

func TestPlanReplay_TiesBrokenBySeq(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	groups := planReplay([]models.PendingChangeEntry{
		entry(9, "patients", "late", models.OperationInsert, t0),
		entry(2, "patients", "early", models.OperationInsert, t0),
	}, tableRank(testTables))

	require.Len(t, groups, 2)
	assert.Equal(t, "early", groups[0].recordID)
}

func TestPlanReplay_Empty(t *testing.T) {
	assert.Empty(t, planReplay(nil, tableRank(testTables)))
}
