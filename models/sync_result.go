// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncFailure describes one record whose replay failed during a drain.
type SyncFailure struct {
	EntryIDs  []string  `json:"entry_ids"`
	TableName string    `json:"table_name"`
	RecordID  string    `json:"record_id"`
	Operation Operation `json:"operation"`
	Error     string    `json:"error"`
}

// SyncResult summarizes one drain of the ledger.
type SyncResult struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// TablesTouched lists tables with at least one applied entry, in the
	// order they were first applied.
	TablesTouched []string `json:"tables_touched"`

	// AppliedByTable counts removed ledger entries per table.
	AppliedByTable map[string]int `json:"applied_by_table"`

	// Applied is the total number of ledger entries removed.
	Applied int `json:"applied"`

	// Failed lists records that stayed in the ledger because the cloud
	// rejected them.
	Failed []SyncFailure `json:"failed,omitempty"`

	// Error is the first error encountered, empty on a clean drain.
	Error string `json:"error,omitempty"`

	// Skipped is set when another drain was already running.
	Skipped bool `json:"skipped,omitempty"`

	// Interrupted is set when the drain stopped early because of
	// cancellation or lost connectivity.
	Interrupted bool `json:"interrupted,omitempty"`
}

// Empty reports whether the drain applied nothing and failed nothing.
func (r SyncResult) Empty() bool {
	return r.Applied == 0 && len(r.Failed) == 0
}
