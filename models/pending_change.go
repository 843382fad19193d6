// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Operation is the kind of write a ledger entry tracks.
type Operation string

const (
	OperationInsert Operation = "INSERT"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// Validate returns an error when o is not one of the known operations.
func (o Operation) Validate() error {
	switch o {
	case OperationInsert, OperationUpdate, OperationDelete:
		return nil
	default:
		return fmt.Errorf("unknown operation %q", string(o))
	}
}

// PendingChangeEntry is one durable record of a local write that has not
// yet been confirmed on the cloud backend.
//
// Entries are immutable once written. The ledger deletes an entry after the
// sync executor confirms the equivalent cloud write.
type PendingChangeEntry struct {
	// ID is a UUIDv7 assigned at creation.
	ID string `json:"id"`

	// TableName is the affected entity collection.
	TableName string `json:"table_name"`

	// RecordID is the primary key of the affected row.
	RecordID string `json:"record_id"`

	// Operation is the kind of the original local write.
	Operation Operation `json:"operation"`

	// CreatedAt is the time of the original local write.
	CreatedAt time.Time `json:"created_at"`

	// Actor is the user the write is attributed to. Empty for anonymous
	// writes.
	Actor string `json:"actor,omitempty"`

	// Seq breaks ties between entries with identical CreatedAt.
	Seq int64 `json:"seq"`
}

// PendingChange is the input of a ledger record call.
type PendingChange struct {
	TableName string
	RecordID  string
	Operation Operation
	Actor     string
}

// EntryFailure is the last cloud-side failure recorded for a ledger entry.
type EntryFailure struct {
	EntryID  string    `json:"entry_id"`
	Error    string    `json:"error"`
	Attempts int       `json:"attempts"`
	FailedAt time.Time `json:"failed_at"`
}

// PendingEntryDetail joins an entry with its last failure for the
// administrator detail view.
type PendingEntryDetail struct {
	PendingChangeEntry
	Failure *EntryFailure `json:"failure,omitempty"`
}

// SyncPendingStatus is the aggregate view over the ledger.
type SyncPendingStatus struct {
	TotalPending int            `json:"total_pending"`
	ByTable      map[string]int `json:"by_table"`
}
