// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StatusSummary is what operators see in the sync indicator.
type StatusSummary struct {
	Connection ConnectionStatus `json:"connection"`

	// Pending is nil when the ledger could not be read.
	Pending *SyncPendingStatus `json:"pending"`

	// PendingError explains why Pending is missing.
	PendingError string `json:"pending_error,omitempty"`

	LastChecked time.Time `json:"last_checked"`

	// LastSync is the most recent drain result, nil before the first drain.
	LastSync *SyncResult `json:"last_sync,omitempty"`
}
