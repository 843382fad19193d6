// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local store and the ledger. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrLedgerWrite is returned when a pending-change entry could not be
	// persisted. The local write it belongs to is rolled back.
	ErrLedgerWrite = errors.New("pending change could not be recorded")

	// ErrLedgerRead is returned when the ledger cannot be queried.
	ErrLedgerRead = errors.New("pending changes could not be read")

	// ErrEntryNotFound is returned by Ledger.Get for an unknown entry id.
	ErrEntryNotFound = errors.New("pending change entry not found")

	// ErrRecordNotFound is returned when a clinic record does not exist in
	// the local database.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordExists is returned when an INSERT targets an existing id.
	ErrRecordExists = errors.New("record already exists")

	// ErrUnknownTable is returned for table names outside the configured
	// dependency order.
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvalidMutation is returned for a mutation with an unknown
	// operation, an empty record id or a missing payload.
	ErrInvalidMutation = errors.New("invalid mutation")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
