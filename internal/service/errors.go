// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-clinic-sync/internal/store"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrPostConditionFailed is returned when a cloud write reported success
	// but reading the row back shows a different state.
	ErrPostConditionFailed = errors.New("cloud write post-condition failed")

	// ErrReadOnly is returned for writes while no backend is reachable.
	ErrReadOnly = errors.New("writes are disabled while offline")

	// ErrBackendUnavailable is returned for reads while no backend is
	// reachable, or when the active backend dropped mid-request.
	ErrBackendUnavailable = errors.New("no backend available")

	// ErrLocalUnreadable is returned when a drain cannot read the local
	// state of a record. The record is left pending and the drain stops.
	ErrLocalUnreadable = errors.New("local record could not be read")

	// ErrRestoreFailed is joined to the cloud error when the local row could
	// not be put back after a failed cloud-mode write.
	ErrRestoreFailed = errors.New("local record could not be restored")
)

// Store errors surfaced unchanged through the gateway.
var (
	ErrUnknownTable   = store.ErrUnknownTable
	ErrRecordNotFound = store.ErrRecordNotFound
)
