// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingConfirmation is returned for destructive requests without
	// the matching X-Confirm-Action header.
	ErrMissingConfirmation = errors.New("confirmation required")

	// ErrInvalidBody is returned when a request body is not valid JSON or
	// misses required fields.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidLimit is returned for a non-numeric or negative limit.
	ErrInvalidLimit = errors.New("invalid limit")
)
