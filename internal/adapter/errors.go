// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Cloud backend errors.
var (
	// ErrCloudUnavailable is a transient failure: connection refused,
	// timeout, serialization conflict, 5xx. The write may succeed later.
	ErrCloudUnavailable = errors.New("cloud backend unavailable")

	// ErrCloudRejected means the cloud refused this particular write.
	// Retrying the same request will not help.
	ErrCloudRejected = errors.New("cloud backend rejected the write")

	// ErrCloudNotFound is returned by Get for a missing row.
	ErrCloudNotFound = errors.New("record not found in cloud backend")

	// ErrCloudDisabled is returned by every call of the "none" driver.
	ErrCloudDisabled = errors.New("cloud backend is not configured")
)

// Daemon API errors, mapped from HTTP status codes.
var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrPreconditionRequired = errors.New("confirmation required")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrInternalServerError  = errors.New("internal server error")
)
