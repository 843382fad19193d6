// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Mode is the currently active backend selection.
type Mode string

const (
	// ModeCloud routes all data access to the cloud backend.
	ModeCloud Mode = "cloud"
	// ModeLocal routes data access to the on-premise backend and ledgers
	// every write for later replay.
	ModeLocal Mode = "local"
	// ModeOffline means neither backend is reachable. Writes are refused.
	ModeOffline Mode = "offline"
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// ConnectionStatus is a snapshot of backend reachability produced by a
// single probe. It is never persisted.
type ConnectionStatus struct {
	// Mode is the mode derived from the availability flags.
	Mode Mode `json:"mode"`

	// CloudAvailable reports whether the cloud backend answered the probe.
	CloudAvailable bool `json:"cloud_available"`

	// LocalAvailable reports whether the local backend answered the probe.
	LocalAvailable bool `json:"local_available"`

	// LocalEndpoint is the address of the local backend, nil when no local
	// backend is configured.
	LocalEndpoint *string `json:"local_endpoint"`

	// CheckedAt is the moment the probe finished.
	CheckedAt time.Time `json:"checked_at"`
}

// SameReachability reports whether two statuses describe the same
// availability of both backends, ignoring timestamps.
func (s ConnectionStatus) SameReachability(other ConnectionStatus) bool {
	return s.CloudAvailable == other.CloudAvailable &&
		s.LocalAvailable == other.LocalAvailable &&
		s.Mode == other.Mode
}
