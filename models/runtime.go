// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RuntimeKind names the host the application is running in.
type RuntimeKind string

const (
	// RuntimeDesktop is the native host with an on-premise database.
	RuntimeDesktop RuntimeKind = "desktop"
	// RuntimeWeb is a browser deployment that can only reach the cloud.
	RuntimeWeb RuntimeKind = "web"
)

// RuntimeEnvironment describes the capabilities of the running host. It is
// resolved once at startup and handed to the components that need it.
type RuntimeEnvironment struct {
	Kind RuntimeKind `json:"kind"`
}

// ParseRuntimeKind converts a configuration value into a [RuntimeKind].
// An empty value defaults to [RuntimeDesktop].
func ParseRuntimeKind(s string) (RuntimeKind, error) {
	switch RuntimeKind(s) {
	case "", RuntimeDesktop:
		return RuntimeDesktop, nil
	case RuntimeWeb:
		return RuntimeWeb, nil
	default:
		return "", fmt.Errorf("unknown runtime %q", s)
	}
}

// SupportsLocalBackend reports whether the host can run against an
// on-premise backend at all.
func (r RuntimeEnvironment) SupportsLocalBackend() bool {
	return r.Kind != RuntimeWeb
}
