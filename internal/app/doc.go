// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the sync daemon from its configuration and runs it:
// storage, cloud backend, sync services, background workers and the HTTP
// API share one lifecycle.
package app
