// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements syncctl, the operator CLI of the sync daemon.
//
// Every command is a thin call to the daemon HTTP API followed by terminal
// rendering. Destructive commands ask for confirmation unless --yes is set.
package client
