// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the syncd daemon and the syncctl operator CLI.
//
// Daemon configuration is assembled from multiple sources in the following
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetDaemonConfig] and [GetCtlConfig].
package config
