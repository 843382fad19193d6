// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the syncd
// daemon. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: runtime kind, token verification,
	// version and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite and the cloud backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the daemon HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound client settings for the cloud REST backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds timings for the probe and drain workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the table dependency order.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Runtime is the hosting runtime kind: "desktop" or "web".
	// Env: APP_RUNTIME
	Runtime string `env:"RUNTIME"`

	// TokenSignKey is the HMAC key used to verify session JWTs. When empty,
	// Authorization headers are ignored and every request is anonymous.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim. Empty disables the check.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile switches logging to a rotated file. Empty logs to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for both backends.
type Storage struct {
	Local LocalStorage `envPrefix:"LOCAL_"`
	Cloud CloudStorage `envPrefix:"CLOUD_"`
}

// LocalStorage holds the on-premise SQLite settings.
type LocalStorage struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Cloud backend drivers.
const (
	CloudDriverPostgres = "postgres"
	CloudDriverHTTP     = "http"
	CloudDriverNone     = "none"
)

// CloudStorage holds the cloud backend settings.
type CloudStorage struct {
	// Driver is one of "postgres", "http" or "none". When empty it is
	// inferred from DSN / URL.
	// Env: STORAGE_CLOUD_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the cloud PostgreSQL connection string.
	// Env: STORAGE_CLOUD_DSN
	DSN string `env:"DSN"`

	// URL is the base URL of the cloud records REST gateway.
	// Env: STORAGE_CLOUD_URL
	URL string `env:"URL"`

	// Migrate applies the cloud schema migrations at startup.
	// Env: STORAGE_CLOUD_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Server holds network and timeout settings for the inbound HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the daemon API listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound client settings.
type Adapter struct {
	// RequestTimeout bounds one request to the cloud REST gateway.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CloudToken is sent as a bearer token to the cloud REST gateway.
	// Env: ADAPTER_CLOUD_TOKEN
	CloudToken string `env:"CLOUD_TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
	// Env: WORKERS_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
	// DrainEntryTimeout bounds the cloud write of a single record group.
	// Env: WORKERS_DRAIN_ENTRY_TIMEOUT
	DrainEntryTimeout time.Duration `env:"DRAIN_ENTRY_TIMEOUT"`
	// DrainRetries is the number of retries for transient cloud errors.
	// Env: WORKERS_DRAIN_RETRIES
	DrainRetries int `env:"DRAIN_RETRIES"`
	// DrainRetryBase is the first backoff step.
	// Env: WORKERS_DRAIN_RETRY_BASE
	DrainRetryBase time.Duration `env:"DRAIN_RETRY_BASE"`
}

// Sync holds the synchronisation settings.
type Sync struct {
	// TableOrder is the table dependency order, parents first.
	// Env: SYNC_TABLE_ORDER (comma separated)
	TableOrder []string `env:"TABLE_ORDER" envSeparator:","`
}

// GetDaemonConfig loads, merges, defaults and validates the daemon
// configuration. Sources are applied in the following order, later non-zero
// values overriding earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetDaemonConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
}
