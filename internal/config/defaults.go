// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"time"
)

const (
	defaultRuntime           = "desktop"
	defaultLocalDSN          = "clinic-local.db"
	defaultHTTPAddress       = "127.0.0.1:8787"
	defaultRequestTimeout    = 30 * time.Second
	defaultAdapterTimeout    = 10 * time.Second
	defaultProbeInterval     = 30 * time.Second
	defaultProbeTimeout      = 3 * time.Second
	defaultDrainEntryTimeout = 15 * time.Second
	defaultDrainRetries      = 3
	defaultDrainRetryBase    = 200 * time.Millisecond
	defaultLogLevel          = "info"
	defaultVersion           = "dev"
)

// DefaultTableOrder is the dependency order of the clinic tables, parents
// first.
var DefaultTableOrder = []string{
	"branches",
	"practitioners",
	"patients",
	"inventory_items",
	"crm_leads",
	"appointments",
	"clinical_records",
	"prescriptions",
	"invoices",
	"invoice_items",
	"payments",
	"inventory_movements",
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Runtime == "" {
		cfg.App.Runtime = defaultRuntime
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Storage.Local.DSN == "" {
		cfg.Storage.Local.DSN = defaultLocalDSN
	}
	if cfg.Storage.Cloud.Driver == "" {
		switch {
		case cfg.Storage.Cloud.DSN != "":
			cfg.Storage.Cloud.Driver = CloudDriverPostgres
		case cfg.Storage.Cloud.URL != "":
			cfg.Storage.Cloud.Driver = CloudDriverHTTP
		default:
			cfg.Storage.Cloud.Driver = CloudDriverNone
		}
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Workers.ProbeInterval == 0 {
		cfg.Workers.ProbeInterval = defaultProbeInterval
	}
	if cfg.Workers.ProbeTimeout == 0 {
		cfg.Workers.ProbeTimeout = defaultProbeTimeout
	}
	if cfg.Workers.DrainEntryTimeout == 0 {
		cfg.Workers.DrainEntryTimeout = defaultDrainEntryTimeout
	}
	if cfg.Workers.DrainRetries == 0 {
		cfg.Workers.DrainRetries = defaultDrainRetries
	}
	if cfg.Workers.DrainRetryBase == 0 {
		cfg.Workers.DrainRetryBase = defaultDrainRetryBase
	}
	if len(cfg.Sync.TableOrder) == 0 {
		cfg.Sync.TableOrder = slices.Clone(DefaultTableOrder)
	}
}
