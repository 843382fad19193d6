// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
)

// Table names double as SQL identifiers.
var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. It must run after applyDefaults.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Runtime {
	case "desktop", "web":
	default:
		return fmt.Errorf("%w: unknown runtime %q", ErrInvalidAppConfigs, cfg.App.Runtime)
	}

	switch cfg.Storage.Cloud.Driver {
	case CloudDriverPostgres:
		if cfg.Storage.Cloud.DSN == "" {
			return fmt.Errorf("%w: postgres cloud driver requires a DSN", ErrInvalidStorageConfigs)
		}
	case CloudDriverHTTP:
		if cfg.Storage.Cloud.URL == "" {
			return fmt.Errorf("%w: http cloud driver requires a URL", ErrInvalidStorageConfigs)
		}
	case CloudDriverNone:
	default:
		return fmt.Errorf("%w: unknown cloud driver %q", ErrInvalidStorageConfigs, cfg.Storage.Cloud.Driver)
	}

	if cfg.Storage.Local.DSN == "" {
		return fmt.Errorf("%w: empty local DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.ProbeInterval <= 0 || cfg.Workers.ProbeTimeout <= 0 || cfg.Workers.DrainEntryTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.ProbeTimeout > cfg.Workers.ProbeInterval {
		return fmt.Errorf("%w: probe timeout exceeds probe interval", ErrInvalidWorkerConfigs)
	}

	seen := make(map[string]struct{}, len(cfg.Sync.TableOrder))
	for _, table := range cfg.Sync.TableOrder {
		if !tableNamePattern.MatchString(table) {
			return fmt.Errorf("%w: invalid table name %q", ErrInvalidSyncConfigs, table)
		}
		if _, dup := seen[table]; dup {
			return fmt.Errorf("%w: duplicate table %q", ErrInvalidSyncConfigs, table)
		}
		seen[table] = struct{}{}
	}

	return nil
}
