// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the goose schema migrations of the
// local SQLite store and the cloud PostgreSQL store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed local/*.sql
var localMigrations embed.FS

//go:embed cloud/*.sql
var cloudMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

var errNilDB = errors.New("db is nil")

// MigrateLocal applies the local schema: clinic tables, the pending-change
// ledger and the failure table.
func MigrateLocal(db *sql.DB) error {
	return migrate(db, localMigrations, "local", goose.DialectSQLite3)
}

// MigrateCloud applies the cloud schema: clinic tables with JSONB payloads.
func MigrateCloud(db *sql.DB) error {
	return migrate(db, cloudMigrations, "cloud", goose.DialectPostgres)
}

func migrate(db *sql.DB, fsys fs.FS, dir string, dialect goose.Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
