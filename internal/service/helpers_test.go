// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
	"github.com/MKhiriev/go-clinic-sync/models"
)

var (
	testTables  = []string{"branches", "patients", "appointments"}
	desktop     = models.RuntimeEnvironment{Kind: models.RuntimeDesktop}
	web         = models.RuntimeEnvironment{Kind: models.RuntimeWeb}
	testWorkers = config.Workers{DrainRetries: 2, DrainRetryBase: 1}
)

// newTestStore opens a migrated SQLite file in a temp dir.
func newTestStore(t *testing.T) (*store.LocalRecords, *store.Ledger) {
	t.Helper()
	db, err := store.NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "clinic.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.MigrateLocal())

	ledger := store.NewLedger(db)
	return store.NewLocalRecords(db, ledger, testTables, "clinic.db"), ledger
}

func mutation(op models.Operation, table, id, payload string) models.Mutation {
	m := models.Mutation{Table: table, RecordID: id, Operation: op, Actor: "nurse"}
	if payload != "" {
		m.Payload = json.RawMessage(payload)
	}
	return m
}

// memoryCloud is an in-memory CloudBackend that records the order of
// writes and lets tests inject failures.
type memoryCloud struct {
	mu     sync.Mutex
	rows   map[string]models.Record
	writes []string

	pingErr error

	// failWrite returns an error for a write before it is applied.
	failWrite func(op, table, id string) error
	// staleReads makes Get return the row as it was before the last upsert.
	staleReads bool
	before     map[string]*models.Record
	// blockUpsert, when set, holds every upsert until it is closed.
	blockUpsert chan struct{}
	// upsertStarted receives a value when an upsert begins.
	upsertStarted chan struct{}
}

func newMemoryCloud() *memoryCloud {
	return &memoryCloud{rows: make(map[string]models.Record)}
}

func key(table, id string) string { return table + "/" + id }

func (c *memoryCloud) Name() string { return "memory" }

func (c *memoryCloud) Ping(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pingErr
}

func (c *memoryCloud) Get(_ context.Context, table, id string) (models.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.rows[key(table, id)]
	if prev, seen := c.before[key(table, id)]; c.staleReads && seen {
		if prev == nil {
			ok = false
		} else {
			record = *prev
		}
	}
	if !ok {
		return models.Record{}, fmt.Errorf("%w: %s", adapter.ErrCloudNotFound, key(table, id))
	}
	return record, nil
}

func (c *memoryCloud) Upsert(_ context.Context, record models.Record) error {
	if c.upsertStarted != nil {
		c.upsertStarted <- struct{}{}
	}
	if c.blockUpsert != nil {
		<-c.blockUpsert
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failWrite != nil {
		if err := c.failWrite("UPSERT", record.Table, record.ID); err != nil {
			return err
		}
	}
	if c.staleReads {
		if c.before == nil {
			c.before = make(map[string]*models.Record)
		}
		if _, seen := c.before[key(record.Table, record.ID)]; !seen {
			if prev, ok := c.rows[key(record.Table, record.ID)]; ok {
				c.before[key(record.Table, record.ID)] = &prev
			} else {
				c.before[key(record.Table, record.ID)] = nil
			}
		}
	}
	c.rows[key(record.Table, record.ID)] = record
	c.writes = append(c.writes, "UPSERT "+key(record.Table, record.ID))
	return nil
}

func (c *memoryCloud) Delete(_ context.Context, table, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failWrite != nil {
		if err := c.failWrite("DELETE", table, id); err != nil {
			return err
		}
	}
	delete(c.rows, key(table, id))
	c.writes = append(c.writes, "DELETE "+key(table, id))
	return nil
}

func (c *memoryCloud) Close() error { return nil }

func (c *memoryCloud) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

func (c *memoryCloud) Row(table, id string) (models.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.rows[key(table, id)]
	return r, ok
}

func (c *memoryCloud) Put(record models.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[key(record.Table, record.ID)] = record
}

// fixedMode is a ModeSelector pinned to one mode.
type fixedMode struct{ mode models.Mode }

func (f fixedMode) Mode() models.Mode                                         { return f.mode }
func (f fixedMode) OnStatus(context.Context, models.ConnectionStatus)         {}
func (f fixedMode) Subscribe(func(ctx context.Context, from, to models.Mode)) {}
