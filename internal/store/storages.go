package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// Storages is everything kept in the local SQLite file: the clinic tables
// and the pending-change ledger.
type Storages struct {
	DB     *DB
	Ledger *Ledger
	Local  *LocalRecords
}

// NewStorages opens and migrates the local database and creates the
// configured clinic tables. On the web runtime the file still holds the
// ledger, but it is not reported as a local backend endpoint.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, runtime models.RuntimeEnvironment, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.Storage.Local.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	if err = db.MigrateLocal(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	var endpoint string
	if runtime.SupportsLocalBackend() {
		endpoint = cfg.Storage.Local.DSN
	}

	ledger := NewLedger(db)
	local := NewLocalRecords(db, ledger, cfg.Sync.TableOrder, endpoint)
	if err = local.EnsureTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare local tables: %w", err)
	}

	return &Storages{DB: db, Ledger: ledger, Local: local}, nil
}

func (s *Storages) Close() error {
	return s.DB.Close()
}
