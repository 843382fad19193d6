// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
	"github.com/MKhiriev/go-clinic-sync/models"
)

type pendingService struct {
	ledger PendingLedger
}

func NewPendingService(ledger PendingLedger) PendingService {
	return &pendingService{ledger: ledger}
}

func (s *pendingService) Details(ctx context.Context, limit int) ([]models.PendingEntryDetail, error) {
	return s.ledger.Details(ctx, limit)
}

func (s *pendingService) Summary(ctx context.Context) (models.SyncPendingStatus, error) {
	return s.ledger.Aggregate(ctx)
}

// Discard drops an entry without replaying it. The local row is kept, so
// the cloud will not see that write until the record changes again.
func (s *pendingService) Discard(ctx context.Context, id string) error {
	entry, err := s.ledger.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.ledger.Remove(ctx, id); err != nil {
		return err
	}

	actor, _ := utils.ActorFromContext(ctx)
	logger.FromContext(ctx).Warn().
		Str("func", "pendingService.Discard").
		Str("entry_id", entry.ID).
		Str("table", entry.TableName).
		Str("record_id", entry.RecordID).
		Str("operation", string(entry.Operation)).
		Str("actor", actor).
		Msg("pending change discarded")

	return nil
}
