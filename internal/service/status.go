// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

type statusReporter struct {
	prober   Prober
	modes    ModeSelector
	ledger   PendingLedger
	executor SyncExecutor
}

func NewStatusReporter(prober Prober, modes ModeSelector, ledger PendingLedger, executor SyncExecutor) StatusReporter {
	return &statusReporter{prober: prober, modes: modes, ledger: ledger, executor: executor}
}

// Summarize never fails. When the ledger cannot be read the summary
// carries the connection status only, with PendingError set.
func (r *statusReporter) Summarize(ctx context.Context) models.StatusSummary {
	connection, _ := r.prober.Latest()
	connection.Mode = r.modes.Mode()

	summary := models.StatusSummary{
		Connection:  connection,
		LastChecked: connection.CheckedAt,
		LastSync:    r.executor.LastResult(),
	}

	pending, err := r.ledger.Aggregate(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "statusReporter.Summarize").
			Msg("pending changes unavailable")
		summary.PendingError = err.Error()
		return summary
	}
	summary.Pending = &pending

	return summary
}
