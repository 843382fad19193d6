// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clinic-sync/internal/utils"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// Confirmation header values required by destructive daemon endpoints.
const (
	ConfirmHeader  = "X-Confirm-Action"
	ConfirmDrain   = "drain"
	ConfirmDiscard = "discard"
)

// TraceHeader carries the id that ties one syncctl invocation to the daemon
// log lines it caused.
const TraceHeader = "X-Trace-ID"

type httpSyncDaemon struct {
	client *utils.HTTPClient
}

// NewSyncDaemon constructs the syncd API client used by syncctl.
func NewSyncDaemon(baseURL string, timeout time.Duration, token string) (SyncDaemon, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid daemon url: %w", err)
	}
	client := utils.NewHTTPClient(normalized, timeout, token)
	client.SetHeader(TraceHeader, "syncctl-"+uuid.NewString())
	return &httpSyncDaemon{client: client}, nil
}

func (d *httpSyncDaemon) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	err := d.get(ctx, "/api/version", nil, &info)
	return info, err
}

func (d *httpSyncDaemon) Status(ctx context.Context) (models.StatusSummary, error) {
	var summary models.StatusSummary
	err := d.get(ctx, "/api/sync/status", nil, &summary)
	return summary, err
}

func (d *httpSyncDaemon) Refresh(ctx context.Context) (models.StatusSummary, error) {
	var summary models.StatusSummary

	resp, err := d.client.R().
		SetContext(ctx).
		SetResult(&summary).
		Post("/api/sync/status/refresh")
	if err != nil {
		return models.StatusSummary{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusSummary{}, err
	}
	return summary, nil
}

func (d *httpSyncDaemon) Pending(ctx context.Context, limit int) ([]models.PendingEntryDetail, error) {
	var details []models.PendingEntryDetail

	var query map[string]string
	if limit > 0 {
		query = map[string]string{"limit": strconv.Itoa(limit)}
	}
	err := d.get(ctx, "/api/sync/pending", query, &details)
	return details, err
}

func (d *httpSyncDaemon) PendingSummary(ctx context.Context) (models.SyncPendingStatus, error) {
	var status models.SyncPendingStatus
	err := d.get(ctx, "/api/sync/pending/summary", nil, &status)
	return status, err
}

func (d *httpSyncDaemon) Drain(ctx context.Context) (models.SyncResult, error) {
	var result models.SyncResult

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader(ConfirmHeader, ConfirmDrain).
		SetResult(&result).
		Post("/api/sync/drain")
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("drain request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResult{}, err
	}
	return result, nil
}

func (d *httpSyncDaemon) Discard(ctx context.Context, entryID string) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader(ConfirmHeader, ConfirmDiscard).
		SetPathParam("id", entryID).
		Delete("/api/sync/pending/{id}")
	if err != nil {
		return fmt.Errorf("discard request: %w", err)
	}
	return mapHTTPError(resp)
}

func (d *httpSyncDaemon) get(ctx context.Context, path string, query map[string]string, result any) error {
	req := d.client.R().SetContext(ctx).SetResult(result)
	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return mapHTTPError(resp)
}
