// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// httpCloud reaches the cloud through a REST gateway speaking the records
// protocol: GET/PUT/DELETE /api/records/{table}/{id} and GET /api/health.
// PUT is an idempotent upsert on the gateway.
type httpCloud struct {
	client *utils.HTTPClient
}

// recordBody is the wire shape of PUT /api/records/{table}/{id}.
type recordBody struct {
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
	UpdatedBy string          `json:"updated_by,omitempty"`
}

// NewHTTPCloud constructs a REST cloud backend for baseURL.
func NewHTTPCloud(baseURL string, timeout time.Duration, token string) (CloudBackend, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloud url: %w", err)
	}
	return &httpCloud{client: utils.NewHTTPClient(normalized, timeout, token)}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCloud) Name() string { return "http" }

func (h *httpCloud) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}
	return mapCloudHTTPError(resp)
}

func (h *httpCloud) Get(ctx context.Context, table, id string) (models.Record, error) {
	var record models.Record

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"table": table, "id": id}).
		SetResult(&record).
		Get("/api/records/{table}/{id}")
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}
	if err = mapCloudHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	record.Table = table
	record.ID = id
	return record, nil
}

func (h *httpCloud) Upsert(ctx context.Context, record models.Record) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"table": record.Table, "id": record.ID}).
		SetBody(recordBody{Payload: record.Payload, UpdatedAt: record.UpdatedAt, UpdatedBy: record.UpdatedBy}).
		Put("/api/records/{table}/{id}")
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpCloud.Upsert").
			Str("table", record.Table).
			Str("record_id", record.ID).
			Msg("cloud upsert request failed")
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}
	return mapCloudHTTPError(resp)
}

func (h *httpCloud) Delete(ctx context.Context, table, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"table": table, "id": id}).
		Delete("/api/records/{table}/{id}")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}

	err = mapCloudHTTPError(resp)
	if errors.Is(err, ErrCloudNotFound) {
		return nil
	}
	return err
}

func (h *httpCloud) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
