// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/models"
)

func newTestHTTPCloud(t *testing.T, handler http.HandlerFunc) CloudBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cloud, err := NewHTTPCloud(srv.URL, 2*time.Second, "cloud-token")
	require.NoError(t, err)
	return cloud
}

// ── Ping ──────────────────────────────────────────────────────────────────────

func TestHTTPCloud_Ping(t *testing.T) {
	cloud := newTestHTTPCloud(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Equal(t, "Bearer cloud-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, cloud.Ping(context.Background()))
	assert.Equal(t, "http", cloud.Name())
}

func TestHTTPCloud_PingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cloud, err := NewHTTPCloud(url, time.Second, "")
	require.NoError(t, err)

	assert.ErrorIs(t, cloud.Ping(context.Background()), ErrCloudUnavailable)
}

// ── Get / Upsert / Delete ─────────────────────────────────────────────────────

func TestHTTPCloud_Get(t *testing.T) {
	updated := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	cloud := newTestHTTPCloud(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/records/patients/p1":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.Record{
				Table: "patients", ID: "p1", Payload: json.RawMessage(`{"name":"Ann"}`), UpdatedAt: updated,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	record, err := cloud.Get(context.Background(), "patients", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", record.ID)
	assert.JSONEq(t, `{"name":"Ann"}`, string(record.Payload))
	assert.True(t, updated.Equal(record.UpdatedAt))

	_, err = cloud.Get(context.Background(), "patients", "nobody")
	assert.ErrorIs(t, err, ErrCloudNotFound)
}

func TestHTTPCloud_Upsert(t *testing.T) {
	var gotBody recordBody
	cloud := newTestHTTPCloud(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/records/invoices/i1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := cloud.Upsert(context.Background(), models.Record{
		Table: "invoices", ID: "i1", Payload: json.RawMessage(`{"total":10}`), UpdatedBy: "clerk",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"total":10}`, string(gotBody.Payload))
	assert.Equal(t, "clerk", gotBody.UpdatedBy)
}

func TestHTTPCloud_ErrorClasses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"server error is transient", http.StatusBadGateway, ErrCloudUnavailable},
		{"throttling is transient", http.StatusTooManyRequests, ErrCloudUnavailable},
		{"validation is a rejection", http.StatusUnprocessableEntity, ErrCloudRejected},
		{"conflict is a rejection", http.StatusConflict, ErrCloudRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cloud := newTestHTTPCloud(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			})

			err := cloud.Upsert(context.Background(), models.Record{Table: "patients", ID: "p1", Payload: json.RawMessage(`{}`)})

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestHTTPCloud_DeleteMissingIsSuccess(t *testing.T) {
	calls := 0
	cloud := newTestHTTPCloud(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		if calls == 1 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, cloud.Delete(context.Background(), "patients", "p1"))
	assert.NoError(t, cloud.Delete(context.Background(), "patients", "p1"))
	assert.Equal(t, 2, calls)
}

func TestNewHTTPCloud_InvalidURL(t *testing.T) {
	_, err := NewHTTPCloud("", time.Second, "")
	assert.Error(t, err)

	cloud, err := NewHTTPCloud("cloud.example:8080/", time.Second, "")
	require.NoError(t, err)
	assert.Equal(t, "http://cloud.example:8080", cloud.(*httpCloud).client.BaseURL)
}

func TestNoCloud(t *testing.T) {
	cloud := NewNoCloud()
	ctx := context.Background()

	assert.Equal(t, "none", cloud.Name())
	assert.ErrorIs(t, cloud.Ping(ctx), ErrCloudDisabled)
	assert.ErrorIs(t, cloud.Upsert(ctx, models.Record{}), ErrCloudDisabled)
	assert.ErrorIs(t, cloud.Delete(ctx, "t", "x"), ErrCloudDisabled)
	_, err := cloud.Get(ctx, "t", "x")
	assert.ErrorIs(t, err, ErrCloudDisabled)
	assert.NoError(t, cloud.Close())
}
