// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "syncd.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {"runtime": "desktop", "token_sign_key": "k", "version": "1.2.3", "log_level": "error"},
		"storage": {
			"local": {"dsn": "/data/clinic.db"},
			"cloud": {"driver": "postgres", "dsn": "postgres://cloud/db", "migrate": true}
		},
		"server": {"http_address": "127.0.0.1:8800", "request_timeout": "15s"},
		"adapter": {"request_timeout": 2000000000, "cloud_token": "ct"},
		"workers": {"probe_interval": "10s", "probe_timeout": "1s", "drain_entry_timeout": "5s", "drain_retries": 6, "drain_retry_base": "50ms"},
		"sync": {"table_order": ["branches", "patients"]}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "desktop", cfg.App.Runtime)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "/data/clinic.db", cfg.Storage.Local.DSN)
	assert.Equal(t, CloudStorage{Driver: "postgres", DSN: "postgres://cloud/db", Migrate: true}, cfg.Storage.Cloud)
	assert.Equal(t, Server{HTTPAddress: "127.0.0.1:8800", RequestTimeout: 15 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{RequestTimeout: 2 * time.Second, CloudToken: "ct"}, cfg.Adapter)
	assert.Equal(t, Workers{
		ProbeInterval:     10 * time.Second,
		ProbeTimeout:      time.Second,
		DrainEntryTimeout: 5 * time.Second,
		DrainRetries:      6,
		DrainRetryBase:    50 * time.Millisecond,
	}, cfg.Workers)
	assert.Equal(t, []string{"branches", "patients"}, cfg.Sync.TableOrder)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading a json file")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseJSON(writeRawJSON(t, `{"app":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding json configs")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseJSON(writeRawJSON(t, `{"server": {"request_timeout": "fast"}}`))
		require.Error(t, err)
	})

	t.Run("duration of wrong type", func(t *testing.T) {
		_, err := parseJSON(writeRawJSON(t, `{"server": {"request_timeout": true}}`))
		require.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
