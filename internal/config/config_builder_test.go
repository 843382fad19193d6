// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, "desktop", cfg.App.Runtime)
	assert.Equal(t, "clinic-local.db", cfg.Storage.Local.DSN)
	assert.Equal(t, CloudDriverNone, cfg.Storage.Cloud.Driver)
	assert.Equal(t, "127.0.0.1:8787", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.ProbeTimeout)
	assert.Equal(t, DefaultTableOrder, cfg.Sync.TableOrder)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Runtime: "web", TokenIssuer: "env-issuer"},
			Storage: Storage{Local: LocalStorage{DSN: "env.db"}},
		},
		&StructuredConfig{
			Storage: Storage{Local: LocalStorage{DSN: "flag.db"}},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "web", cfg.App.Runtime)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
}

func TestBuild_InfersCloudDriver(t *testing.T) {
	tests := []struct {
		name   string
		cloud  CloudStorage
		driver string
	}{
		{name: "dsn means postgres", cloud: CloudStorage{DSN: "postgres://x"}, driver: CloudDriverPostgres},
		{name: "url means http", cloud: CloudStorage{URL: "http://cloud"}, driver: CloudDriverHTTP},
		{name: "nothing means none", cloud: CloudStorage{}, driver: CloudDriverNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Cloud: tt.cloud}})

			cfg, err := b.build()

			require.NoError(t, err)
			assert.Equal(t, tt.driver, cfg.Storage.Cloud.Driver)
		})
	}
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
		err  error
	}{
		{name: "unknown runtime", cfg: &StructuredConfig{App: App{Runtime: "mobile"}}, err: ErrInvalidAppConfigs},
		{name: "postgres without dsn", cfg: &StructuredConfig{Storage: Storage{Cloud: CloudStorage{Driver: "postgres"}}}, err: ErrInvalidStorageConfigs},
		{name: "http without url", cfg: &StructuredConfig{Storage: Storage{Cloud: CloudStorage{Driver: "http"}}}, err: ErrInvalidStorageConfigs},
		{name: "unknown driver", cfg: &StructuredConfig{Storage: Storage{Cloud: CloudStorage{Driver: "mysql"}}}, err: ErrInvalidStorageConfigs},
		{name: "probe timeout over interval", cfg: &StructuredConfig{Workers: Workers{ProbeInterval: time.Second, ProbeTimeout: time.Minute}}, err: ErrInvalidWorkerConfigs},
		{name: "duplicate table", cfg: &StructuredConfig{Sync: Sync{TableOrder: []string{"a", "a"}}}, err: ErrInvalidSyncConfigs},
		{name: "table not an identifier", cfg: &StructuredConfig{Sync: Sync{TableOrder: []string{"drop table;"}}}, err: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	jsonPath := writeRawJSON(t, `{"app": {"version": "9.9.9"}, "storage": {"local": {"dsn": "json.db"}}}`)
	setEnvVars(t, map[string]string{
		"STORAGE_LOCAL_DSN": "env.db",
		"APP_TOKEN_ISSUER":  "env-issuer",
		"CONFIG":            jsonPath,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token-issuer", "flag-issuer"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}

func TestBuilder_WithFlagsError(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown"}).build()
	require.Error(t, err)
}

func TestBuilder_WithJSONMissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}
