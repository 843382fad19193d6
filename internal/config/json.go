// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations accept both Go duration strings and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Runtime      string `json:"runtime"`
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
		LogFile      string `json:"log_file"`
		LogLevel     string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
		Cloud struct {
			Driver  string `json:"driver"`
			DSN     string `json:"dsn"`
			URL     string `json:"url"`
			Migrate bool   `json:"migrate"`
		} `json:"cloud,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		CloudToken     string   `json:"cloud_token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ProbeInterval     Duration `json:"probe_interval"`
		ProbeTimeout      Duration `json:"probe_timeout"`
		DrainEntryTimeout Duration `json:"drain_entry_timeout"`
		DrainRetries      int      `json:"drain_retries"`
		DrainRetryBase    Duration `json:"drain_retry_base"`
	} `json:"workers,omitempty"`

	Sync struct {
		TableOrder []string `json:"table_order"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Runtime:      jsonCfg.App.Runtime,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
			LogFile:      jsonCfg.App.LogFile,
			LogLevel:     jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Local: LocalStorage{DSN: jsonCfg.Storage.Local.DSN},
			Cloud: CloudStorage{
				Driver:  jsonCfg.Storage.Cloud.Driver,
				DSN:     jsonCfg.Storage.Cloud.DSN,
				URL:     jsonCfg.Storage.Cloud.URL,
				Migrate: jsonCfg.Storage.Cloud.Migrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			CloudToken:     jsonCfg.Adapter.CloudToken,
		},
		Workers: Workers{
			ProbeInterval:     time.Duration(jsonCfg.Workers.ProbeInterval),
			ProbeTimeout:      time.Duration(jsonCfg.Workers.ProbeTimeout),
			DrainEntryTimeout: time.Duration(jsonCfg.Workers.DrainEntryTimeout),
			DrainRetries:      jsonCfg.Workers.DrainRetries,
			DrainRetryBase:    time.Duration(jsonCfg.Workers.DrainRetryBase),
		},
		Sync: Sync{TableOrder: jsonCfg.Sync.TableOrder},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
