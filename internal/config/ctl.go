// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultCtlDaemonURL = "http://" + defaultHTTPAddress
	defaultCtlTimeout   = 10 * time.Second
)

// CtlConfig is the syncctl configuration. Env values are read with the
// SYNCCTL_ prefix; cobra flags override them.
type CtlConfig struct {
	// DaemonURL is the base URL of the syncd API.
	// Env: SYNCCTL_DAEMON_URL
	DaemonURL string `env:"DAEMON_URL"`
	// Token is forwarded as a bearer token for audit attribution.
	// Env: SYNCCTL_TOKEN
	Token string `env:"TOKEN"`
	// Timeout bounds one request to the daemon.
	// Env: SYNCCTL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// AssumeYes skips confirmation prompts.
	// Env: SYNCCTL_ASSUME_YES
	AssumeYes bool `env:"ASSUME_YES"`
}

// GetCtlConfig reads the syncctl configuration from the environment and
// fills defaults.
func GetCtlConfig() (*CtlConfig, error) {
	cfg := &CtlConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "SYNCCTL_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills zero fields.
func (c *CtlConfig) ApplyDefaults() {
	if c.DaemonURL == "" {
		c.DaemonURL = defaultCtlDaemonURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultCtlTimeout
	}
}
