// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the daemon flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a daemon API address in format [host]:[port]
//	-runtime desktop|web
//	-d local SQLite DSN
//	-cloud-driver postgres|http|none
//	-cloud-dsn cloud PostgreSQL DSN
//	-cloud-url cloud REST gateway base URL
//	-cloud-migrate apply cloud schema migrations at startup
//	-c/-config json file path with configs
//	-token-sign-key session token verification key
//	-token-issuer expected token issuer
//	-request-timeout API request timeout (e.g., "30s")
//	-adapter-timeout cloud REST request timeout
//	-probe-interval connection probe period
//	-probe-timeout single probe timeout
//	-drain-entry-timeout timeout for one record group during a drain
//	-drain-retries transient error retries per record group
//	-log-file rotated log file path
//	-log-level zerolog level
//	-tables comma-separated table dependency order
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("syncd", flag.ContinueOnError)

	var serverAddress NetAddress
	var runtimeKind, localDSN string
	var cloudDriver, cloudDSN, cloudURL string
	var cloudMigrate bool
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout, adapterTimeout time.Duration
	var probeInterval, probeTimeout, drainEntryTimeout time.Duration
	var drainRetries int
	var logFile, logLevel string
	var tables string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&runtimeKind, "runtime", "", "Runtime kind: desktop or web")
	fs.StringVar(&localDSN, "d", "", "Local SQLite DSN")
	fs.StringVar(&cloudDriver, "cloud-driver", "", "Cloud driver: postgres, http or none")
	fs.StringVar(&cloudDSN, "cloud-dsn", "", "Cloud PostgreSQL DSN")
	fs.StringVar(&cloudURL, "cloud-url", "", "Cloud REST gateway URL")
	fs.BoolVar(&cloudMigrate, "cloud-migrate", false, "Apply cloud migrations at startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Cloud REST request timeout")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connection probe interval")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Single probe timeout")
	fs.DurationVar(&drainEntryTimeout, "drain-entry-timeout", 0, "Timeout of one record group during a drain")
	fs.IntVar(&drainRetries, "drain-retries", 0, "Retries for transient cloud errors")
	fs.StringVar(&logFile, "log-file", "", "Rotated log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tables, "tables", "", "Comma-separated table dependency order")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Runtime:      runtimeKind,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogFile:      logFile,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Local: LocalStorage{DSN: localDSN},
			Cloud: CloudStorage{
				Driver:  cloudDriver,
				DSN:     cloudDSN,
				URL:     cloudURL,
				Migrate: cloudMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{RequestTimeout: adapterTimeout},
		Workers: Workers{
			ProbeInterval:     probeInterval,
			ProbeTimeout:      probeTimeout,
			DrainEntryTimeout: drainEntryTimeout,
			DrainRetries:      drainRetries,
		},
		Sync:         Sync{TableOrder: splitList(tables)},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
