// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the counter
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the poll timer settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the client logger appends JSON lines to.
	// Empty means a "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the backend transport.
type Adapter struct {
	// HTTPAddress is the backend base address, either "host:port" or a full
	// "http(s)://host:port" URL. The push channel address is derived from it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero leaves the
	// transport default in place (no timeout).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DisablePush turns the live push subscription off; the client then
	// relies on polling alone.
	// Env: ADAPTER_DISABLE_PUSH
	DisablePush bool `env:"DISABLE_PUSH"`
}

// Workers holds the settings of the background poll timer.
type Workers struct {
	// PollInterval is the period between two scheduled counter reads.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// DiscardStale enables the sequence-number guard that drops responses
	// older than the last applied one.
	// Env: WORKERS_DISCARD_STALE
	DiscardStale bool `env:"DISCARD_STALE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. See the package documentation for the precedence rules.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
