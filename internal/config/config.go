// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-shard-keeper replica. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Device holds the identity settings of this replica.
	Device Device `envPrefix:"DEVICE_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the inbound
	// peer-message HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Peers holds the addresses of the user's other devices and the outbound
	// delivery settings.
	Peers Peers `envPrefix:"PEERS_"`

	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Device holds the identity settings of the local replica.
type Device struct {
	// DisplayName is the human-readable label this device announces at
	// pairing time (e.g. "Work laptop").
	// Env: DEVICE_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the database connection
	// (e.g. "shard-keeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the peer-message HTTP server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Peers holds outbound delivery settings for the user's other devices.
type Peers struct {
	// Addresses lists the peer replicas' base addresses in "host:port" or
	// full-URL form. Delivery is best-effort; offline peers are skipped.
	// Env: PEERS_ADDRESSES (comma-separated)
	Addresses []string `env:"ADDRESSES" envSeparator:","`

	// RequestTimeout is the per-peer timeout for one outbound request.
	// Env: PEERS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SyncDebounce is how long the broadcast worker waits after a local
	// change before sending the coalesced document to the peers.
	// Env: PEERS_SYNC_DEBOUNCE
	SyncDebounce time.Duration `env:"SYNC_DEBOUNCE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
