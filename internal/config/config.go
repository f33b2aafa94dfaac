// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the emulator server. It is populated by merging values
// from environment variables, command-line flags and an optional JSON file.
type StructuredConfig struct {
	// App holds the integrity hash key and the emulator API token.
	App App `envPrefix:"APP_"`

	// Storage holds the local sqlite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeout of the emulator server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter describes the remote bookmark service the client syncs with.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// Command holds positional arguments left after flag parsing, e.g.
	// ["add", "Go", "https://go.dev"]. Never read from env or JSON.
	Command []string
}

// App holds application-level secrets.
type App struct {
	// HashKey is the HMAC key for the HashSHA256 integrity header.
	// Empty disables signing on the client and checking on the server.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// APIToken is sent by the client and required by the server in the
	// x-amx-token header. Empty disables the check.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the sqlite connection settings.
type DB struct {
	// DSN is the sqlite data source name, e.g. "file:bookmarks.db?_fk=1".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the emulator server.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings of the remote bookmark service.
type Adapter struct {
	// ServiceURL is the service root; collections live at ServiceURL/<Type>.
	// Env: ADAPTER_SERVICE_URL
	ServiceURL string `env:"SERVICE_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ExtraHeaders are added to every outbound request.
	// Env: ADAPTER_EXTRA_HEADERS in "k1:v1,k2:v2" form.
	ExtraHeaders map[string]string `env:"EXTRA_HEADERS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync in watch mode.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Path is the client log file. Empty logs to stdout.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources override non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
