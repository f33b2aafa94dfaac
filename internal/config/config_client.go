package config

import (
	"cmp"
	"fmt"
	"time"
)

const (
	defaultClientDSN      = "file:bookmarks.db?_foreign_keys=on"
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = 5 * time.Minute
)

// ClientAdapter holds the remote service settings used by the client.
type ClientAdapter struct {
	ServiceURL     string
	RequestTimeout time.Duration
	ExtraHeaders   map[string]string
	// HashKey enables the HashSHA256 header when non-empty.
	HashKey  string
	APIToken string
}

// ClientConfig is the client view of [StructuredConfig] with defaults
// applied.
type ClientConfig struct {
	Adapter      ClientAdapter
	DSN          string
	SyncInterval time.Duration
	LogPath      string
	// Command is the CLI command with its arguments, e.g. ["rm", "3"].
	Command []string
}

// GetClientConfig builds and validates the client config from env, args and
// the optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client and fills in
// defaults for the zero ones.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServiceURL:     cfg.Adapter.ServiceURL,
			RequestTimeout: cmp.Or(cfg.Adapter.RequestTimeout, defaultRequestTimeout),
			ExtraHeaders:   cfg.Adapter.ExtraHeaders,
			HashKey:        cfg.App.HashKey,
			APIToken:       cfg.App.APIToken,
		},
		DSN:          cmp.Or(cfg.Storage.DB.DSN, defaultClientDSN),
		SyncInterval: cmp.Or(cfg.Workers.SyncInterval, defaultSyncInterval),
		LogPath:      cfg.Log.Path,
		Command:      cfg.Command,
	}
}
