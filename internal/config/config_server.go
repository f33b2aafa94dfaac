package config

import (
	"cmp"
	"fmt"
	"time"
)

const defaultServerAddress = "localhost:8080"

// ServerConfig is the emulator server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	HashKey        string
	APIToken       string
}

// GetServerConfig builds and validates the emulator config.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cmp.Or(cfg.Server.HTTPAddress, defaultServerAddress),
		RequestTimeout: cmp.Or(cfg.Server.RequestTimeout, defaultRequestTimeout),
		HashKey:        cfg.App.HashKey,
		APIToken:       cfg.App.APIToken,
	}
}
