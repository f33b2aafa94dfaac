// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate rejects values no view can repair with defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 || cfg.Workers.SyncInterval < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfigs)
	}

	for name := range cfg.Adapter.ExtraHeaders {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty extra header name", ErrInvalidAdapterConfigs)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServiceURL == "" {
		return fmt.Errorf("%w: service url is required", ErrInvalidAdapterConfigs)
	}

	u, err := url.Parse(cfg.Adapter.ServiceURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: service url %q must be an absolute http(s) url", ErrInvalidAdapterConfigs, cfg.Adapter.ServiceURL)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
