// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY":  "hash_secret",
		"APP_API_TOKEN": "token",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_SERVICE_URL":     "http://services.example.com/Bookmarks.svc",
		"ADAPTER_REQUEST_TIMEOUT": "10s",
		"ADAPTER_EXTRA_HEADERS":   "x-amx-tenant:42,x-client:cli",

		"STORAGE_DB_DSN":        "file:test.db",
		"WORKERS_SYNC_INTERVAL": "5m",
		"LOG_PATH":              "/var/log/bookmarks.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "hash_secret", cfg.App.HashKey)
	assert.Equal(t, "token", cfg.App.APIToken)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://services.example.com/Bookmarks.svc", cfg.Adapter.ServiceURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, map[string]string{"x-amx-tenant": "42", "x-client": "cli"}, cfg.Adapter.ExtraHeaders)

	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "/var/log/bookmarks.log", cfg.Log.Path)
	assert.Empty(t, cfg.Command)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_SERVICE_URL": "http://localhost:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServiceURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Nil(t, cfg.Adapter.ExtraHeaders)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HASH_KEY",
		"APP_API_TOKEN",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"ADAPTER_SERVICE_URL",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_EXTRA_HEADERS",

		"STORAGE_DB_DSN",
		"WORKERS_SYNC_INTERVAL",
		"LOG_PATH",
	}
	for _, k := range keys {
		// t.Setenv регистрирует восстановление исходного значения
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
