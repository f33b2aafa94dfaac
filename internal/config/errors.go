package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidConfigs indicates a value that is invalid regardless of the
	// view (for example, a negative duration).
	ErrInvalidConfigs = errors.New("invalid configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote service settings
	// (for example, a missing or relative service url).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty sqlite DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid emulator server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
