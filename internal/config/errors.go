package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// inconsistent.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a remote address without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid web server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTranslatorConfigs indicates an unknown provider or
	// negative timing values.
	ErrInvalidTranslatorConfigs = errors.New("invalid translator configuration")
)
