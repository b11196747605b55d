package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing secret or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMediaConfigs indicates invalid media-host settings
	// (for example, a missing upload endpoint URL).
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
)
