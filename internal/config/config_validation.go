package config

import (
	"os"
	"path/filepath"
	"time"
)

// applyDefaults fills in values that have sensible fallbacks and are not
// required to be set explicitly by the operator.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.AccessTokenDuration == 0 {
		cfg.App.AccessTokenDuration = 15 * time.Minute
	}
	if cfg.App.RefreshTokenDuration == 0 {
		cfg.App.RefreshTokenDuration = 240 * time.Hour
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.Staging.Dir == "" {
		cfg.Storage.Staging.Dir = filepath.Join(os.TempDir(), "accounts-staging")
	}
	if cfg.Media.RequestTimeout == 0 {
		cfg.Media.RequestTimeout = 30 * time.Second
	}
	if cfg.Workers.StagingCleanupInterval == 0 {
		cfg.Workers.StagingCleanupInterval = 10 * time.Minute
	}
	if cfg.Workers.StagingMaxAge == 0 {
		cfg.Workers.StagingMaxAge = time.Hour
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.AccessTokenSecret == "" || cfg.App.RefreshTokenSecret == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Media.UploadURL == "" {
		return ErrInvalidMediaConfigs
	}

	return nil
}
