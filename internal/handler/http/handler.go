package http

import (
	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/service"
)

// Handler bundles the dependencies of the HTTP transport layer.
type Handler struct {
	services *service.Services

	// stagingDir is where multipart upload files are written before the
	// registration flow pushes them to the media host.
	stagingDir string

	// version is the application version exposed via /api/version.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		stagingDir: cfg.Storage.Staging.Dir,
		version:    cfg.App.Version,
		logger:     logger,
	}
}
