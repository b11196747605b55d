package service

import (
	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/media"
	"github.com/vidora/accounts/internal/store"
)

// Services aggregates all business-logic components of the application.
type Services struct {
	UserService  UserService
	TokenService TokenService
}

// NewServices wires the service layer to the repositories, the media-host
// uploader, and the application configuration.
func NewServices(repositories *store.Repositories, uploader media.Uploader, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		UserService:  NewUserService(repositories.UserRepository, tokenService, uploader, logger),
		TokenService: tokenService,
	}
}
