package service

import (
	"fmt"
	"time"

	"context"

	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/utils"
	"github.com/vidora/accounts/models"
)

// tokenService is the concrete implementation of TokenService.
// Access and refresh tokens are signed with separate HMAC secrets so that a
// leaked access secret cannot be used to mint long-lived refresh tokens.
type tokenService struct {
	// accessSecret signs and verifies short-lived access tokens.
	accessSecret string

	// refreshSecret signs long-lived refresh tokens. Distinct from
	// accessSecret.
	refreshSecret string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessDuration controls how long a newly issued access token remains valid.
	accessDuration time.Duration

	// refreshDuration controls how long a newly issued refresh token remains valid.
	refreshDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewTokenService constructs a TokenService populated with signing
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		accessSecret:    cfg.AccessTokenSecret,
		refreshSecret:   cfg.RefreshTokenSecret,
		tokenIssuer:     cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		logger:          logger,
	}
}

// IssueAccessToken issues a signed short-lived access token for the given
// user. Besides the standard claims it embeds the user's email, username and
// full name so that a consumer can render the session owner without a
// database round-trip.
//
// Returns the token model on success, or ErrTokenSigning (wrapped) if the
// signing secret is unavailable or JWT generation fails.
func (t *tokenService) IssueAccessToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateAccessJWTToken(t.tokenIssuer, user, t.accessDuration, t.accessSecret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	return token, nil
}

// IssueRefreshToken issues a signed long-lived refresh token carrying only
// the user identifier as its subject.
//
// Returns the token model on success, or ErrTokenSigning (wrapped) if the
// signing secret is unavailable or JWT generation fails.
func (t *tokenService) IssueRefreshToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, userID, t.refreshDuration, t.refreshSecret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	return token, nil
}

// ParseAccessToken validates and parses a raw access token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (t *tokenService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.accessSecret, t.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
