package service

import (
	"context"

	"github.com/vidora/accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService implements the account flows: registration, login, logout.
type UserService interface {
	// Register validates the input, uploads the staged profile assets to the
	// media host, creates the user record (username lowercased), and returns
	// the sanitized created user. Registration does not issue tokens.
	Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error)

	// Login authenticates the user by username or email plus password,
	// issues an access/refresh token pair, persists the refresh token on the
	// user record, and returns the sanitized user together with the pair.
	Login(ctx context.Context, req models.LoginUserRequest) (models.User, models.TokenPair, error)

	// Logout clears the stored refresh token of the given user. Calling it
	// again for an already logged-out user is a no-op.
	Logout(ctx context.Context, userID string) error
}

// TokenService issues and validates the two session credentials.
type TokenService interface {
	// IssueAccessToken creates a short-lived signed access token carrying a
	// minimal identity snapshot of the user.
	IssueAccessToken(ctx context.Context, user models.User) (models.Token, error)

	// IssueRefreshToken creates a long-lived signed refresh token carrying
	// only the user identifier.
	IssueRefreshToken(ctx context.Context, userID string) (models.Token, error)

	// ParseAccessToken validates and parses a raw access token string. Any
	// validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}
