package store

import (
	"context"

	"github.com/vidora/accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
//
// Implementations are responsible for credential handling: CreateUser hashes
// the plaintext password before it is written, and VerifyPassword compares a
// plaintext candidate against the stored hash. Callers never see or pass
// password hashes directly.
type UserRepository interface {
	// CreateUser persists a new user record and returns the canonical stored
	// representation. The Password field of the input is hashed as a side
	// effect of the call. Returns ErrUserAlreadyExists when the username or
	// email is already taken.
	CreateUser(ctx context.Context, user models.User, password string) (models.User, error)

	// FindUserByIdentity looks a user up by username, email, or both.
	// Either argument may be empty, but not both. Returns ErrNoUserWasFound
	// when no record matches.
	FindUserByIdentity(ctx context.Context, username, email string) (models.User, error)

	// FindUserByID looks a user up by its primary identifier.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateRefreshToken sets or clears (token == nil) the refresh token of
	// the given user. This is a narrow partial update: no other field is
	// touched or re-validated. Clearing an already-empty token is a no-op.
	UpdateRefreshToken(ctx context.Context, userID string, token *string) error

	// VerifyPassword reports whether plaintext matches the stored password
	// hash of user. The comparison is constant-time safe.
	VerifyPassword(user models.User, plaintext string) bool
}
