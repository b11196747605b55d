package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/utils"
	"github.com/vidora/accounts/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and refresh-token mutation
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	uuids  *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		uuids:  utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The plaintext password is hashed with bcrypt here, as a side effect of the
// store, so that no caller ever handles password hashes. The INSERT uses the
// [createUser] query which returns all columns via a RETURNING clause, so the
// caller receives the canonical database representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user.UserID = r.uuids.Generate()
	user.PasswordHash = passwordHash

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Username, user.Email, user.FullName, user.AvatarURL, user.CoverImageURL, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByIdentity retrieves a user record whose username or email matches
// one of the provided identity terms. Empty terms are excluded from the
// lookup; passing both terms empty is a caller error and yields
// [ErrNoUserWasFound].
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByIdentity(ctx context.Context, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" && email == "" {
		return models.User{}, ErrNoUserWasFound
	}

	query, args, err := buildFindByIdentityQuery(username, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByIdentity").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByIdentity").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByIdentity").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its primary identifier.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateRefreshToken sets (token != nil) or clears (token == nil) the
// refresh_token column of the given user. The update deliberately touches
// only that one column and performs no validation of unrelated fields:
// re-validating the whole record on this narrow mutation would fail
// spuriously for legacy rows.
//
// Clearing a token that is already empty affects the row all the same and is
// treated as success, which makes logout idempotent.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID string, token *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRefreshTokenQuery(userID, token)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRefreshToken").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRefreshToken").Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash of
// user. bcrypt performs the comparison in constant time.
func (r *userRepository) VerifyPassword(user models.User, plaintext string) bool {
	return utils.CheckPasswordHash(user.PasswordHash, plaintext)
}

// scanUser scans a full users row into a [models.User], converting the
// nullable refresh_token column into an empty string when NULL.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var refreshToken sql.NullString

	if err := row.Scan(
		&user.UserID, &user.Username, &user.Email, &user.FullName,
		&user.AvatarURL, &user.CoverImageURL, &user.PasswordHash,
		&refreshToken, &user.CreatedAt,
	); err != nil {
		return models.User{}, err
	}

	user.RefreshToken = refreshToken.String
	return user, nil
}
