package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, username, email, full_name, avatar_url, cover_image_url, password_hash)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, username, email, full_name, avatar_url, cover_image_url, password_hash, refresh_token, created_at;`

	findUserByID = `SELECT user_id, username, email, full_name, avatar_url, cover_image_url, password_hash, refresh_token, created_at
    FROM users
    WHERE user_id = $1;`
)

// psql is the statement builder configured for PostgreSQL-style
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindByIdentityQuery builds a SELECT matching a user by username,
// email, or either. Only non-empty identity terms become predicates, so a
// lookup with a single known identifier does not accidentally match rows
// with an empty column value.
func buildFindByIdentityQuery(username, email string) (string, []any, error) {
	or := sq.Or{}
	if username != "" {
		or = append(or, sq.Eq{"username": username})
	}
	if email != "" {
		or = append(or, sq.Eq{"email": email})
	}

	return psql.
		Select("user_id", "username", "email", "full_name", "avatar_url", "cover_image_url", "password_hash", "refresh_token", "created_at").
		From("users").
		Where(or).
		ToSql()
}

// buildUpdateRefreshTokenQuery builds the narrow UPDATE that sets or clears
// the refresh_token column. A nil token produces SET refresh_token = NULL.
func buildUpdateRefreshTokenQuery(userID string, token *string) (string, []any, error) {
	return psql.
		Update("users").
		Set("refresh_token", token).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
