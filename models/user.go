package models

import "time"

// User represents an account entity used for authentication and profile data.
// It contains identity attributes, profile asset references, and
// credential-related data. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned at creation time.
	UserID string `json:"id"`

	// Username is the unique, lowercase-normalized user handle.
	// Used together with Email during authentication.
	Username string `json:"username"`

	// Email is the unique email address of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"fullName"`

	// AvatarURL is the media-host URL of the user's avatar image.
	// A user record always has a non-empty avatar reference.
	AvatarURL string `json:"avatar"`

	// CoverImageURL is the media-host URL of the user's cover image.
	// Optional; empty when no cover image was uploaded.
	CoverImageURL string `json:"coverImage,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON and never leaves the store layer
	// in sanitized views.
	PasswordHash string `json:"-"`

	// RefreshToken is the currently active refresh token, or empty when the
	// user has no active session. It is the only piece of server-side
	// session state and is never exposed via JSON.
	RefreshToken string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy of the user with credential and session fields
// cleared. All read paths that leave the store boundary must go through it.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshToken = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
