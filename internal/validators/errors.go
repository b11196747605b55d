package validators

import "errors"

// Sentinel validation errors. Callers should use [errors.Is] to match
// against them.
var (
	// ErrUnsupportedType is returned when a Validator receives a value of a
	// type it does not know how to validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrAllFieldsRequired is returned when any required registration field
	// is missing or blank after trimming.
	ErrAllFieldsRequired = errors.New("All fields are required")

	// ErrInvalidEmail is returned when the email field is present but not a
	// syntactically valid email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrIdentityRequired is returned when a login attempt provides neither
	// a username nor an email.
	ErrIdentityRequired = errors.New("username or email is required")
)
