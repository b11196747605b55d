package service

import "errors"

// Sentinel errors surfaced by the account flows. The transport layer maps
// them onto HTTP status codes; callers match with [errors.Is].
var (
	// ErrWrongPassword is returned by Login when the supplied password does
	// not match the stored hash.
	ErrWrongPassword = errors.New("Invalid Password")

	// ErrAvatarFileRequired is returned by Register when no avatar file was
	// staged by the upload collaborator.
	ErrAvatarFileRequired = errors.New("Avatar file is required")

	// ErrAvatarUploadFailed is returned by Register when pushing the staged
	// avatar to the media host fails. Because the avatar is a required
	// asset, this is treated as an input-level failure, not a server fault.
	ErrAvatarUploadFailed = errors.New("avatar upload failed")

	// ErrUserCreationFailed is returned when the freshly created user record
	// cannot be re-fetched, indicating an inconsistent post-write state.
	ErrUserCreationFailed = errors.New("something went wrong while registering the user")

	// ErrLoginFailed is returned when the authenticated user record cannot
	// be re-fetched after the refresh token was already persisted. The
	// session state has been mutated at that point, so the failure is a
	// server fault, not a lookup miss.
	ErrLoginFailed = errors.New("something went wrong while logging in the user")

	// ErrTokenGeneration is the single externally visible error kind for any
	// failure while issuing or persisting the session token pair. The
	// underlying cause (ErrTokenSigning or ErrTokenPersist) stays attached
	// in the wrap chain for callers that ever need to distinguish them.
	ErrTokenGeneration = errors.New("something went wrong while generating the refresh and access token")

	// ErrTokenSigning tags token-pair failures caused by JWT signing.
	ErrTokenSigning = errors.New("token signing failed")

	// ErrTokenPersist tags token-pair failures caused by storing the refresh
	// token on the user record.
	ErrTokenPersist = errors.New("refresh token persist failed")

	// ErrTokenIsExpired is returned when a parsed token is valid but past
	// its expiry.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid is the normalised error for any access
	// token validation failure (expired, wrong issuer, malformed, bad
	// signature).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
