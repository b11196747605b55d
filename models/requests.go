package models

// RegisterUserRequest carries the registration input assembled by the
// transport layer: the multipart form fields plus the filesystem paths of
// the staged upload files.
type RegisterUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`

	// AvatarLocalPath is the staging-directory path of the uploaded avatar
	// file. Required; registration fails without it.
	AvatarLocalPath string `json:"-"`

	// CoverImageLocalPath is the staging-directory path of the uploaded
	// cover image file. Optional.
	CoverImageLocalPath string `json:"-"`
}

// LoginUserRequest carries the login input. At least one of Username or
// Email must be provided.
type LoginUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
