package media

import "errors"

// Sentinel errors returned by [Uploader] implementations. Callers should use
// [errors.Is] to match against them.
var (
	// ErrNoFileProvided is returned when the local path is empty or the
	// staged file cannot be read.
	ErrNoFileProvided = errors.New("no file provided for upload")

	// ErrUploadFailed is returned when the media host rejects the upload or
	// the request fails at the transport level.
	ErrUploadFailed = errors.New("media upload failed")
)
