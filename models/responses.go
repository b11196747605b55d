package models

// APIResponse is the uniform success envelope returned by every endpoint.
type APIResponse struct {
	// StatusCode mirrors the HTTP status code of the response so that
	// clients consuming the body alone can still branch on it.
	StatusCode int `json:"statusCode"`

	// Data carries the endpoint-specific payload. May be an empty object
	// (e.g. logout) but is always present.
	Data any `json:"data"`

	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Success is always true for this envelope.
	Success bool `json:"success"`
}

// NewAPIResponse constructs a success envelope for the given status code,
// payload and message.
func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}

// APIErrorResponse is the uniform error envelope returned by every endpoint.
type APIErrorResponse struct {
	// StatusCode mirrors the HTTP status code of the response.
	StatusCode int `json:"statusCode"`

	// Message is a short human-readable description of the failure.
	Message string `json:"message"`

	// Success is always false for this envelope.
	Success bool `json:"success"`

	// Errors lists additional error details. Empty for most failures.
	Errors []string `json:"errors"`
}

// NewAPIErrorResponse constructs an error envelope for the given status code
// and message. The Errors slice is always non-nil so it serializes as [].
func NewAPIErrorResponse(statusCode int, message string) APIErrorResponse {
	return APIErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	}
}

// LoginResponse is the payload placed in the success envelope on login:
// the sanitized user plus both issued tokens, mirroring the values set
// as cookies.
type LoginResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
