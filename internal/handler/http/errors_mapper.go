package http

import (
	"errors"
	"net/http"

	"github.com/vidora/accounts/internal/media"
	"github.com/vidora/accounts/internal/service"
	"github.com/vidora/accounts/internal/store"
	"github.com/vidora/accounts/internal/utils"
	"github.com/vidora/accounts/internal/validators"
	"github.com/vidora/accounts/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses maps sentinel errors onto HTTP status codes. The order is
// significant: flow-level failures come before the store sentinels because
// their wrap chains may carry a store sentinel as the cause (e.g. a failed
// post-create re-fetch wraps ErrNoUserWasFound), and the flow-level status
// must win.
var errorStatuses = []errorStatus{
	{service.ErrUserCreationFailed, http.StatusInternalServerError},
	{service.ErrLoginFailed, http.StatusInternalServerError},
	{service.ErrTokenGeneration, http.StatusInternalServerError},

	{validators.ErrAllFieldsRequired, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrIdentityRequired, http.StatusBadRequest},

	{service.ErrAvatarFileRequired, http.StatusBadRequest},
	{service.ErrAvatarUploadFailed, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{media.ErrNoFileProvided, http.StatusBadRequest},

	{store.ErrUserAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
}

// mapError resolves err to an HTTP status code and a client-facing message.
// The message comes from the matched sentinel, never from the wrapped chain,
// so internal details do not leak to clients. Unknown errors collapse to a
// plain 500.
func mapError(err error) (int, string) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// respondError writes the uniform error envelope for err.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status, message := mapError(err)
	writeAPIError(w, status, message)
}

func writeAPIError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.NewAPIErrorResponse(statusCode, message), statusCode)
}
