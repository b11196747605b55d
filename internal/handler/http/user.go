package http

import (
	"encoding/json"
	"net/http"

	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/utils"
	"github.com/vidora/accounts/models"
)

// register handles POST /api/v1/users/register.
//
// The request is multipart/form-data with the form fields fullName, email,
// username, password plus up to one "avatar" and one "coverImage" file. The
// files are staged to the local staging directory first; the registration
// flow uploads them to the media host and creates the record.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := h.parseRegisterForm(r)
	if err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	createdUser, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.respondError(w, err)
		return
	}

	log.Debug().Str("id", createdUser.UserID).Str("username", createdUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.NewAPIResponse(http.StatusCreated, createdUser, "User registered successfully"), http.StatusCreated)
}

// login handles POST /api/v1/users/login.
//
// On success both tokens are set as secure, HTTP-only cookies and returned
// in the response payload alongside the sanitized user.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	loggedInUser, pair, err := h.services.UserService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.respondError(w, err)
		return
	}

	log.Debug().Str("id", loggedInUser.UserID).Msg("user successfully logged in")

	setSessionCookies(w, pair)

	payload := models.LoginResponse{
		User:         loggedInUser,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	utils.WriteJSON(w, models.NewAPIResponse(http.StatusOK, payload, "User logged in successfully"), http.StatusOK)
}

// logout handles POST /api/v1/users/logout.
//
// The caller's identity is taken from the context placed there by the auth
// middleware. The stored refresh token is cleared and both session cookies
// are instructed to expire on the client.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeAPIError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.UserService.Logout(ctx, userID); err != nil {
		log.Err(err).Str("id", userID).Msg("user logout failed")
		h.respondError(w, err)
		return
	}

	clearSessionCookies(w)

	utils.WriteJSON(w, models.NewAPIResponse(http.StatusOK, struct{}{}, "User logged out"), http.StatusOK)
}
