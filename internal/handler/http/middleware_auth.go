package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/service"
	"github.com/vidora/accounts/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The access token is taken from the "accessToken" cookie set on login, with
// the "Authorization: Bearer <token>" header as a fallback for non-browser
// clients. On success the authenticated user's ID is stored in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no token
// can be located or when the token fails validation. All rejection events are
// logged using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			writeAPIError(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeAPIError(w, http.StatusUnauthorized, service.ErrTokenIsExpiredOrInvalid.Error())
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest locates the raw access token in the request.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionToken]: neither the cookie nor the header is present.
//   - [ErrInvalidAuthorizationHeader]: the header contains fewer than two
//     space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken]: the second part exists but is an empty string.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
