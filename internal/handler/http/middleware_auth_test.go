package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vidora/accounts/internal/service"
	"github.com/vidora/accounts/internal/utils"
	"github.com/vidora/accounts/models"
)

// nextCapture records whether the wrapped handler was reached and with which
// user ID in context.
type nextCapture struct {
	called bool
	userID string
	ok     bool
}

func (n *nextCapture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_CookieToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockTokens := newTestHandler(t, ctrl)

	mockTokens.EXPECT().ParseAccessToken(gomock.Any(), "cookie-jwt").
		Return(models.Token{UserID: "id-1"}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie-jwt"})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.True(t, next.ok)
	assert.Equal(t, "id-1", next.userID)
}

func TestAuth_BearerFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockTokens := newTestHandler(t, ctrl)

	mockTokens.EXPECT().ParseAccessToken(gomock.Any(), "header-jwt").
		Return(models.Token{UserID: "id-2"}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer header-jwt")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id-2", next.userID)
}

func TestAuth_CookieTakesPrecedenceOverHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockTokens := newTestHandler(t, ctrl)

	mockTokens.EXPECT().ParseAccessToken(gomock.Any(), "cookie-jwt").
		Return(models.Token{UserID: "id-1"}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie-jwt"})
	req.Header.Set("Authorization", "Bearer header-jwt")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuth_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockTokens := newTestHandler(t, ctrl)

	mockTokens.EXPECT().ParseAccessToken(gomock.Any(), "expired-jwt").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "expired-jwt"})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestSessionTokenFromRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   error
	}{
		{name: "no token at all", header: "", want: ErrNoSessionToken},
		{name: "scheme only", header: "Bearer", want: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", want: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			_, err := sessionTokenFromRequest(req)
			require.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}
