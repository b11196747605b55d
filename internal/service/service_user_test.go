package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/mock"
	"github.com/vidora/accounts/internal/store"
	"github.com/vidora/accounts/internal/validators"
	"github.com/vidora/accounts/models"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *mock.MockUserRepository, *mock.MockTokenService, *mock.MockUploader) {
	t.Helper()

	mockRepo := mock.NewMockUserRepository(ctrl)
	mockTokens := mock.NewMockTokenService(ctrl)
	mockUploader := mock.NewMockUploader(ctrl)

	svc := &userService{
		userRepository: mockRepo,
		tokens:         mockTokens,
		uploader:       mockUploader,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger.Nop(),
	}

	return svc, mockRepo, mockTokens, mockUploader
}

func validRegisterRequest() models.RegisterUserRequest {
	return models.RegisterUserRequest{
		FullName:        "John Doe",
		Email:           "john@example.com",
		Username:        "John",
		Password:        "secret-password",
		AvatarLocalPath: "/tmp/staging/avatar.png",
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockUploader := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	created := models.User{
		UserID:       "id-1",
		Username:     "john",
		Email:        req.Email,
		FullName:     req.FullName,
		AvatarURL:    "https://media.example.com/avatar.png",
		PasswordHash: "hash",
	}

	gomock.InOrder(
		// username is lowercased before the duplicate lookup
		mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{}, store.ErrNoUserWasFound),
		mockUploader.EXPECT().Upload(ctx, req.AvatarLocalPath).Return(created.AvatarURL, nil),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any(), req.Password).DoAndReturn(
			func(_ context.Context, u models.User, _ string) (models.User, error) {
				assert.Equal(t, "john", u.Username)
				assert.Equal(t, created.AvatarURL, u.AvatarURL)
				assert.Empty(t, u.CoverImageURL)
				return created, nil
			}),
		mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(created, nil),
	)

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.UserID)
	assert.Equal(t, "john", got.Username)
	assert.Empty(t, got.PasswordHash, "registered user must be sanitized")
}

func TestRegister_WithCoverImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockUploader := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()
	req.CoverImageLocalPath = "/tmp/staging/cover.png"

	created := models.User{UserID: "id-1", Username: "john"}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{}, store.ErrNoUserWasFound)
	mockUploader.EXPECT().Upload(ctx, req.AvatarLocalPath).Return("https://m/a.png", nil)
	mockUploader.EXPECT().Upload(ctx, req.CoverImageLocalPath).Return("https://m/c.png", nil)
	mockRepo.EXPECT().CreateUser(ctx, gomock.Any(), req.Password).DoAndReturn(
		func(_ context.Context, u models.User, _ string) (models.User, error) {
			assert.Equal(t, "https://m/c.png", u.CoverImageURL)
			return created, nil
		})
	mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(created, nil)

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)
}

func TestRegister_CoverImageUploadFailureIsTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockUploader := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()
	req.CoverImageLocalPath = "/tmp/staging/cover.png"

	created := models.User{UserID: "id-1", Username: "john"}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{}, store.ErrNoUserWasFound)
	mockUploader.EXPECT().Upload(ctx, req.AvatarLocalPath).Return("https://m/a.png", nil)
	mockUploader.EXPECT().Upload(ctx, req.CoverImageLocalPath).Return("", errors.New("media host down"))
	mockRepo.EXPECT().CreateUser(ctx, gomock.Any(), req.Password).DoAndReturn(
		func(_ context.Context, u models.User, _ string) (models.User, error) {
			assert.Empty(t, u.CoverImageURL, "failed cover upload must degrade to empty reference")
			return created, nil
		})
	mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(created, nil)

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)
}

func TestRegister_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = "   "

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, validators.ErrAllFieldsRequired)
}

func TestRegister_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = "not-an-email"

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestRegister_DuplicateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{UserID: "existing"}, nil)

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestRegister_AvatarRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()
	req.AvatarLocalPath = ""

	// duplicate check still runs; the avatar check comes after it
	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrAvatarFileRequired)
}

func TestRegister_AvatarUploadFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockUploader := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{}, store.ErrNoUserWasFound)
	mockUploader.EXPECT().Upload(ctx, req.AvatarLocalPath).Return("", errors.New("media host down"))

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrAvatarUploadFailed)
}

func TestRegister_RefetchFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockUploader := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", req.Email).Return(models.User{}, store.ErrNoUserWasFound)
	mockUploader.EXPECT().Upload(ctx, req.AvatarLocalPath).Return("https://m/a.png", nil)
	mockRepo.EXPECT().CreateUser(ctx, gomock.Any(), req.Password).Return(models.User{UserID: "id-1"}, nil)
	mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrUserCreationFailed)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockTokens, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginUserRequest{Username: "John", Password: "secret-password"}
	found := models.User{UserID: "id-1", Username: "john", PasswordHash: "hash"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByIdentity(ctx, "john", "").Return(found, nil),
		mockRepo.EXPECT().VerifyPassword(found, req.Password).Return(true),
		mockTokens.EXPECT().IssueAccessToken(ctx, found).Return(models.Token{SignedString: "access"}, nil),
		mockTokens.EXPECT().IssueRefreshToken(ctx, "id-1").Return(models.Token{SignedString: "refresh"}, nil),
		mockRepo.EXPECT().UpdateRefreshToken(ctx, "id-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, token *string) error {
				require.NotNil(t, token)
				assert.Equal(t, "refresh", *token)
				return nil
			}),
		mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(found, nil),
	)

	user, pair, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.UserID)
	assert.Empty(t, user.PasswordHash, "logged-in user must be sanitized")
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestLogin_ByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockTokens, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginUserRequest{Email: "john@example.com", Password: "secret-password"}
	found := models.User{UserID: "id-1", Email: req.Email}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "", req.Email).Return(found, nil)
	mockRepo.EXPECT().VerifyPassword(found, req.Password).Return(true)
	mockTokens.EXPECT().IssueAccessToken(ctx, found).Return(models.Token{SignedString: "access"}, nil)
	mockTokens.EXPECT().IssueRefreshToken(ctx, "id-1").Return(models.Token{SignedString: "refresh"}, nil)
	mockRepo.EXPECT().UpdateRefreshToken(ctx, "id-1", gomock.Any()).Return(nil)
	mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(found, nil)

	_, _, err := svc.Login(ctx, req)
	require.NoError(t, err)
}

func TestLogin_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserSvc(t, ctrl)

	_, _, err := svc.Login(context.Background(), models.LoginUserRequest{Password: "secret"})
	require.ErrorIs(t, err, validators.ErrIdentityRequired)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByIdentity(ctx, "ghost", "").Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(ctx, models.LoginUserRequest{Username: "ghost", Password: "x"})
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	found := models.User{UserID: "id-1", Username: "john"}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", "").Return(found, nil)
	mockRepo.EXPECT().VerifyPassword(found, "wrong").Return(false)

	_, _, err := svc.Login(ctx, models.LoginUserRequest{Username: "john", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_TokenSigningFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockTokens, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	found := models.User{UserID: "id-1", Username: "john"}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", "").Return(found, nil)
	mockRepo.EXPECT().VerifyPassword(found, "secret").Return(true)
	mockTokens.EXPECT().IssueAccessToken(ctx, found).Return(models.Token{}, ErrTokenSigning)

	_, _, err := svc.Login(ctx, models.LoginUserRequest{Username: "john", Password: "secret"})
	require.ErrorIs(t, err, ErrTokenGeneration)
	require.ErrorIs(t, err, ErrTokenSigning)
}

func TestLogin_TokenPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockTokens, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	found := models.User{UserID: "id-1", Username: "john"}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", "").Return(found, nil)
	mockRepo.EXPECT().VerifyPassword(found, "secret").Return(true)
	mockTokens.EXPECT().IssueAccessToken(ctx, found).Return(models.Token{SignedString: "access"}, nil)
	mockTokens.EXPECT().IssueRefreshToken(ctx, "id-1").Return(models.Token{SignedString: "refresh"}, nil)
	mockRepo.EXPECT().UpdateRefreshToken(ctx, "id-1", gomock.Any()).Return(errors.New("db down"))

	_, _, err := svc.Login(ctx, models.LoginUserRequest{Username: "john", Password: "secret"})
	require.ErrorIs(t, err, ErrTokenGeneration)
	require.ErrorIs(t, err, ErrTokenPersist)
}

func TestLogin_RefetchFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockTokens, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	found := models.User{UserID: "id-1", Username: "john"}

	mockRepo.EXPECT().FindUserByIdentity(ctx, "john", "").Return(found, nil)
	mockRepo.EXPECT().VerifyPassword(found, "secret").Return(true)
	mockTokens.EXPECT().IssueAccessToken(ctx, found).Return(models.Token{SignedString: "access"}, nil)
	mockTokens.EXPECT().IssueRefreshToken(ctx, "id-1").Return(models.Token{SignedString: "refresh"}, nil)
	mockRepo.EXPECT().UpdateRefreshToken(ctx, "id-1", gomock.Any()).Return(nil)
	mockRepo.EXPECT().FindUserByID(ctx, "id-1").Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(ctx, models.LoginUserRequest{Username: "john", Password: "secret"})
	require.ErrorIs(t, err, ErrLoginFailed)
	require.NotErrorIs(t, err, ErrTokenGeneration, "re-fetch failure must not masquerade as token failure")
}

func TestLogout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateRefreshToken(ctx, "id-1", nil).Return(nil)

	require.NoError(t, svc.Logout(ctx, "id-1"))
}

func TestLogout_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateRefreshToken(ctx, "id-1", nil).Return(errors.New("db down"))

	require.Error(t, svc.Logout(ctx, "id-1"))
}
