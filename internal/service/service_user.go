package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vidora/accounts/internal/logger"
	"github.com/vidora/accounts/internal/media"
	"github.com/vidora/accounts/internal/store"
	"github.com/vidora/accounts/internal/validators"
	"github.com/vidora/accounts/models"
)

// userService is the concrete implementation of UserService.
// It orchestrates the registration and session flows over the
// UserRepository, the media-host uploader and the TokenService.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues the access/refresh pair on login.
	tokens TokenService

	// uploader pushes staged profile assets to the external media host.
	uploader media.Uploader

	// validator checks registration and login inputs.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, tokens TokenService, uploader media.Uploader, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		tokens:         tokens,
		uploader:       uploader,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Flow:
//  1. Validate that all four fields are present and non-blank after
//     trimming.
//  2. Reject the request when a user with the same username or email
//     already exists.
//  3. Require a staged avatar file; upload it (and the optional cover
//     image) to the media host. A failed cover upload degrades to an empty
//     reference instead of failing the registration.
//  4. Create the record with the lowercased username.
//  5. Re-fetch the created record by id and return the sanitized view.
//
// No store mutation happens before the avatar checks pass. Registration
// never issues tokens.
//
// Returns the sanitized created user or:
//   - [validators.ErrAllFieldsRequired] / [validators.ErrInvalidEmail] on
//     invalid input.
//   - [store.ErrUserAlreadyExists] on a duplicate username or email.
//   - [ErrAvatarFileRequired] when no avatar was staged.
//   - [ErrAvatarUploadFailed] when the avatar upload fails.
//   - [ErrUserCreationFailed] when the post-create re-fetch yields nothing.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid registration data provided")
		return models.User{}, err
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)

	_, err := s.userRepository.FindUserByIdentity(ctx, username, email)
	switch {
	case err == nil:
		log.Error().Str("username", username).Str("email", email).Msg("user with username or email already exists")
		return models.User{}, store.ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("duplicate-identity lookup failed")
		return models.User{}, fmt.Errorf("duplicate-identity lookup failed: %w", err)
	}

	if req.AvatarLocalPath == "" {
		log.Error().Msg("no avatar file was staged")
		return models.User{}, ErrAvatarFileRequired
	}

	avatarURL, err := s.uploader.Upload(ctx, req.AvatarLocalPath)
	if err != nil {
		log.Err(err).Str("path", req.AvatarLocalPath).Msg("avatar upload failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrAvatarUploadFailed, err)
	}

	// A missing or failed cover image is tolerated: the field stays empty.
	var coverImageURL string
	if req.CoverImageLocalPath != "" {
		coverImageURL, err = s.uploader.Upload(ctx, req.CoverImageLocalPath)
		if err != nil {
			log.Warn().Err(err).Str("path", req.CoverImageLocalPath).Msg("cover image upload failed, storing empty reference")
			coverImageURL = ""
		}
	}

	user := models.User{
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(req.FullName),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user, req.Password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// Re-fetch to confirm creation and shape the response from the
	// canonical stored record.
	fetchedUser, err := s.userRepository.FindUserByID(ctx, createdUser.UserID)
	if err != nil {
		log.Err(err).Str("id", createdUser.UserID).Msg("created user could not be re-fetched")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}

	return fetchedUser.Sanitized(), nil
}

// Login authenticates an existing user and opens a session.
//
// Flow:
//  1. Require at least one of username/email.
//  2. Look the user up by the provided identity.
//  3. Verify the password against the stored hash.
//  4. Issue the access/refresh pair and persist the refresh token on the
//     user record (a new login overwrites any previous session token).
//  5. Re-fetch the sanitized user record.
//
// Returns the sanitized user and the token pair or:
//   - [validators.ErrIdentityRequired] when both identity fields are blank.
//   - [store.ErrNoUserWasFound] when no user matches.
//   - [ErrWrongPassword] when the password does not match.
//   - [ErrTokenGeneration] when issuing or persisting the pair fails.
//   - [ErrLoginFailed] when the post-login re-fetch yields nothing.
func (s *userService) Login(ctx context.Context, req models.LoginUserRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.User{}, models.TokenPair{}, err
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)

	foundUser, err := s.userRepository.FindUserByIdentity(ctx, username, email)
	if err != nil {
		log.Err(err).Str("username", username).Str("email", email).Msg("user search by identity failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.TokenPair{}, err
		}
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by identity failed: %w", err)
	}

	if !s.userRepository.VerifyPassword(foundUser, req.Password) {
		log.Error().Str("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrWrongPassword
	}

	pair, err := s.generateAccessAndRefreshTokens(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("token pair generation failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	// The refresh token is already persisted here, so a failed re-fetch is
	// an inconsistent server state rather than a lookup miss.
	loggedInUser, err := s.userRepository.FindUserByID(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("logged-in user could not be re-fetched")
		return models.User{}, models.TokenPair{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	return loggedInUser.Sanitized(), pair, nil
}

// Logout terminates the session of the given user by clearing the stored
// refresh token. A second logout finds the token already cleared and is a
// no-op, not an error.
func (s *userService) Logout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.UpdateRefreshToken(ctx, userID, nil); err != nil {
		log.Err(err).Str("id", userID).Msg("clearing refresh token failed")
		return fmt.Errorf("clearing refresh token failed: %w", err)
	}

	return nil
}

// generateAccessAndRefreshTokens issues both session tokens and persists the
// refresh token on the user record. Each failure path is tagged with its
// cause (ErrTokenSigning or ErrTokenPersist); the caller collapses the
// result into the single externally visible ErrTokenGeneration.
func (s *userService) generateAccessAndRefreshTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(ctx, user)
	if err != nil {
		return models.TokenPair{}, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(ctx, user.UserID)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh := refreshToken.SignedString
	if err := s.userRepository.UpdateRefreshToken(ctx, user.UserID, &refresh); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenPersist, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
	}, nil
}
