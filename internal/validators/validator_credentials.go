package validators

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vidora/accounts/models"
)

// CredentialsValidator validates the registration and login inputs of the
// account flows. Field values are trimmed before validation so that
// whitespace-only input counts as blank.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterUserRequest:
		return v.validateRegisterRequest(value)
	case *models.RegisterUserRequest:
		return v.validateRegisterRequest(*value)

	case models.LoginUserRequest:
		return v.validateLoginRequest(value)
	case *models.LoginUserRequest:
		return v.validateLoginRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegisterRequest(req models.RegisterUserRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)

	if err := validation.ValidateStruct(&req,
		validation.Field(&req.FullName, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %s", ErrAllFieldsRequired, err)
	}

	if err := validation.Validate(req.Email, is.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, err)
	}

	return nil
}

func (v *CredentialsValidator) validateLoginRequest(req models.LoginUserRequest) error {
	// The lookup matches by username OR email, so at least one of the two
	// identity fields must be present.
	if strings.TrimSpace(req.Username) == "" && strings.TrimSpace(req.Email) == "" {
		return ErrIdentityRequired
	}

	return nil
}
