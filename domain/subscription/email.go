package subscription

import (
	"strings"

	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// ValidateEmail normalises an address and rejects blank or malformed input
// with an InvalidRequest error.
func ValidateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := emailValidator.Var(email, "required"); err != nil {
		return "", apperrors.NewInvalidRequestError("Email is required", err)
	}
	if err := emailValidator.Var(email, "email,max=255"); err != nil {
		return "", apperrors.NewInvalidRequestError("Invalid email format", err)
	}

	return email, nil
}
