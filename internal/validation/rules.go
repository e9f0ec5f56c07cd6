// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	apperrors "github.com/davidkarpay/tokenvault/internal/errors"
	"github.com/davidkarpay/tokenvault/internal/secretbox/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Base64 validates that a string is valid base64-encoded data.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	_, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})

// APIToken validates that a string matches the expected API token shape.
//
// The rule mirrors domain.ValidTokenFormat and exists for callers that want a
// validation.Rule rather than a bare bool. It is advisory: use it to warn, not
// to reject.
var APIToken = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_api_token_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !domain.ValidTokenFormat(s) {
		return validation.NewError(
			"validation_api_token",
			"does not look like an API token (expected hf_ prefix followed by alphanumerics)",
		)
	}
	return nil
})
