package commands

import (
	"context"
	"fmt"
	"log/slog"

	jvalidation "github.com/jellydator/validation"

	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase"
	"github.com/davidkarpay/tokenvault/internal/validation"
)

// RunSetToken encrypts an API token with a password and stores the resulting
// blob. When token is empty the user is prompted for it; the password is always
// prompted so it never appears in shell history or process listings.
//
// When assumeEncrypted is true the token argument is treated as an
// already-encoded blob and stored without re-encrypting.
func RunSetToken(
	ctx context.Context,
	box usecase.SecretBox,
	logger *slog.Logger,
	token string,
	assumeEncrypted bool,
	tuple IOTuple,
) error {
	if token == "" {
		var err error
		token, err = readSecret(tuple, "Token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	if err := jvalidation.Validate(token, jvalidation.Required); err != nil {
		return validation.WrapValidationError(err)
	}

	if assumeEncrypted {
		if err := jvalidation.Validate(token, validation.Base64); err != nil {
			return validation.WrapValidationError(err)
		}
	} else if err := jvalidation.Validate(token, validation.APIToken); err != nil {
		// Advisory only: surface the warning and store anyway.
		logger.Warn("token does not match the expected format, storing anyway")
	}

	var password string
	if !assumeEncrypted {
		var err error
		password, err = readSecret(tuple, "Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		confirm, err := readSecret(tuple, "Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read password confirmation: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	if err := box.Save(ctx, token, password); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	logger.Info("token stored")
	fmt.Fprintln(tuple.Writer, "Token stored.")
	return nil
}
