package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/davidkarpay/tokenvault/internal/errors"
	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase"
)

// RunGetToken loads the stored blob, decrypts it with a prompted password and
// writes the plaintext token to the output writer.
func RunGetToken(
	ctx context.Context,
	box usecase.SecretBox,
	logger *slog.Logger,
	tuple IOTuple,
) error {
	password, err := readSecret(tuple, "Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	token, err := box.Load(ctx, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no token stored")
		}
		return fmt.Errorf("failed to load token: %w", err)
	}

	logger.Info("token loaded")
	fmt.Fprintln(tuple.Writer, token)
	return nil
}
