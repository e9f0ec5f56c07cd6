package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase"
)

// RunCheckToken reports whether a candidate token looks like an API token.
// The check is advisory: a non-conforming token can still be stored. The exit
// status reflects the result so the command is usable from scripts.
func RunCheckToken(
	ctx context.Context,
	box usecase.SecretBox,
	logger *slog.Logger,
	token string,
	tuple IOTuple,
) error {
	if token == "" {
		var err error
		token, err = readSecret(tuple, "Token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	if !box.ValidateTokenFormat(token) {
		fmt.Fprintln(tuple.Writer, "Token does not match the expected format.")
		return fmt.Errorf("token format check failed")
	}

	fmt.Fprintln(tuple.Writer, "Token format looks valid.")
	return nil
}
