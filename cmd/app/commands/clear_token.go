package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase"
)

// RunClearToken removes the stored blob. Clearing an empty slot is not an error.
func RunClearToken(
	ctx context.Context,
	box usecase.SecretBox,
	logger *slog.Logger,
	tuple IOTuple,
) error {
	if err := box.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	logger.Info("token cleared")
	fmt.Fprintln(tuple.Writer, "Token cleared.")
	return nil
}
