// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/davidkarpay/tokenvault/cmd/app/commands"
	"github.com/davidkarpay/tokenvault/internal/app"
	"github.com/davidkarpay/tokenvault/internal/config"
	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase"
)

// buildSecretBox assembles the DI container and resolves its secret box.
// The returned cleanup must be deferred by the caller.
func buildSecretBox(assumeEncrypted bool) (usecase.SecretBox, *slog.Logger, func(), error) {
	cfg := config.Load()
	if assumeEncrypted {
		cfg.AssumeEncrypted = true
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()

	box, err := container.SecretBox()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize secret box: %w", err)
	}

	cleanup := func() {
		if shutdownErr := container.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("failed to shutdown container", slog.Any("error", shutdownErr))
		}
	}
	return box, logger, cleanup, nil
}

func main() {
	cmd := &cli.Command{
		Name:    "tokenvault",
		Usage:   "Encrypt an API token with a password and keep it on disk",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "set-token",
				Usage: "Encrypt and store an API token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "token",
						Aliases: []string{"t"},
						Value:   "",
						Usage:   "API token to store (omit to be prompted)",
					},
					&cli.BoolFlag{
						Name:  "assume-encrypted",
						Value: false,
						Usage: "Treat the token as an already-encrypted blob and store it as-is",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					box, logger, cleanup, err := buildSecretBox(cmd.Bool("assume-encrypted"))
					if err != nil {
						return err
					}
					defer cleanup()
					return commands.RunSetToken(
						ctx,
						box,
						logger,
						cmd.String("token"),
						cmd.Bool("assume-encrypted"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "get-token",
				Usage: "Decrypt and print the stored API token",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					box, logger, cleanup, err := buildSecretBox(false)
					if err != nil {
						return err
					}
					defer cleanup()
					return commands.RunGetToken(ctx, box, logger, commands.DefaultIO())
				},
			},
			{
				Name:  "clear-token",
				Usage: "Remove the stored API token",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					box, logger, cleanup, err := buildSecretBox(false)
					if err != nil {
						return err
					}
					defer cleanup()
					return commands.RunClearToken(ctx, box, logger, commands.DefaultIO())
				},
			},
			{
				Name:  "check-token",
				Usage: "Check whether a token matches the expected API token format",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "token",
						Aliases: []string{"t"},
						Value:   "",
						Usage:   "Token to check (omit to be prompted)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					box, logger, cleanup, err := buildSecretBox(false)
					if err != nil {
						return err
					}
					defer cleanup()
					return commands.RunCheckToken(ctx, box, logger, cmd.String("token"), commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
