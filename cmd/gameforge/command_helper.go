package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gameforge-dev/gameforge/internal/infrastructure/container"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	Out       io.Writer
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
//
// Usage:
//
//	cmd := &cobra.Command{
//	    Use: "themes",
//	    RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
//	        resp, err := ctx.Container.CatalogService().Describe()
//	        ...
//	    }),
//	}
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		c, err := container.New(container.Options{
			CatalogPath:       viper.GetString("catalog"),
			MatrixConcurrency: viper.GetInt("concurrency"),
			Logger:            logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
			Out:       cmd.OutOrStdout(),
		}, cmd, args)
	}
}
