// Package main provides the gameforge CLI for assembling games with themed
// builders and director recipes.
package main

import (
	"log/slog"
	"os"
)

func main() {
	// Setup structured logging; replaced once flags are parsed
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	Execute()
}
