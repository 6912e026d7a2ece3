package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gameforge-dev/gameforge/internal/application/ports"
)

// CommonOptions contains output flags shared across commands.
type CommonOptions struct {
	// Format is empty until resolved against viper's "format" key.
	Format string

	NoColor bool
	Compact bool
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", "",
		"Output format: table, json, yaml (default from config, else table)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable colored table output")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false,
		"Emit JSON without indentation")
}

// Resolve fills unset options from configuration.
func (opts *CommonOptions) Resolve() {
	if opts.Format == "" {
		opts.Format = viper.GetString("format")
	}
	if !viper.GetBool("color") {
		opts.NoColor = true
	}
}

// ValidateFlags validates common options against the supported formats.
func (opts *CommonOptions) ValidateFlags(supported []string) error {
	if !slices.Contains(supported, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, supported)
	}
	return nil
}

// Formatter resolves, validates and creates the output formatter.
func (opts *CommonOptions) Formatter(factory ports.OutputFormatterFactory, w io.Writer) (ports.OutputFormatter, error) {
	opts.Resolve()
	if err := opts.ValidateFlags(factory.SupportedFormats()); err != nil {
		return nil, err
	}
	return factory.Create(opts.Format, w, ports.FormatterOptions{
		Indent: !opts.Compact,
		Color:  !opts.NoColor,
	})
}
