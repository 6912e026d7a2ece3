package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// buildOptions holds flags for the build command.
type buildOptions struct {
	CommonOptions

	Theme         string
	Recipe        string
	Graphics      string
	Sound         string
	Storyline     string
	DefaultFields []string
	Count         int
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a single game",
		Long: `Build one game with a themed builder.

A recipe, when given, is replayed first through a director and sets its
fields to the theme's defaults. --default then sets more fields to the theme's
defaults, and --graphics/--sound/--storyline set explicit values last.
An explicit empty value (--storyline "") is kept as an empty string.

Examples:
  gameforge build --theme fantasy --recipe full
  gameforge build --theme scifi --recipe minimal --storyline "Added later"
  gameforge build --theme scifi --default graphics --sound "Mystic choir in space"
  gameforge build --theme fantasy --recipe full --count 3`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			return runBuild(ctx, opts, buildRequestFromFlags(cmd, opts))
		}),
	}

	cmd.Flags().StringVarP(&opts.Theme, "theme", "t", "", "Builder theme (default from config, else fantasy)")
	cmd.Flags().StringVarP(&opts.Recipe, "recipe", "r", "", "Director recipe to replay (e.g. minimal, full)")
	cmd.Flags().StringVar(&opts.Graphics, "graphics", "", "Explicit graphics value")
	cmd.Flags().StringVar(&opts.Sound, "sound", "", "Explicit sound value")
	cmd.Flags().StringVar(&opts.Storyline, "storyline", "", "Explicit storyline value")
	cmd.Flags().StringSliceVar(&opts.DefaultFields, "default", nil, "Fields to set to the theme default (graphics, sound, storyline)")
	cmd.Flags().IntVar(&opts.Count, "count", 1, "Number of games to build with the same builder")
	opts.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

// buildRequestFromFlags maps flags to a request. Only flags the user set
// become overrides, so an explicit empty string differs from no value.
func buildRequestFromFlags(cmd *cobra.Command, opts *buildOptions) dto.BuildGameRequest {
	override := func(name, value string) values.Text {
		if cmd.Flags().Changed(name) {
			return values.Some(value)
		}
		return values.None()
	}

	theme := opts.Theme
	if theme == "" {
		theme = viper.GetString("theme")
	}

	return dto.BuildGameRequest{
		Theme:         theme,
		Recipe:        opts.Recipe,
		DefaultFields: opts.DefaultFields,
		Count:         opts.Count,
		Overrides: entities.Overrides{
			Graphics:  override("graphics", opts.Graphics),
			Sound:     override("sound", opts.Sound),
			Storyline: override("storyline", opts.Storyline),
		},
	}
}

func runBuild(ctx *CommandContext, opts *buildOptions, req dto.BuildGameRequest) error {
	formatter, err := opts.Formatter(ctx.Container.FormatterFactory(), ctx.Out)
	if err != nil {
		return err
	}

	resp, err := ctx.Container.BuildGameUseCase().Execute(ctx.Context, req)
	if err != nil {
		return err
	}

	return formatter.FormatGame(resp)
}
