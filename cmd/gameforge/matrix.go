package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
)

type matrixOptions struct {
	CommonOptions

	Themes      []string
	Recipes     []string
	Filter      string
	Concurrency int
}

func newMatrixCmd() *cobra.Command {
	opts := &matrixOptions{}

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build every theme and recipe combination",
		Long: `Build one game per theme × recipe pair and print them side by side.

Filtering:
  --theme fantasy,scifi                   Only these themes
  --recipe minimal                        Only these recipes
  --filter "recipe == 'full'"             Expression over theme, recipe,
                                          graphics, sound, storyline, fields
  --filter "'storyline' not in fields"    Games without a storyline`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Flags().Changed("concurrency") {
				viper.Set("concurrency", opts.Concurrency)
			}
		},
		RunE: withContainer(func(ctx *CommandContext, _ *cobra.Command, _ []string) error {
			return runMatrix(ctx, opts)
		}),
	}

	cmd.Flags().StringSliceVar(&opts.Themes, "theme", nil, "Themes to build (default: all)")
	cmd.Flags().StringSliceVar(&opts.Recipes, "recipe", nil, "Recipes to replay (default: all)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Filter expression (e.g. \"theme == 'scifi'\")")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Maximum themes built in parallel (0 = all)")
	opts.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newMatrixCmd())
}

func runMatrix(ctx *CommandContext, opts *matrixOptions) error {
	formatter, err := opts.Formatter(ctx.Container.FormatterFactory(), ctx.Out)
	if err != nil {
		return err
	}

	resp, err := ctx.Container.MatrixUseCase().Execute(ctx.Context, dto.MatrixRequest{
		Themes:           opts.Themes,
		Recipes:          opts.Recipes,
		FilterExpression: opts.Filter,
	})
	if err != nil {
		return err
	}

	return formatter.FormatMatrix(resp)
}
