package main

import (
	"github.com/spf13/cobra"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
)

// catalogSection selects which part of the catalog a command prints.
type catalogSection int

const (
	sectionAll catalogSection = iota
	sectionThemes
	sectionRecipes
)

func newCatalogCmd(use, short string, section catalogSection) *cobra.Command {
	opts := &CommonOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: withContainer(func(ctx *CommandContext, _ *cobra.Command, _ []string) error {
			return runCatalog(ctx, opts, section)
		}),
	}
	opts.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(
		newCatalogCmd("catalog", "List themes and recipes", sectionAll),
		newCatalogCmd("themes", "List themes and their defaults", sectionThemes),
		newCatalogCmd("recipes", "List recipes and their steps", sectionRecipes),
	)
}

func runCatalog(ctx *CommandContext, opts *CommonOptions, section catalogSection) error {
	formatter, err := opts.Formatter(ctx.Container.FormatterFactory(), ctx.Out)
	if err != nil {
		return err
	}

	resp, err := ctx.Container.CatalogService().Describe()
	if err != nil {
		return err
	}

	switch section {
	case sectionThemes:
		resp = &dto.CatalogResponse{Themes: resp.Themes}
	case sectionRecipes:
		resp = &dto.CatalogResponse{Recipes: resp.Recipes}
	}

	return formatter.FormatCatalog(resp)
}
