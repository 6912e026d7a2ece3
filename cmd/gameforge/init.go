package main

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

type initOptions struct {
	buildOptions

	NoInteractive bool
}

// wizardAnswers holds the raw values collected by the init wizard.
type wizardAnswers struct {
	Theme     string
	Recipe    string
	Graphics  string
	Sound     string
	Storyline string
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Build a game interactively",
		Long: `Pick a theme and a recipe, then optionally type your own graphics,
sound and storyline. Leaving a field blank keeps what the recipe produced.

Use --no-interactive to skip the prompts and build from flags, as 'build' does.`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			req := buildRequestFromFlags(cmd, &opts.buildOptions)
			if !opts.NoInteractive {
				answers, err := runWizard(ctx.Container.Registry(), ctx.Container.Recipes(), req)
				if err != nil {
					return err
				}
				req = answers.request(req)
			}
			return runBuild(ctx, &opts.buildOptions, req)
		}),
	}

	cmd.Flags().StringVarP(&opts.Theme, "theme", "t", "", "Builder theme (pre-selected in the wizard)")
	cmd.Flags().StringVarP(&opts.Recipe, "recipe", "r", "", "Director recipe (pre-selected in the wizard)")
	cmd.Flags().StringVar(&opts.Graphics, "graphics", "", "Explicit graphics value")
	cmd.Flags().StringVar(&opts.Sound, "sound", "", "Explicit sound value")
	cmd.Flags().StringVar(&opts.Storyline, "storyline", "", "Explicit storyline value")
	cmd.Flags().StringSliceVar(&opts.DefaultFields, "default", nil, "Fields to set to the theme default (graphics, sound, storyline)")
	cmd.Flags().BoolVar(&opts.NoInteractive, "no-interactive", false, "Build from flags without prompting")
	opts.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func runWizard(registry *builders.Registry, book *domainservices.RecipeBook, seed dto.BuildGameRequest) (wizardAnswers, error) {
	answers := wizardAnswers{
		Theme:     seed.Theme,
		Recipe:    seed.Recipe,
		Graphics:  seed.Overrides.Graphics.Value(),
		Sound:     seed.Overrides.Sound.Value(),
		Storyline: seed.Overrides.Storyline.Value(),
	}

	themeOptions := make([]huh.Option[string], 0)
	for _, name := range registry.Names() {
		themeOptions = append(themeOptions, huh.NewOption(name.String(), name.String()))
	}

	recipeOptions := []huh.Option[string]{huh.NewOption("none (set fields yourself)", "")}
	for _, r := range book.List() {
		recipeOptions = append(recipeOptions, huh.NewOption(r.Name.String(), r.Name.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&answers.Theme),
			huh.NewSelect[string]().
				Title("Recipe").
				Options(recipeOptions...).
				Value(&answers.Recipe),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Graphics").
				Placeholder("blank keeps the recipe result").
				Value(&answers.Graphics),
			huh.NewInput().
				Title("Sound").
				Placeholder("blank keeps the recipe result").
				Value(&answers.Sound),
			huh.NewInput().
				Title("Storyline").
				Placeholder("blank keeps the recipe result").
				Value(&answers.Storyline),
		),
	)

	if err := form.Run(); err != nil {
		return wizardAnswers{}, err
	}
	return answers, nil
}

// request converts answers to a build request. A blank answer is no
// override, unless the seed already held an explicit empty value and the
// user left it as is. DefaultFields and Count carry over from the seed.
func (a wizardAnswers) request(seed dto.BuildGameRequest) dto.BuildGameRequest {
	text := func(answer string, seeded values.Text) values.Text {
		if answer == "" && !seeded.Equals(values.Some("")) {
			return values.None()
		}
		return values.Some(answer)
	}

	return dto.BuildGameRequest{
		Theme:         a.Theme,
		Recipe:        a.Recipe,
		DefaultFields: seed.DefaultFields,
		Count:         seed.Count,
		Overrides: entities.Overrides{
			Graphics:  text(a.Graphics, seed.Overrides.Graphics),
			Sound:     text(a.Sound, seed.Overrides.Sound),
			Storyline: text(a.Storyline, seed.Overrides.Storyline),
		},
	}
}
