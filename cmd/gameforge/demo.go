package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the builder and director by example",
	Long: `Run four example builds against the in-process API:

  1. A full-featured fantasy game built by the director
  2. A minimal sci-fi game built by the director
  3. A custom fantasy game built step by step without a director
  4. Sci-fi default graphics mixed with a fantasy-flavoured sound and story`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

//nolint:errcheck // Best-effort terminal output
func runDemo(w io.Writer) error {
	fantasy := builders.NewFantasyBuilder()
	scifi := builders.NewSciFiBuilder()
	director := domainservices.NewDirectorWithBuilder(fantasy)

	fmt.Fprintln(w, "-- Example 1: full-featured fantasy game (via director) --")
	fmt.Fprintln(w)
	if err := director.BuildFullFeaturedGame(); err != nil {
		return err
	}
	fmt.Fprintln(w, fantasy.GetGame())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- Example 2: minimal sci-fi game (via director) --")
	fmt.Fprintln(w)
	director.SetBuilder(scifi)
	if err := director.BuildMinimalViableProduct(); err != nil {
		return err
	}
	fmt.Fprintln(w, scifi.GetGame())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- Example 3: custom build (no director) --")
	fmt.Fprintln(w)
	custom := builders.NewFantasyBuilder()
	custom.Reset()
	custom.SetGraphics(values.Some("Hand-drawn retro pixel art"))
	custom.SetSound(values.Some("Chiptune melodies"))
	custom.SetStoryline(values.Some("A journey into the world of lost legends"))
	fmt.Fprintln(w, custom.GetGame())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- Example 4: sci-fi graphics with a fantasy storyline --")
	fmt.Fprintln(w)
	mix := builders.NewSciFiBuilder()
	mix.Reset()
	mix.SetGraphics(values.None())
	mix.SetSound(values.Some("Mystic choir in space"))
	mix.SetStoryline(values.Some("A fantasy saga in the future"))
	fmt.Fprintln(w, mix.GetGame())

	return nil
}
