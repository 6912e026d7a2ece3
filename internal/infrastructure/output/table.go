package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

// TableFormatter formats responses as human-readable text.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TableFormatter) rule() string {
	return f.colorize(strings.Repeat("─", 60), colorGray)
}

// FormatGame writes the game in its rendered form.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatGame(resp *dto.BuildGameResponse) error {
	if len(resp.Batch) == 0 {
		f.writeRecord(resp.Record)
		return nil
	}

	fmt.Fprintln(f.writer, f.rule())
	for _, rec := range resp.Batch {
		f.writeRecord(rec)
		fmt.Fprintln(f.writer, f.rule())
	}
	fmt.Fprintf(f.writer, "%d games\n", len(resp.Batch))
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) writeRecord(rec *entities.BuildRecord) {
	recipe := rec.Recipe.String()
	if recipe == "" {
		recipe = values.NonePlaceholder
	}

	fmt.Fprintf(f.writer, "Theme: %s  Recipe: %s\n", f.colorize(rec.Theme.String(), colorBold), recipe)
	fmt.Fprintf(f.writer, "Build: %s\n", f.colorize(rec.ID.String(), colorGray))
	fmt.Fprintln(f.writer, rec.Game.String())
}

// FormatMatrix writes one block per theme/recipe pair.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatMatrix(resp *dto.MatrixResponse) error {
	if len(resp.Rows) == 0 {
		fmt.Fprintln(f.writer, "No games matched.")
		return nil
	}

	fmt.Fprintln(f.writer, f.rule())
	for _, row := range resp.Rows {
		fmt.Fprintf(f.writer, "%s / %s\n", f.colorize(row.Theme, colorBold), f.colorize(row.Recipe, colorCyan))
		fmt.Fprintln(f.writer, row.Game.String())
		fmt.Fprintln(f.writer, f.rule())
	}
	fmt.Fprintf(f.writer, "%d games (%d recorded)\n", len(resp.Rows), resp.Recorded)
	return nil
}

// FormatCatalog lists themes with defaults and recipes with steps.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatCatalog(resp *dto.CatalogResponse) error {
	if len(resp.Themes) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Themes:", colorBold))
		for _, theme := range resp.Themes {
			fmt.Fprintf(f.writer, "  %s\n", f.colorize(theme.Name, colorCyan))
			fmt.Fprintf(f.writer, "    Graphics: %s\n", theme.Defaults.Graphics)
			fmt.Fprintf(f.writer, "    Sound: %s\n", theme.Defaults.Sound)
			fmt.Fprintf(f.writer, "    Storyline: %s\n", theme.Defaults.Storyline)
		}
	}

	if len(resp.Recipes) > 0 {
		if len(resp.Themes) > 0 {
			fmt.Fprintln(f.writer)
		}
		fmt.Fprintln(f.writer, f.colorize("Recipes:", colorBold))
		for _, recipe := range resp.Recipes {
			steps := make([]string, 0, len(recipe.Steps))
			for _, s := range recipe.Steps {
				steps = append(steps, s.String())
			}
			fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize(recipe.Name.String(), colorCyan), strings.Join(steps, ", "))
		}
	}
	return nil
}
