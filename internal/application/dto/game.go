// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"time"

	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// BuildGameRequest encapsulates all inputs needed to build one game.
type BuildGameRequest struct {
	// Theme selects the builder variant.
	Theme string

	// Recipe is replayed through a director before overrides. Empty means
	// the builder is driven by overrides alone.
	Recipe string

	// DefaultFields names fields whose setter is called with no value, so
	// the variant default applies. Applied after the recipe.
	DefaultFields []string

	// Overrides are applied as direct setter calls last.
	Overrides entities.Overrides

	// Count is how many games to build with the same inputs. Values below
	// one mean one.
	Count int
}

// BuildGameResponse contains the finished game.
type BuildGameResponse struct {
	// Record is the last game built.
	Record *entities.BuildRecord `json:"record" yaml:"record"`

	// Batch holds every game of a multi-game request, newest first.
	// It is empty for single builds.
	Batch []*entities.BuildRecord `json:"batch,omitempty" yaml:"batch,omitempty"`

	Metadata ResponseMetadata `json:"metadata" yaml:"metadata"`
}

// MatrixRequest selects the theme × recipe pairs to build.
type MatrixRequest struct {
	// Themes to build; empty means every registered theme.
	Themes []string

	// Recipes to replay; empty means every known recipe.
	Recipes []string

	// FilterExpression is an expr-lang boolean expression evaluated
	// against each row (theme, recipe, graphics, sound, storyline).
	FilterExpression string
}

// MatrixRow is one built game in a matrix.
type MatrixRow struct {
	ID     values.BuildID `json:"id" yaml:"id"`
	Theme  string         `json:"theme" yaml:"theme"`
	Recipe string         `json:"recipe" yaml:"recipe"`
	Game   entities.Game  `json:"game" yaml:"game"`
}

// MatrixResponse contains the selected rows, sorted by theme then recipe.
type MatrixResponse struct {
	Rows []MatrixRow `json:"rows" yaml:"rows"`

	// Recorded is the number of builds in the history after the matrix ran.
	Recorded int `json:"recorded" yaml:"recorded"`

	Metadata ResponseMetadata `json:"metadata" yaml:"metadata"`
}

// ThemeInfo describes a registered builder variant.
type ThemeInfo struct {
	Name     string            `json:"name" yaml:"name"`
	Defaults builders.Defaults `json:"defaults" yaml:"defaults"`
}

// CatalogResponse lists the available themes and recipes.
type CatalogResponse struct {
	Themes  []ThemeInfo             `json:"themes" yaml:"themes"`
	Recipes []domainservices.Recipe `json:"recipes" yaml:"recipes"`
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// ProcessedAt is when the request was processed
	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`

	// Duration is how long the request took
	Duration time.Duration `json:"duration" yaml:"duration"`
}
