package entities

import (
	"time"

	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Overrides are the explicit values a caller passed to the setters.
// Absent overrides let the builder's defaults apply.
type Overrides struct {
	Graphics  values.Text `json:"graphics" yaml:"graphics"`
	Sound     values.Text `json:"sound" yaml:"sound"`
	Storyline values.Text `json:"storyline" yaml:"storyline"`
}

// IsEmpty reports whether no override was given.
func (o Overrides) IsEmpty() bool {
	return !o.Graphics.IsSet() && !o.Sound.IsSet() && !o.Storyline.IsSet()
}

// BuildRecord is a finished game plus how it was produced.
type BuildRecord struct {
	BuiltAt   time.Time         `json:"built_at" yaml:"built_at"`
	ID        values.BuildID    `json:"id" yaml:"id"`
	Theme     values.ThemeName  `json:"theme" yaml:"theme"`
	Recipe    values.RecipeName `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Overrides Overrides         `json:"overrides" yaml:"overrides"`
	Game      Game              `json:"game" yaml:"game"`
}

// NewBuildRecord stamps a game with a fresh ID and the current time.
func NewBuildRecord(theme values.ThemeName, recipe values.RecipeName, overrides Overrides, game Game) *BuildRecord {
	return &BuildRecord{
		ID:        values.NewBuildID(),
		Theme:     theme,
		Recipe:    recipe,
		Overrides: overrides,
		Game:      game,
		BuiltAt:   time.Now().UTC(),
	}
}

// GetID returns the record ID.
func (r *BuildRecord) GetID() values.BuildID {
	return r.ID
}
