// Package entities contains the domain objects assembled and recorded by gameforge.
package entities

import (
	"fmt"

	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Field names in the order they are built and rendered.
const (
	FieldGraphics  = "graphics"
	FieldSound     = "sound"
	FieldStoryline = "storyline"
)

// Game is the product assembled by a builder.
// All fields are optional and independent of each other. The zero value is
// an empty game. Game holds only values, so a copy shares nothing with the
// original.
type Game struct {
	Graphics  values.Text `json:"graphics" yaml:"graphics"`
	Sound     values.Text `json:"sound" yaml:"sound"`
	Storyline values.Text `json:"storyline" yaml:"storyline"`
}

// String renders the game, substituting "(none)" for absent fields.
func (g Game) String() string {
	return fmt.Sprintf("Game:\n  Graphics: %s\n  Sound: %s\n  Storyline: %s",
		g.Graphics, g.Sound, g.Storyline)
}

// Equals reports value equality.
func (g Game) Equals(other Game) bool {
	return g.Graphics.Equals(other.Graphics) &&
		g.Sound.Equals(other.Sound) &&
		g.Storyline.Equals(other.Storyline)
}

// IsEmpty reports whether no field is set.
func (g Game) IsEmpty() bool {
	return !g.Graphics.IsSet() && !g.Sound.IsSet() && !g.Storyline.IsSet()
}

// SetFields returns the names of the present fields.
func (g Game) SetFields() []string {
	fields := make([]string, 0, 3)
	if g.Graphics.IsSet() {
		fields = append(fields, FieldGraphics)
	}
	if g.Sound.IsSet() {
		fields = append(fields, FieldSound)
	}
	if g.Storyline.IsSet() {
		fields = append(fields, FieldStoryline)
	}
	return fields
}
