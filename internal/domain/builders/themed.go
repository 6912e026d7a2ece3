package builders

import (
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// ThemedBuilder is a variant whose defaults come from the catalog file.
// The defaults are fixed when the builder is created.
type ThemedBuilder struct {
	theme    values.ThemeName
	defaults Defaults
	game     entities.Game
}

// NewThemedBuilder returns an empty builder for a catalog theme.
func NewThemedBuilder(theme values.ThemeName, defaults Defaults) *ThemedBuilder {
	return &ThemedBuilder{theme: theme, defaults: defaults}
}

func (b *ThemedBuilder) Reset() {
	b.game = entities.Game{}
}

func (b *ThemedBuilder) SetGraphics(v values.Text) {
	b.game.Graphics = values.Some(v.OrElse(b.defaults.Graphics))
}

func (b *ThemedBuilder) SetSound(v values.Text) {
	b.game.Sound = values.Some(v.OrElse(b.defaults.Sound))
}

func (b *ThemedBuilder) SetStoryline(v values.Text) {
	b.game.Storyline = values.Some(v.OrElse(b.defaults.Storyline))
}

func (b *ThemedBuilder) GetGame() entities.Game {
	game := b.game
	b.Reset()
	return game
}

func (b *ThemedBuilder) Theme() values.ThemeName {
	return b.theme
}

func (b *ThemedBuilder) Defaults() Defaults {
	return b.defaults
}
