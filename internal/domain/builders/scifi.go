package builders

import (
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Science-fiction defaults.
const (
	SciFiGraphics  = "Realistic cyberpunk 3D graphics"
	SciFiSound     = "Electronic soundtrack with effects"
	SciFiStoryline = "Space colonization and artificial intelligence"
)

// ThemeSciFi is the registry name of SciFiBuilder.
var ThemeSciFi = values.MustNewThemeName("scifi")

// SciFiBuilder builds science-fiction games.
type SciFiBuilder struct {
	game entities.Game
}

// NewSciFiBuilder returns an empty sci-fi builder.
func NewSciFiBuilder() *SciFiBuilder {
	return &SciFiBuilder{}
}

func (b *SciFiBuilder) Reset() {
	b.game = entities.Game{}
}

func (b *SciFiBuilder) SetGraphics(v values.Text) {
	b.game.Graphics = values.Some(v.OrElse(SciFiGraphics))
}

func (b *SciFiBuilder) SetSound(v values.Text) {
	b.game.Sound = values.Some(v.OrElse(SciFiSound))
}

func (b *SciFiBuilder) SetStoryline(v values.Text) {
	b.game.Storyline = values.Some(v.OrElse(SciFiStoryline))
}

func (b *SciFiBuilder) GetGame() entities.Game {
	game := b.game
	b.Reset()
	return game
}

func (b *SciFiBuilder) Theme() values.ThemeName {
	return ThemeSciFi
}

func (b *SciFiBuilder) Defaults() Defaults {
	return Defaults{
		Graphics:  SciFiGraphics,
		Sound:     SciFiSound,
		Storyline: SciFiStoryline,
	}
}
