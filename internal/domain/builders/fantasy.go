package builders

import (
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Fantasy defaults.
const (
	FantasyGraphics  = "Pixel-art fantasy graphics"
	FantasySound     = "Orchestral soundtrack"
	FantasyStoryline = "Hero's journey: the fight against evil"
)

// ThemeFantasy is the registry name of FantasyBuilder.
var ThemeFantasy = values.MustNewThemeName("fantasy")

// FantasyBuilder builds high-fantasy games.
type FantasyBuilder struct {
	game entities.Game
}

// NewFantasyBuilder returns an empty fantasy builder.
func NewFantasyBuilder() *FantasyBuilder {
	return &FantasyBuilder{}
}

func (b *FantasyBuilder) Reset() {
	b.game = entities.Game{}
}

func (b *FantasyBuilder) SetGraphics(v values.Text) {
	b.game.Graphics = values.Some(v.OrElse(FantasyGraphics))
}

func (b *FantasyBuilder) SetSound(v values.Text) {
	b.game.Sound = values.Some(v.OrElse(FantasySound))
}

func (b *FantasyBuilder) SetStoryline(v values.Text) {
	b.game.Storyline = values.Some(v.OrElse(FantasyStoryline))
}

func (b *FantasyBuilder) GetGame() entities.Game {
	game := b.game
	b.Reset()
	return game
}

func (b *FantasyBuilder) Theme() values.ThemeName {
	return ThemeFantasy
}

func (b *FantasyBuilder) Defaults() Defaults {
	return Defaults{
		Graphics:  FantasyGraphics,
		Sound:     FantasySound,
		Storyline: FantasyStoryline,
	}
}
