package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

var variants = []struct {
	name     string
	new      func() ThemedGameBuilder
	defaults Defaults
}{
	{
		name: "fantasy",
		new:  func() ThemedGameBuilder { return NewFantasyBuilder() },
		defaults: Defaults{
			Graphics:  FantasyGraphics,
			Sound:     FantasySound,
			Storyline: FantasyStoryline,
		},
	},
	{
		name: "scifi",
		new:  func() ThemedGameBuilder { return NewSciFiBuilder() },
		defaults: Defaults{
			Graphics:  SciFiGraphics,
			Sound:     SciFiSound,
			Storyline: SciFiStoryline,
		},
	},
	{
		name: "themed",
		new: func() ThemedGameBuilder {
			return NewThemedBuilder(values.MustNewThemeName("noir"), Defaults{
				Graphics:  "Black-and-white film grain",
				Sound:     "Smoky jazz",
				Storyline: "A detective's last case",
			})
		},
		defaults: Defaults{
			Graphics:  "Black-and-white film grain",
			Sound:     "Smoky jazz",
			Storyline: "A detective's last case",
		},
	},
}

func TestBuilders_DefaultSubstitution(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b := v.new()
			b.SetGraphics(values.None())
			b.SetSound(values.None())
			b.SetStoryline(values.None())

			game := b.GetGame()
			assert.Equal(t, v.defaults.Graphics, game.Graphics.Value())
			assert.Equal(t, v.defaults.Sound, game.Sound.Value())
			assert.Equal(t, v.defaults.Storyline, game.Storyline.Value())
			assert.Equal(t, v.defaults, b.Defaults())
		})
	}
}

func TestBuilders_ExplicitValuesVerbatim(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b := v.new()
			b.SetGraphics(values.Some("Hand-drawn retro pixel art"))
			b.SetSound(values.Some(""))
			b.SetStoryline(values.Some("  A journey into the world of lost legends  "))

			game := b.GetGame()
			assert.True(t, game.Graphics.Equals(values.Some("Hand-drawn retro pixel art")))
			assert.True(t, game.Sound.Equals(values.Some("")), "explicit empty string is kept")
			assert.Equal(t, "  A journey into the world of lost legends  ", game.Storyline.Value())
		})
	}
}

func TestBuilders_LastCallWins(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b := v.new()
			b.SetGraphics(values.Some("first"))
			b.SetGraphics(values.None())
			b.SetSound(values.None())
			b.SetSound(values.Some("second"))

			game := b.GetGame()
			assert.Equal(t, v.defaults.Graphics, game.Graphics.Value())
			assert.Equal(t, "second", game.Sound.Value())
		})
	}
}

func TestBuilders_ResetIsolation(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b := v.new()
			b.SetGraphics(values.Some("g1"))
			b.SetSound(values.Some("s1"))
			b.SetStoryline(values.None())
			b.Reset()
			b.Reset()
			b.SetSound(values.Some("s2"))

			game := b.GetGame()
			assert.False(t, game.Graphics.IsSet())
			assert.Equal(t, "s2", game.Sound.Value())
			assert.False(t, game.Storyline.IsSet())
		})
	}
}

func TestBuilders_RetrievalDetachment(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b := v.new()
			b.SetGraphics(values.Some("kept"))
			first := b.GetGame()

			b.SetGraphics(values.Some("changed"))
			b.SetSound(values.None())
			second := b.GetGame()

			assert.Equal(t, "kept", first.Graphics.Value())
			assert.False(t, first.Sound.IsSet())
			assert.Equal(t, "changed", second.Graphics.Value())
		})
	}
}

func TestBuilders_PostRetrievalFreshness(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b := v.new()
			b.SetGraphics(values.None())
			b.SetSound(values.None())
			b.SetStoryline(values.None())
			_ = b.GetGame()

			assert.True(t, b.GetGame().IsEmpty())
		})
	}
}

func TestBuilders_NeverConfigured(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			assert.True(t, v.new().GetGame().Equals(entities.Game{}))
		})
	}
}

func TestBuilders_VariantsDoNotShareState(t *testing.T) {
	a := NewFantasyBuilder()
	b := NewFantasyBuilder()

	a.SetGraphics(values.Some("only a"))

	assert.True(t, b.GetGame().IsEmpty())
	assert.Equal(t, "only a", a.GetGame().Graphics.Value())
}

func TestFantasyBuilder_ExampleScenario(t *testing.T) {
	b := NewFantasyBuilder()
	b.SetGraphics(values.Some("X"))
	b.SetSound(values.None())

	game := b.GetGame()
	assert.Equal(t, "X", game.Graphics.Value())
	assert.Equal(t, FantasySound, game.Sound.Value())
	assert.False(t, game.Storyline.IsSet())

	assert.True(t, b.GetGame().IsEmpty())
}

func TestBuilders_Theme(t *testing.T) {
	assert.Equal(t, "fantasy", NewFantasyBuilder().Theme().String())
	assert.Equal(t, "scifi", NewSciFiBuilder().Theme().String())
	assert.Equal(t, "noir", NewThemedBuilder(values.MustNewThemeName("noir"), Defaults{}).Theme().String())
}
