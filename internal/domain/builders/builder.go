// Package builders defines the game builder contract and its themed variants.
//
// A builder accumulates one in-progress game through discrete setter calls.
// Setters given an absent value substitute the variant's fixed default.
// GetGame hands the finished game to the caller and leaves the builder empty
// and ready for the next build. Builders are not safe for concurrent use.
package builders

import (
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// GameBuilder is the capability shared by every builder variant.
type GameBuilder interface {
	// Reset discards the in-progress game and starts an empty one.
	Reset()

	// SetGraphics sets graphics, or the variant default when v is absent.
	SetGraphics(v values.Text)

	// SetSound sets sound, or the variant default when v is absent.
	SetSound(v values.Text)

	// SetStoryline sets storyline, or the variant default when v is absent.
	SetStoryline(v values.Text)

	// GetGame returns the in-progress game and resets the builder.
	GetGame() entities.Game
}

// Themed describes a builder variant.
type Themed interface {
	Theme() values.ThemeName
	Defaults() Defaults
}

// ThemedGameBuilder is a GameBuilder that can describe itself.
type ThemedGameBuilder interface {
	GameBuilder
	Themed
}

// Defaults are the strings a variant substitutes for absent setter values.
type Defaults struct {
	Graphics  string `json:"graphics" yaml:"graphics"`
	Sound     string `json:"sound" yaml:"sound"`
	Storyline string `json:"storyline" yaml:"storyline"`
}

var (
	_ ThemedGameBuilder = (*FantasyBuilder)(nil)
	_ ThemedGameBuilder = (*SciFiBuilder)(nil)
	_ ThemedGameBuilder = (*ThemedBuilder)(nil)
)
