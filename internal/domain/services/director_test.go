package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// recordingBuilder records every call it receives.
type recordingBuilder struct {
	calls []string
}

func (r *recordingBuilder) Reset() { r.calls = append(r.calls, "reset") }
func (r *recordingBuilder) SetGraphics(v values.Text) {
	r.calls = append(r.calls, "graphics:"+v.String())
}
func (r *recordingBuilder) SetSound(v values.Text) { r.calls = append(r.calls, "sound:"+v.String()) }
func (r *recordingBuilder) SetStoryline(v values.Text) {
	r.calls = append(r.calls, "storyline:"+v.String())
}
func (r *recordingBuilder) GetGame() entities.Game {
	r.calls = append(r.calls, "get")
	return entities.Game{}
}

func Test_Director_Unconfigured(t *testing.T) {
	t.Parallel()
	d := NewDirector()

	assert.False(t, d.Configured())

	err := d.BuildMinimalViableProduct()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnconfiguredDirector))
	assert.Contains(t, err.Error(), "minimal")

	err = d.BuildFullFeaturedGame()
	assert.ErrorIs(t, err, ErrUnconfiguredDirector)
}

func Test_Director_UnconfiguredHasNoSideEffects(t *testing.T) {
	t.Parallel()
	rec := &recordingBuilder{}
	d := NewDirectorWithBuilder(rec)
	d.SetBuilder(nil)

	assert.ErrorIs(t, d.BuildFullFeaturedGame(), ErrUnconfiguredDirector)
	assert.Empty(t, rec.calls)
}

func Test_Director_RecipeCallSequence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		run  func(*Director) error
		want []string
	}{
		{
			name: "minimal",
			run:  (*Director).BuildMinimalViableProduct,
			want: []string{"reset", "graphics:(none)", "sound:(none)"},
		},
		{
			name: "full",
			run:  (*Director).BuildFullFeaturedGame,
			want: []string{"reset", "graphics:(none)", "sound:(none)", "storyline:(none)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingBuilder{}
			d := NewDirectorWithBuilder(rec)

			require.NoError(t, tt.run(d))
			assert.Equal(t, tt.want, rec.calls, "recipes never call GetGame")
		})
	}
}

func Test_Director_RecipeCoverage(t *testing.T) {
	t.Parallel()
	b := builders.NewFantasyBuilder()
	d := NewDirectorWithBuilder(b)

	require.NoError(t, d.BuildMinimalViableProduct())
	minimal := b.GetGame()
	assert.Equal(t, []string{entities.FieldGraphics, entities.FieldSound}, minimal.SetFields())
	assert.Equal(t, builders.FantasyGraphics, minimal.Graphics.Value())
	assert.Equal(t, builders.FantasySound, minimal.Sound.Value())

	require.NoError(t, d.BuildFullFeaturedGame())
	full := b.GetGame()
	assert.Equal(t, builders.FantasyGraphics, full.Graphics.Value())
	assert.Equal(t, builders.FantasySound, full.Sound.Value())
	assert.Equal(t, builders.FantasyStoryline, full.Storyline.Value())
}

func Test_Director_RecipeDiscardsPriorState(t *testing.T) {
	t.Parallel()
	b := builders.NewSciFiBuilder()
	b.SetStoryline(values.Some("leftover"))

	d := NewDirectorWithBuilder(b)
	require.NoError(t, d.BuildMinimalViableProduct())

	assert.False(t, b.GetGame().Storyline.IsSet())
}

func Test_Director_VariantIndependence(t *testing.T) {
	t.Parallel()
	fantasy := builders.NewFantasyBuilder()
	scifi := builders.NewSciFiBuilder()
	d := NewDirector()

	for _, recipe := range []Recipe{RecipeMinimal, RecipeFull} {
		d.SetBuilder(fantasy)
		require.NoError(t, d.Construct(recipe))
		a := fantasy.GetGame()

		d.SetBuilder(scifi)
		require.NoError(t, d.Construct(recipe))
		b := scifi.GetGame()

		assert.Equal(t, a.SetFields(), b.SetFields(), recipe.Name.String())
		assert.NotEqual(t, a.Graphics.Value(), b.Graphics.Value())
		assert.NotEqual(t, a.Sound.Value(), b.Sound.Value())
		if a.Storyline.IsSet() {
			assert.NotEqual(t, a.Storyline.Value(), b.Storyline.Value())
		}
	}
}

func Test_Director_SciFiMinimalScenario(t *testing.T) {
	t.Parallel()
	scifi := builders.NewSciFiBuilder()
	d := NewDirector()
	d.SetBuilder(scifi)
	assert.True(t, d.Configured())

	require.NoError(t, d.BuildMinimalViableProduct())
	game := scifi.GetGame()

	assert.Equal(t, builders.SciFiGraphics, game.Graphics.Value())
	assert.Equal(t, builders.SciFiSound, game.Sound.Value())
	assert.False(t, game.Storyline.IsSet())
}

func Test_Director_StorylineAddedAfterMinimal(t *testing.T) {
	t.Parallel()
	b := builders.NewFantasyBuilder()
	d := NewDirectorWithBuilder(b)

	require.NoError(t, d.BuildMinimalViableProduct())
	b.SetStoryline(values.Some("Added later"))

	game := b.GetGame()
	assert.Equal(t, "Added later", game.Storyline.Value())
	assert.Equal(t, builders.FantasyGraphics, game.Graphics.Value())
}

func Test_Director_ReusableAcrossBuilders(t *testing.T) {
	t.Parallel()
	d := NewDirector()
	for i := 0; i < 3; i++ {
		b := builders.NewFantasyBuilder()
		d.SetBuilder(b)
		require.NoError(t, d.BuildFullFeaturedGame())
		assert.Len(t, b.GetGame().SetFields(), 3)
	}
}

func Test_Director_TypedNilBuilderUnconfigures(t *testing.T) {
	t.Parallel()
	var fantasy *builders.FantasyBuilder

	d := NewDirectorWithBuilder(builders.NewSciFiBuilder())
	d.SetBuilder(fantasy)
	assert.False(t, d.Configured())

	err := d.BuildFullFeaturedGame()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnconfiguredDirector))

	assert.False(t, NewDirectorWithBuilder(fantasy).Configured())
}
