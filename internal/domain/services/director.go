package services

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gameforge-dev/gameforge/internal/domain/builders"
)

// ErrUnconfiguredDirector is returned when a recipe runs before SetBuilder.
var ErrUnconfiguredDirector = errors.New("unconfigured director: no builder set")

// Director replays recipes against whichever builder it currently targets.
// It never retrieves the game; the caller calls GetGame on the builder.
type Director struct {
	builder builders.GameBuilder
}

// NewDirector creates a director with no builder.
func NewDirector() *Director {
	return &Director{}
}

// NewDirectorWithBuilder creates a director targeting b.
func NewDirectorWithBuilder(b builders.GameBuilder) *Director {
	d := &Director{}
	d.SetBuilder(b)
	return d
}

// SetBuilder retargets the director. A nil builder, including a nil pointer
// of a concrete builder type, unconfigures it.
func (d *Director) SetBuilder(b builders.GameBuilder) {
	if isNilBuilder(b) {
		d.builder = nil
		return
	}
	d.builder = b
}

// Configured reports whether a builder is set.
func (d *Director) Configured() bool {
	return d.builder != nil
}

// BuildMinimalViableProduct resets the builder and sets graphics and sound to
// the builder's defaults. Storyline is left unset.
func (d *Director) BuildMinimalViableProduct() error {
	return d.Construct(RecipeMinimal)
}

// BuildFullFeaturedGame resets the builder and sets every field to the
// builder's defaults.
func (d *Director) BuildFullFeaturedGame() error {
	return d.Construct(RecipeFull)
}

// Construct replays recipe against the current builder.
// An unconfigured director fails before touching any builder.
func (d *Director) Construct(recipe Recipe) error {
	if d.builder == nil {
		return fmt.Errorf("%s: %w", recipe.Name, ErrUnconfiguredDirector)
	}

	d.builder.Reset()
	for _, step := range recipe.Steps {
		step.Apply(d.builder)
	}
	return nil
}

func isNilBuilder(b builders.GameBuilder) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
