package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Step is a single setter call replayed by a recipe.
type Step int

const (
	StepGraphics Step = iota + 1
	StepSound
	StepStoryline
)

// ParseStep converts a field name into a Step.
func ParseStep(s string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entities.FieldGraphics:
		return StepGraphics, nil
	case entities.FieldSound:
		return StepSound, nil
	case entities.FieldStoryline:
		return StepStoryline, nil
	default:
		return 0, fmt.Errorf("invalid recipe step: %q (valid: graphics, sound, storyline)", s)
	}
}

// String returns the field name the step sets.
func (s Step) String() string {
	switch s {
	case StepGraphics:
		return entities.FieldGraphics
	case StepSound:
		return entities.FieldSound
	case StepStoryline:
		return entities.FieldStoryline
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Apply calls the setter for s with an absent value.
func (s Step) Apply(b builders.GameBuilder) {
	switch s {
	case StepGraphics:
		b.SetGraphics(values.None())
	case StepSound:
		b.SetSound(values.None())
	case StepStoryline:
		b.SetStoryline(values.None())
	}
}

// Recipe is a named, fixed sequence of setter calls.
// Replaying a recipe always starts with Reset and never retrieves the game.
type Recipe struct {
	Name  values.RecipeName `json:"name" yaml:"name"`
	Steps []Step            `json:"steps" yaml:"steps"`
}

// NewRecipe validates steps: at least one, each known, no repeats.
func NewRecipe(name values.RecipeName, steps []Step) (Recipe, error) {
	if name.IsEmpty() {
		return Recipe{}, fmt.Errorf("recipe name cannot be empty")
	}
	if len(steps) == 0 {
		return Recipe{}, fmt.Errorf("recipe %s: at least one step is required", name)
	}
	seen := make(map[Step]bool, len(steps))
	for _, s := range steps {
		if s < StepGraphics || s > StepStoryline {
			return Recipe{}, fmt.Errorf("recipe %s: invalid step %s", name, s)
		}
		if seen[s] {
			return Recipe{}, fmt.Errorf("recipe %s: duplicate step %s", name, s)
		}
		seen[s] = true
	}
	return Recipe{Name: name, Steps: append([]Step(nil), steps...)}, nil
}

// Built-in recipes.
var (
	// RecipeMinimal builds graphics and sound; storyline can be added later.
	RecipeMinimal = Recipe{
		Name:  values.MustNewRecipeName("minimal"),
		Steps: []Step{StepGraphics, StepSound},
	}

	// RecipeFull builds every field.
	RecipeFull = Recipe{
		Name:  values.MustNewRecipeName("full"),
		Steps: []Step{StepGraphics, StepSound, StepStoryline},
	}
)

// UnknownRecipeError indicates a recipe name is not in the book.
type UnknownRecipeError struct {
	Recipe    string
	Available []string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe: %s (available: %v)", e.Recipe, e.Available)
}

// RecipeBook holds recipes by name.
type RecipeBook struct {
	recipes map[string]Recipe
}

// NewRecipeBook creates an empty recipe book.
func NewRecipeBook() *RecipeBook {
	return &RecipeBook{recipes: make(map[string]Recipe)}
}

// NewDefaultRecipeBook creates a book with the built-in recipes.
func NewDefaultRecipeBook() *RecipeBook {
	book := NewRecipeBook()
	book.recipes[RecipeMinimal.Name.String()] = RecipeMinimal
	book.recipes[RecipeFull.Name.String()] = RecipeFull
	return book
}

// Register adds a recipe. Names may be registered once.
func (b *RecipeBook) Register(recipe Recipe) error {
	validated, err := NewRecipe(recipe.Name, recipe.Steps)
	if err != nil {
		return err
	}
	if _, exists := b.recipes[validated.Name.String()]; exists {
		return fmt.Errorf("recipe %s is already registered", validated.Name)
	}
	b.recipes[validated.Name.String()] = validated
	return nil
}

// Get returns the named recipe.
func (b *RecipeBook) Get(name string) (Recipe, error) {
	rn, err := values.NewRecipeName(name)
	if err != nil {
		return Recipe{}, err
	}
	recipe, ok := b.recipes[rn.String()]
	if !ok {
		available := make([]string, 0, len(b.recipes))
		for _, r := range b.List() {
			available = append(available, r.Name.String())
		}
		return Recipe{}, &UnknownRecipeError{Recipe: rn.String(), Available: available}
	}
	return recipe, nil
}

// List returns all recipes sorted by name.
func (b *RecipeBook) List() []Recipe {
	out := make([]Recipe, 0, len(b.recipes))
	for _, r := range b.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name.String() < out[j].Name.String()
	})
	return out
}
