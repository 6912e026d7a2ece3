package builders

import (
	"fmt"
	"sort"

	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Factory creates a fresh, empty builder.
type Factory func() ThemedGameBuilder

// UnknownThemeError indicates no builder is registered under a theme.
type UnknownThemeError struct {
	Theme     string
	Available []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme: %s (available: %v)", e.Theme, e.Available)
}

// Registry maps theme names to builder factories.
// Every call to New returns a distinct builder, so callers never share
// in-progress state.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry creates a registry holding the built-in variants.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.factories[ThemeFantasy.String()] = func() ThemedGameBuilder { return NewFantasyBuilder() }
	r.factories[ThemeSciFi.String()] = func() ThemedGameBuilder { return NewSciFiBuilder() }
	return r
}

// Register adds a factory under name. Names may be registered once.
func (r *Registry) Register(name values.ThemeName, factory Factory) error {
	if name.IsEmpty() {
		return fmt.Errorf("theme name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("theme %s: factory cannot be nil", name)
	}
	if _, exists := r.factories[name.String()]; exists {
		return fmt.Errorf("theme %s is already registered", name)
	}
	r.factories[name.String()] = factory
	return nil
}

// RegisterDefaults registers a ThemedBuilder with fixed defaults.
func (r *Registry) RegisterDefaults(name values.ThemeName, defaults Defaults) error {
	return r.Register(name, func() ThemedGameBuilder {
		return NewThemedBuilder(name, defaults)
	})
}

// New returns a new builder for the named theme.
func (r *Registry) New(name string) (ThemedGameBuilder, error) {
	theme, err := values.NewThemeName(name)
	if err != nil {
		return nil, err
	}
	factory, ok := r.factories[theme.String()]
	if !ok {
		return nil, &UnknownThemeError{Theme: theme.String(), Available: r.names()}
	}
	b := factory()
	if b == nil {
		return nil, fmt.Errorf("theme %s: factory returned no builder", theme)
	}
	return b, nil
}

// Has reports whether a theme is registered.
func (r *Registry) Has(name values.ThemeName) bool {
	_, ok := r.factories[name.String()]
	return ok
}

// Names returns registered theme names in sorted order.
func (r *Registry) Names() []values.ThemeName {
	names := r.names()
	out := make([]values.ThemeName, 0, len(names))
	for _, n := range names {
		out = append(out, values.MustNewThemeName(n))
	}
	return out
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
