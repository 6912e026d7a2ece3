package values

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

func normalizeName(kind, name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("%s name cannot be empty", kind)
	}
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("invalid %s name %q: must match %s", kind, name, namePattern.String())
	}
	return name, nil
}

// ThemeName identifies a builder variant (e.g. "fantasy", "scifi").
// Names are lowercased and trimmed.
type ThemeName struct {
	value string
}

// NewThemeName creates a ThemeName with validation
func NewThemeName(name string) (ThemeName, error) {
	n, err := normalizeName("theme", name)
	if err != nil {
		return ThemeName{}, err
	}
	return ThemeName{value: n}, nil
}

// MustNewThemeName creates a ThemeName or panics
func MustNewThemeName(name string) ThemeName {
	tn, err := NewThemeName(name)
	if err != nil {
		panic(err)
	}
	return tn
}

// String returns the string representation
func (t ThemeName) String() string {
	return t.value
}

// IsEmpty returns true if this is the zero value
func (t ThemeName) IsEmpty() bool {
	return t.value == ""
}

// Equals checks if two theme names are equal
func (t ThemeName) Equals(other ThemeName) bool {
	return t.value == other.value
}

// MarshalJSON implements json.Marshaler
func (t ThemeName) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.value + `"`), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (t ThemeName) MarshalYAML() (interface{}, error) {
	return t.value, nil
}

// RecipeName identifies a director recipe (e.g. "minimal", "full").
type RecipeName struct {
	value string
}

// NewRecipeName creates a RecipeName with validation
func NewRecipeName(name string) (RecipeName, error) {
	n, err := normalizeName("recipe", name)
	if err != nil {
		return RecipeName{}, err
	}
	return RecipeName{value: n}, nil
}

// MustNewRecipeName creates a RecipeName or panics
func MustNewRecipeName(name string) RecipeName {
	rn, err := NewRecipeName(name)
	if err != nil {
		panic(err)
	}
	return rn
}

// String returns the string representation
func (r RecipeName) String() string {
	return r.value
}

// IsEmpty returns true if this is the zero value
func (r RecipeName) IsEmpty() bool {
	return r.value == ""
}

// Equals checks if two recipe names are equal
func (r RecipeName) Equals(other RecipeName) bool {
	return r.value == other.value
}

// MarshalJSON implements json.Marshaler
func (r RecipeName) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.value + `"`), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (r RecipeName) MarshalYAML() (interface{}, error) {
	return r.value, nil
}
