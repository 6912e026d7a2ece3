// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"encoding/json"
	"fmt"
)

// NonePlaceholder is rendered in place of an absent Text.
const NonePlaceholder = "(none)"

// Text is an optional piece of text.
// An explicitly supplied empty string is present; only None() is absent.
type Text struct {
	value string
	set   bool
}

// Some returns a present Text holding s verbatim.
func Some(s string) Text {
	return Text{value: s, set: true}
}

// None returns an absent Text.
func None() Text {
	return Text{}
}

// FromPtr converts a nillable string into a Text.
func FromPtr(s *string) Text {
	if s == nil {
		return None()
	}
	return Some(*s)
}

// IsSet reports whether a value is present.
func (t Text) IsSet() bool {
	return t.set
}

// Value returns the held string, or "" when absent.
func (t Text) Value() string {
	return t.value
}

// OrElse returns the held string, or fallback when absent.
func (t Text) OrElse(fallback string) string {
	if !t.set {
		return fallback
	}
	return t.value
}

// Equals checks if two texts are equal
func (t Text) Equals(other Text) bool {
	return t.set == other.set && t.value == other.value
}

// String returns the value or NonePlaceholder
func (t Text) String() string {
	return t.OrElse(NonePlaceholder)
}

// MarshalJSON implements json.Marshaler
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = None()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid text JSON: %w", err)
	}
	*t = Some(s)
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (t Text) MarshalYAML() (interface{}, error) {
	if !t.set {
		return nil, nil
	}
	return t.value, nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler
func (t *Text) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = None()
	case string:
		*t = Some(v)
	default:
		return fmt.Errorf("invalid text YAML: expected string, got %T", raw)
	}
	return nil
}
