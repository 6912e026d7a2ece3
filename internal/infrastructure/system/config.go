// Package system provides infrastructure for the catalog file.
// The catalog (~/.gameforge/catalog.yaml) declares additional themes and
// recipes on top of the built-in ones.
package system

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// CurrentVersion is the catalog format version written by this release.
const CurrentVersion = "1.0.0"

// SupportedVersions is the constraint a catalog version must satisfy.
const SupportedVersions = "^1"

//go:embed schema/catalog.schema.json
var catalogSchema []byte

const catalogSchemaURL = "catalog.schema.json"

// Config represents the catalog file.
type Config struct {
	Version string         `yaml:"version"`
	Themes  []ThemeConfig  `yaml:"themes"`
	Recipes []RecipeConfig `yaml:"recipes"`
}

// ThemeConfig declares a builder variant and its fixed defaults.
type ThemeConfig struct {
	Name      string `yaml:"name"`
	Graphics  string `yaml:"graphics"`
	Sound     string `yaml:"sound"`
	Storyline string `yaml:"storyline"`
}

// RecipeConfig declares a recipe as an ordered list of fields.
type RecipeConfig struct {
	Name  string   `yaml:"name"`
	Steps []string `yaml:"steps"`
}

// ConfigLoader loads the catalog from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new catalog loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config declaring nothing beyond the built-ins.
// This is used when no catalog file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Themes:  []ThemeConfig{},
		Recipes: []RecipeConfig{},
	}
}

// Load loads the catalog from the specified path.
// If the file does not exist, returns DefaultConfig().
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is the user-provided catalog file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse validates and decodes catalog YAML.
func Parse(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultConfig(), nil
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if config.Version == "" {
		config.Version = CurrentVersion
	}
	if err := checkVersion(config.Version); err != nil {
		return nil, err
	}

	return &config, nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid catalog version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported catalog version %s (supported: %s)", v, SupportedVersions)
	}
	return nil
}

func validateSchema(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(catalogSchemaURL, bytes.NewReader(catalogSchema)); err != nil {
		return fmt.Errorf("failed to add catalog schema: %w", err)
	}
	schema, err := compiler.Compile(catalogSchemaURL)
	if err != nil {
		return fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError formats a JSON Schema validation error into a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}

	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("catalog validation failed")
	}

	return fmt.Errorf("catalog validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}

// Apply registers the catalog's themes and recipes.
// Names that collide with already registered ones are rejected.
func (c *Config) Apply(registry *builders.Registry, book *domainservices.RecipeBook) error {
	for _, theme := range c.Themes {
		name, err := values.NewThemeName(theme.Name)
		if err != nil {
			return fmt.Errorf("catalog theme: %w", err)
		}
		if err := registry.RegisterDefaults(name, builders.Defaults{
			Graphics:  theme.Graphics,
			Sound:     theme.Sound,
			Storyline: theme.Storyline,
		}); err != nil {
			return fmt.Errorf("catalog theme: %w", err)
		}
	}

	for _, recipe := range c.Recipes {
		name, err := values.NewRecipeName(recipe.Name)
		if err != nil {
			return fmt.Errorf("catalog recipe: %w", err)
		}
		steps := make([]domainservices.Step, 0, len(recipe.Steps))
		for _, s := range recipe.Steps {
			step, err := domainservices.ParseStep(s)
			if err != nil {
				return fmt.Errorf("catalog recipe %s: %w", name, err)
			}
			steps = append(steps, step)
		}
		if err := book.Register(domainservices.Recipe{Name: name, Steps: steps}); err != nil {
			return fmt.Errorf("catalog recipe: %w", err)
		}
	}
	return nil
}
