// Package container provides dependency injection for the application.
package container

import (
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/gameforge-dev/gameforge/internal/application/errors"
	"github.com/gameforge-dev/gameforge/internal/application/ports"
	"github.com/gameforge-dev/gameforge/internal/application/services"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/infrastructure/output"
	"github.com/gameforge-dev/gameforge/internal/infrastructure/persistence/memory"
	"github.com/gameforge-dev/gameforge/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	registry         *builders.Registry
	recipes          *domainservices.RecipeBook
	history          ports.BuildHistory
	formatterFactory ports.OutputFormatterFactory
	buildGame        *services.BuildGameUseCase
	matrix           *services.MatrixUseCase
	catalog          *services.CatalogService
	catalogCfg       *system.Config
	logger           *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// CatalogPath is the catalog file. Empty means ~/.gameforge/catalog.yaml.
	CatalogPath string

	// MatrixConcurrency bounds parallel theme builds (0 = one per theme).
	MatrixConcurrency int
}

// DefaultCatalogPath returns ~/.gameforge/catalog.yaml, or "" when the home
// directory cannot be determined.
func DefaultCatalogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".gameforge", "catalog.yaml")
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	catalogPath := opts.CatalogPath
	if catalogPath == "" {
		catalogPath = DefaultCatalogPath()
	}

	catalogCfg, err := system.NewConfigLoader().Load(catalogPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("catalog", "failed to load "+catalogPath, err)
	}

	registry := builders.NewDefaultRegistry()
	recipes := domainservices.NewDefaultRecipeBook()
	if err := catalogCfg.Apply(registry, recipes); err != nil {
		return nil, apperrors.NewConfigurationError("catalog", "failed to register catalog entries", err)
	}

	opts.Logger.Debug("catalog loaded",
		"path", catalogPath,
		"version", catalogCfg.Version,
		"themes", len(catalogCfg.Themes),
		"recipes", len(catalogCfg.Recipes))

	history := memory.NewBuildHistory()

	return &Container{
		registry:         registry,
		recipes:          recipes,
		history:          history,
		formatterFactory: output.NewFormatterFactory(),
		buildGame:        services.NewBuildGameUseCase(registry, recipes, history, opts.Logger),
		matrix:           services.NewMatrixUseCase(registry, recipes, history, opts.MatrixConcurrency, opts.Logger),
		catalog:          services.NewCatalogService(registry, recipes),
		catalogCfg:       catalogCfg,
		logger:           opts.Logger,
	}, nil
}

// BuildGameUseCase returns the build game use case.
func (c *Container) BuildGameUseCase() *services.BuildGameUseCase {
	return c.buildGame
}

// MatrixUseCase returns the matrix use case.
func (c *Container) MatrixUseCase() *services.MatrixUseCase {
	return c.matrix
}

// CatalogService returns the catalog service.
func (c *Container) CatalogService() *services.CatalogService {
	return c.catalog
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// History returns the build history.
func (c *Container) History() ports.BuildHistory {
	return c.history
}

// Registry returns the theme registry.
func (c *Container) Registry() *builders.Registry {
	return c.registry
}

// Recipes returns the recipe book.
func (c *Container) Recipes() *domainservices.RecipeBook {
	return c.recipes
}

// CatalogConfig returns the loaded catalog.
func (c *Container) CatalogConfig() *system.Config {
	return c.catalogCfg
}

// Logger returns the container's logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
