// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// BuildHistory records finished builds.
type BuildHistory interface {
	// Save records a build.
	Save(ctx context.Context, record *entities.BuildRecord) error

	// FindByTheme returns recent builds of a theme, newest first.
	FindByTheme(ctx context.Context, theme values.ThemeName, limit int) ([]*entities.BuildRecord, error)

	// List returns recent builds, newest first.
	List(ctx context.Context, limit int) ([]*entities.BuildRecord, error)
}

// OutputFormatter formats use case responses.
type OutputFormatter interface {
	FormatGame(resp *dto.BuildGameResponse) error
	FormatMatrix(resp *dto.MatrixResponse) error
	FormatCatalog(resp *dto.CatalogResponse) error
}

// FormatterOptions configures formatter creation.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
