// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	apperrors "github.com/gameforge-dev/gameforge/internal/application/errors"
	"github.com/gameforge-dev/gameforge/internal/application/ports"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// BuildGameUseCase builds a single game from a theme, an optional recipe and
// optional overrides, and records the result.
type BuildGameUseCase struct {
	registry *builders.Registry
	recipes  *domainservices.RecipeBook
	history  ports.BuildHistory
	logger   *slog.Logger
}

// NewBuildGameUseCase creates a new build game use case.
func NewBuildGameUseCase(
	registry *builders.Registry,
	recipes *domainservices.RecipeBook,
	history ports.BuildHistory,
	logger *slog.Logger,
) *BuildGameUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &BuildGameUseCase{
		registry: registry,
		recipes:  recipes,
		history:  history,
		logger:   logger,
	}
}

// Execute builds the requested game, or Count identical games on one reused
// builder. Batches are read back from the history, newest first.
func (uc *BuildGameUseCase) Execute(ctx context.Context, req dto.BuildGameRequest) (*dto.BuildGameResponse, error) {
	startTime := time.Now()

	builder, err := uc.registry.New(req.Theme)
	if err != nil {
		return nil, apperrors.NewValidationError("theme", err.Error())
	}

	var recipe *domainservices.Recipe
	if req.Recipe != "" {
		r, err := uc.recipes.Get(req.Recipe)
		if err != nil {
			return nil, apperrors.NewValidationError("recipe", err.Error())
		}
		recipe = &r
	}

	defaults := make([]domainservices.Step, 0, len(req.DefaultFields))
	for _, field := range req.DefaultFields {
		step, err := domainservices.ParseStep(field)
		if err != nil {
			return nil, apperrors.NewValidationError("defaults", err.Error())
		}
		defaults = append(defaults, step)
	}

	count := req.Count
	if count < 1 {
		count = 1
	}

	director := domainservices.NewDirectorWithBuilder(builder)
	built := make([]*entities.BuildRecord, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := uc.buildOne(ctx, builder, director, recipe, defaults, req.Overrides)
		if err != nil {
			return nil, err
		}
		built = append(built, record)
	}

	resp := &dto.BuildGameResponse{Record: built[len(built)-1]}
	if count > 1 {
		batch, err := uc.readBatch(ctx, builder.Theme(), built)
		if err != nil {
			return nil, err
		}
		resp.Batch = batch
	}

	resp.Metadata = dto.ResponseMetadata{
		ProcessedAt: time.Now(),
		Duration:    time.Since(startTime),
	}
	return resp, nil
}

func (uc *BuildGameUseCase) buildOne(
	ctx context.Context,
	builder builders.ThemedGameBuilder,
	director *domainservices.Director,
	recipe *domainservices.Recipe,
	defaults []domainservices.Step,
	overrides entities.Overrides,
) (*entities.BuildRecord, error) {
	var recipeName values.RecipeName
	if recipe != nil {
		if err := director.Construct(*recipe); err != nil {
			return nil, err
		}
		recipeName = recipe.Name
		uc.logger.Debug("recipe applied", "theme", builder.Theme(), "recipe", recipe.Name)
	}

	for _, step := range defaults {
		step.Apply(builder)
	}

	applyOverrides(builder, overrides)

	game := builder.GetGame()
	record := entities.NewBuildRecord(builder.Theme(), recipeName, overrides, game)

	if uc.history != nil {
		if err := uc.history.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record build: %w", err)
		}
	}

	uc.logger.Info("game built",
		"id", record.ID,
		"theme", record.Theme,
		"recipe", record.Recipe,
		"fields", game.SetFields())

	return record, nil
}

// readBatch returns the batch newest first. Without a history the in-memory
// slice is reversed instead.
func (uc *BuildGameUseCase) readBatch(
	ctx context.Context,
	theme values.ThemeName,
	built []*entities.BuildRecord,
) ([]*entities.BuildRecord, error) {
	if uc.history == nil {
		batch := make([]*entities.BuildRecord, 0, len(built))
		for i := len(built) - 1; i >= 0; i-- {
			batch = append(batch, built[i])
		}
		return batch, nil
	}

	batch, err := uc.history.FindByTheme(ctx, theme, len(built))
	if err != nil {
		return nil, fmt.Errorf("failed to read build history: %w", err)
	}
	return batch, nil
}

// applyOverrides calls a setter only for overrides the caller supplied.
// Absent overrides leave the field as the recipe (or nothing) left it.
func applyOverrides(b builders.GameBuilder, o entities.Overrides) {
	if o.Graphics.IsSet() {
		b.SetGraphics(o.Graphics)
	}
	if o.Sound.IsSet() {
		b.SetSound(o.Sound)
	}
	if o.Storyline.IsSet() {
		b.SetStoryline(o.Storyline)
	}
}
