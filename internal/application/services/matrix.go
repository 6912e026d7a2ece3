package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/sync/errgroup"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	apperrors "github.com/gameforge-dev/gameforge/internal/application/errors"
	"github.com/gameforge-dev/gameforge/internal/application/ports"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
)

// MatrixUseCase builds every selected theme × recipe pair.
// Each theme is built in its own goroutine with its own builder and
// director; builders are never shared between goroutines. Every cell is
// recorded in the history, including cells the filter drops.
type MatrixUseCase struct {
	registry    *builders.Registry
	recipes     *domainservices.RecipeBook
	history     ports.BuildHistory
	logger      *slog.Logger
	concurrency int
}

// NewMatrixUseCase creates a new matrix use case.
// concurrency <= 0 means one goroutine per theme.
func NewMatrixUseCase(
	registry *builders.Registry,
	recipes *domainservices.RecipeBook,
	history ports.BuildHistory,
	concurrency int,
	logger *slog.Logger,
) *MatrixUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &MatrixUseCase{
		registry:    registry,
		recipes:     recipes,
		history:     history,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Execute builds the matrix and applies the optional filter.
func (uc *MatrixUseCase) Execute(ctx context.Context, req dto.MatrixRequest) (*dto.MatrixResponse, error) {
	startTime := time.Now()

	program, err := compileRowFilter(req.FilterExpression)
	if err != nil {
		return nil, err
	}

	themes, err := uc.selectThemes(req.Themes)
	if err != nil {
		return nil, err
	}
	recipes, err := uc.selectRecipes(req.Recipes)
	if err != nil {
		return nil, err
	}

	results := make([][]dto.MatrixRow, len(themes))

	g, gCtx := errgroup.WithContext(ctx)
	if uc.concurrency > 0 {
		g.SetLimit(uc.concurrency)
	}

	for i, theme := range themes {
		g.Go(func() error {
			rows, err := uc.buildTheme(gCtx, theme, recipes)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]dto.MatrixRow, 0)
	for _, themeRows := range results {
		for _, row := range themeRows {
			keep, err := matchRow(program, row)
			if err != nil {
				return nil, err
			}
			if keep {
				rows = append(rows, row)
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Theme != rows[j].Theme {
			return rows[i].Theme < rows[j].Theme
		}
		return rows[i].Recipe < rows[j].Recipe
	})

	recorded := 0
	if uc.history != nil {
		all, err := uc.history.List(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to read build history: %w", err)
		}
		recorded = len(all)
	}

	uc.logger.Info("matrix built", "themes", len(themes), "recipes", len(recipes), "rows", len(rows))

	return &dto.MatrixResponse{
		Rows:     rows,
		Recorded: recorded,
		Metadata: dto.ResponseMetadata{
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}

func (uc *MatrixUseCase) buildTheme(ctx context.Context, theme string, recipes []domainservices.Recipe) ([]dto.MatrixRow, error) {
	builder, err := uc.registry.New(theme)
	if err != nil {
		return nil, err
	}
	director := domainservices.NewDirectorWithBuilder(builder)

	rows := make([]dto.MatrixRow, 0, len(recipes))
	for _, recipe := range recipes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := director.Construct(recipe); err != nil {
			return nil, err
		}
		game := builder.GetGame()
		record := entities.NewBuildRecord(builder.Theme(), recipe.Name, entities.Overrides{}, game)
		if uc.history != nil {
			if err := uc.history.Save(ctx, record); err != nil {
				return nil, fmt.Errorf("failed to record build: %w", err)
			}
		}
		rows = append(rows, dto.MatrixRow{
			ID:     record.ID,
			Theme:  theme,
			Recipe: recipe.Name.String(),
			Game:   game,
		})
		uc.logger.Debug("matrix cell built", "theme", theme, "recipe", recipe.Name)
	}
	return rows, nil
}

func (uc *MatrixUseCase) selectThemes(requested []string) ([]string, error) {
	if len(requested) == 0 {
		names := uc.registry.Names()
		out := make([]string, 0, len(names))
		for _, n := range names {
			out = append(out, n.String())
		}
		return out, nil
	}

	out := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, name := range requested {
		b, err := uc.registry.New(name)
		if err != nil {
			return nil, apperrors.NewValidationError("themes", err.Error())
		}
		theme := b.Theme().String()
		if !seen[theme] {
			seen[theme] = true
			out = append(out, theme)
		}
	}
	return out, nil
}

func (uc *MatrixUseCase) selectRecipes(requested []string) ([]domainservices.Recipe, error) {
	if len(requested) == 0 {
		return uc.recipes.List(), nil
	}

	out := make([]domainservices.Recipe, 0, len(requested))
	for _, name := range requested {
		r, err := uc.recipes.Get(name)
		if err != nil {
			return nil, apperrors.NewValidationError("recipes", err.Error())
		}
		out = append(out, r)
	}
	return out, nil
}

// rowEnv is the environment exposed to filter expressions.
func rowEnv(row dto.MatrixRow) map[string]interface{} {
	return map[string]interface{}{
		"theme":     row.Theme,
		"recipe":    row.Recipe,
		"graphics":  row.Game.Graphics.Value(),
		"sound":     row.Game.Sound.Value(),
		"storyline": row.Game.Storyline.Value(),
		"fields":    row.Game.SetFields(),
	}
}

func compileRowFilter(expression string) (*vm.Program, error) {
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(rowEnv(dto.MatrixRow{Game: entities.Game{}})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, apperrors.NewValidationError("filter", "invalid filter expression", err.Error())
	}
	return program, nil
}

func matchRow(program *vm.Program, row dto.MatrixRow) (bool, error) {
	if program == nil {
		return true, nil
	}

	out, err := expr.Run(program, rowEnv(row))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter for %s/%s: %w", row.Theme, row.Recipe, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, expected bool", out)
	}
	return keep, nil
}
