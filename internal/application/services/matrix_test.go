package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	apperrors "github.com/gameforge-dev/gameforge/internal/application/errors"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
	"github.com/gameforge-dev/gameforge/internal/infrastructure/persistence/memory"
)

func newMatrixUseCase(t *testing.T) *MatrixUseCase {
	t.Helper()
	registry := builders.NewDefaultRegistry()
	require.NoError(t, registry.RegisterDefaults(values.MustNewThemeName("noir"), builders.Defaults{
		Graphics:  "Black-and-white film grain",
		Sound:     "Smoky jazz",
		Storyline: "A detective's last case",
	}))
	return NewMatrixUseCase(registry, domainservices.NewDefaultRecipeBook(), memory.NewBuildHistory(), 0, nil)
}

func TestMatrixUseCase_AllPairs(t *testing.T) {
	uc := newMatrixUseCase(t)

	resp, err := uc.Execute(context.Background(), dto.MatrixRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 6)

	got := make([]string, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		got = append(got, row.Theme+"/"+row.Recipe)
	}
	assert.Equal(t, []string{
		"fantasy/full", "fantasy/minimal",
		"noir/full", "noir/minimal",
		"scifi/full", "scifi/minimal",
	}, got)

	for _, row := range resp.Rows {
		if row.Recipe == "minimal" {
			assert.False(t, row.Game.Storyline.IsSet(), row.Theme)
		} else {
			assert.True(t, row.Game.Storyline.IsSet(), row.Theme)
		}
	}
}

func TestMatrixUseCase_Selection(t *testing.T) {
	uc := newMatrixUseCase(t)

	resp, err := uc.Execute(context.Background(), dto.MatrixRequest{
		Themes:  []string{"scifi", "SCIFI"},
		Recipes: []string{"minimal"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, builders.SciFiGraphics, resp.Rows[0].Game.Graphics.Value())
}

func TestMatrixUseCase_Filter(t *testing.T) {
	uc := newMatrixUseCase(t)

	resp, err := uc.Execute(context.Background(), dto.MatrixRequest{
		FilterExpression: `recipe == "full" && theme != "noir"`,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "fantasy", resp.Rows[0].Theme)
	assert.Equal(t, "scifi", resp.Rows[1].Theme)

	resp, err = uc.Execute(context.Background(), dto.MatrixRequest{
		FilterExpression: `"storyline" not in fields`,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3)
}

func TestMatrixUseCase_InvalidInput(t *testing.T) {
	uc := newMatrixUseCase(t)

	tests := []struct {
		name  string
		req   dto.MatrixRequest
		field string
	}{
		{"bad expression", dto.MatrixRequest{FilterExpression: "theme =="}, "filter"},
		{"non-bool expression", dto.MatrixRequest{FilterExpression: "theme"}, "filter"},
		{"unknown theme", dto.MatrixRequest{Themes: []string{"western"}}, "themes"},
		{"unknown recipe", dto.MatrixRequest{Recipes: []string{"deluxe"}}, "recipes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestMatrixUseCase_CancelledContext(t *testing.T) {
	uc := newMatrixUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, dto.MatrixRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatrixUseCase_LimitedConcurrency(t *testing.T) {
	uc := NewMatrixUseCase(builders.NewDefaultRegistry(), domainservices.NewDefaultRecipeBook(), nil, 1, nil)

	resp, err := uc.Execute(context.Background(), dto.MatrixRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 4)
}

func TestCatalogService_Describe(t *testing.T) {
	svc := NewCatalogService(builders.NewDefaultRegistry(), domainservices.NewDefaultRecipeBook())

	resp, err := svc.Describe()
	require.NoError(t, err)
	require.Len(t, resp.Themes, 2)
	assert.Equal(t, "fantasy", resp.Themes[0].Name)
	assert.Equal(t, builders.FantasySound, resp.Themes[0].Defaults.Sound)
	require.Len(t, resp.Recipes, 2)
	assert.Equal(t, "full", resp.Recipes[0].Name.String())
}

func TestMatrixUseCase_RecordsEveryCell(t *testing.T) {
	history := memory.NewBuildHistory()
	uc := NewMatrixUseCase(builders.NewDefaultRegistry(), domainservices.NewDefaultRecipeBook(), history, 0, nil)

	resp, err := uc.Execute(context.Background(), dto.MatrixRequest{FilterExpression: `recipe == "full"`})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, 4, resp.Recorded, "filtered-out cells are still recorded")

	scifi, err := history.FindByTheme(context.Background(), builders.ThemeSciFi, 0)
	require.NoError(t, err)
	require.Len(t, scifi, 2)

	var found bool
	for _, r := range scifi {
		if r.ID.Equals(resp.Rows[1].ID) {
			found = true
			assert.True(t, r.Game.Equals(resp.Rows[1].Game))
			assert.Equal(t, "full", r.Recipe.String())
		}
	}
	assert.True(t, found, "row ID refers to a recorded build")

	again, err := uc.Execute(context.Background(), dto.MatrixRequest{Themes: []string{"fantasy"}})
	require.NoError(t, err)
	assert.Equal(t, 6, again.Recorded)
}
