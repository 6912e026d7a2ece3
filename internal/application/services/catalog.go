package services

import (
	"github.com/gameforge-dev/gameforge/internal/application/dto"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
)

// CatalogService describes the registered themes and recipes.
type CatalogService struct {
	registry *builders.Registry
	recipes  *domainservices.RecipeBook
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(registry *builders.Registry, recipes *domainservices.RecipeBook) *CatalogService {
	return &CatalogService{registry: registry, recipes: recipes}
}

// Describe lists themes with their defaults, and recipes with their steps.
func (s *CatalogService) Describe() (*dto.CatalogResponse, error) {
	names := s.registry.Names()
	themes := make([]dto.ThemeInfo, 0, len(names))
	for _, name := range names {
		b, err := s.registry.New(name.String())
		if err != nil {
			return nil, err
		}
		themes = append(themes, dto.ThemeInfo{
			Name:     name.String(),
			Defaults: b.Defaults(),
		})
	}

	return &dto.CatalogResponse{
		Themes:  themes,
		Recipes: s.recipes.List(),
	}, nil
}
