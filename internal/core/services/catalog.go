package services

import (
	"strings"

	"model-catalog-service/internal/core/domain"
)

// CatalogService answers browse queries over the static catalog.
type CatalogService struct {
	catalog *domain.Catalog
}

func NewCatalogService(catalog *domain.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ModelCategories() []domain.Category {
	return s.catalog.ModelCategories()
}

func (s *CatalogService) ToolCategories() []domain.CategoryLabel {
	return s.catalog.ToolCategories()
}

// ListModels filters model entries. The model page opens on "all".
func (s *CatalogService) ListModels(state domain.FilterState) []domain.CatalogEntry {
	if state.ActiveCategory == "" {
		state.ActiveCategory = domain.CategoryAll
	}
	return narrow(s.catalog.Models(), state)
}

// ListTools filters tool entries. The tool page opens on "trending".
func (s *CatalogService) ListTools(state domain.FilterState) []domain.CatalogEntry {
	if state.ActiveCategory == "" {
		state.ActiveCategory = domain.CategoryTrending
	}
	return narrow(s.catalog.Tools(), state)
}

func (s *CatalogService) FindModelEntry(id int) (*domain.CatalogEntry, error) {
	for _, e := range s.catalog.Models() {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrCatalogEntryNotFound
}

// narrow applies the filter engine, then the access-tier selection when one
// is made. A search query bypasses the tier selection like it bypasses the
// category.
func narrow(entries []domain.CatalogEntry, state domain.FilterState) []domain.CatalogEntry {
	out := domain.Apply(entries, state)
	if strings.TrimSpace(state.SearchQuery) != "" {
		return out
	}
	return domain.FilterByAccess(out, state.AccessTiers)
}
