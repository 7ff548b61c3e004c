package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-catalog-service/internal/core/domain"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	catalog, err := domain.NewCatalog(
		[]domain.Category{
			{ID: "generate-images", Title: "Generate images", Entries: []domain.CatalogEntry{
				{ID: 1, Title: "Flux Pro Ultra", Model: "black-forest-labs/flux-1.1-pro-ultra", Tags: []string{"Featured"}, Category: "generate-images", Access: domain.AccessPro},
			}},
			{ID: "transcribe-speech", Title: "Transcribe speech", Entries: []domain.CatalogEntry{
				{ID: 4, Title: "WhisperX", Model: "victor-upmeet/whisperx", Category: "transcribe-speech", Access: domain.AccessFree},
			}},
		},
		[]domain.CategoryLabel{{ID: "trending", Label: "Trending"}, {ID: "generate-images", Label: "Generate images"}},
		[]domain.CatalogEntry{
			{ID: 1, Title: "Flux Pro Ultra", Model: "black-forest-labs/flux-1.1-pro-ultra", Tags: []string{"Featured"}, Category: "generate-images", Access: domain.AccessPro},
			{ID: 2, Title: "Imagen-3", Model: "google/imagen-3", Category: "generate-images", Access: domain.AccessFree},
		},
	)
	require.NoError(t, err)
	return NewCatalogService(catalog)
}

func entryIDs(entries []domain.CatalogEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestCatalogService_ListModels_DefaultsToAll(t *testing.T) {
	svc := newCatalogService(t)
	assert.Equal(t, []int{1, 4}, entryIDs(svc.ListModels(domain.FilterState{})))
}

func TestCatalogService_ListTools_DefaultsToTrending(t *testing.T) {
	svc := newCatalogService(t)
	assert.Equal(t, []int{1}, entryIDs(svc.ListTools(domain.FilterState{})))
}

func TestCatalogService_ListModels_AccessTiers(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.ListModels(domain.FilterState{AccessTiers: []domain.AccessTier{domain.AccessFree}})
	assert.Equal(t, []int{4}, entryIDs(got))
}

func TestCatalogService_ListModels_SearchBypassesAccess(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.ListModels(domain.FilterState{SearchQuery: "flux", AccessTiers: []domain.AccessTier{domain.AccessFree}})
	assert.Equal(t, []int{1}, entryIDs(got))
}

func TestCatalogService_ListTools_Category(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.ListTools(domain.FilterState{ActiveCategory: "generate-images"})
	assert.Equal(t, []int{1, 2}, entryIDs(got))
}

func TestCatalogService_FindModelEntry(t *testing.T) {
	svc := newCatalogService(t)

	entry, err := svc.FindModelEntry(4)
	require.NoError(t, err)
	assert.Equal(t, "WhisperX", entry.Title)

	_, err = svc.FindModelEntry(99)
	assert.ErrorIs(t, err, domain.ErrCatalogEntryNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	svc := newCatalogService(t)

	assert.Len(t, svc.ModelCategories(), 2)
	assert.Equal(t, "trending", svc.ToolCategories()[0].ID)
}
