package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(
		[]Category{
			{ID: "generate-images", Title: "Generate images", Entries: []CatalogEntry{
				{ID: 1, Title: "Flux", Category: "generate-images", Access: AccessPro, Tags: []string{"Featured"}, Metrics: map[string]string{"speed": "2.5s"}},
			}},
			{ID: "generate-text", Title: "Generate text", Entries: []CatalogEntry{
				{ID: 2, Title: "Claude", Category: "generate-text", Access: AccessPro},
			}},
		},
		[]CategoryLabel{{ID: "trending", Label: "Trending"}, {ID: "generate-images", Label: "Generate images"}},
		[]CatalogEntry{{ID: 1, Title: "Image tool", Category: "generate-images", Access: AccessFree}},
	)
	require.NoError(t, err)
	return c
}

func TestNewCatalog_Valid(t *testing.T) {
	c := sampleCatalog(t)

	assert.Len(t, c.ModelCategories(), 2)
	assert.Equal(t, []int{1, 2}, ids(c.Models()))
	assert.Len(t, c.ToolCategories(), 2)
	assert.Len(t, c.Tools(), 1)
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		labels     []CategoryLabel
		tools      []CatalogEntry
		wantErr    string
	}{
		{
			name: "duplicate category",
			categories: []Category{
				{ID: "a", Title: "A"},
				{ID: "a", Title: "A again"},
			},
			wantErr: "duplicate model category",
		},
		{
			name: "duplicate entry id",
			categories: []Category{
				{ID: "a", Entries: []CatalogEntry{{ID: 1, Title: "x", Category: "a", Access: AccessFree}}},
				{ID: "b", Entries: []CatalogEntry{{ID: 1, Title: "y", Category: "b", Access: AccessFree}}},
			},
			wantErr: "duplicate entry id 1",
		},
		{
			name: "category mismatch",
			categories: []Category{
				{ID: "a", Entries: []CatalogEntry{{ID: 1, Title: "x", Category: "b", Access: AccessFree}}},
			},
			wantErr: "does not match enclosing category",
		},
		{
			name: "missing title",
			categories: []Category{
				{ID: "a", Entries: []CatalogEntry{{ID: 1, Category: "a", Access: AccessFree}}},
			},
			wantErr: "has no title",
		},
		{
			name:    "unknown tool category",
			labels:  []CategoryLabel{{ID: "trending"}},
			tools:   []CatalogEntry{{ID: 1, Title: "t", Category: "nope", Access: AccessFree}},
			wantErr: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.categories, tt.labels, tt.tools)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := sampleCatalog(t)

	models := c.Models()
	models[0].Tags[0] = "mutated"
	models[0].Metrics["speed"] = "0s"
	models[0].Title = "changed"

	fresh := c.Models()
	assert.Equal(t, "Flux", fresh[0].Title)
	assert.Equal(t, []string{"Featured"}, fresh[0].Tags)
	assert.Equal(t, "2.5s", fresh[0].Metrics["speed"])

	cats := c.ModelCategories()
	cats[0].Entries[0].Title = "changed"
	assert.Equal(t, "Flux", c.ModelCategories()[0].Entries[0].Title)
}

func TestParseAccessTier(t *testing.T) {
	tier, err := ParseAccessTier(" PRO ")
	require.NoError(t, err)
	assert.Equal(t, AccessPro, tier)

	_, err = ParseAccessTier("gold")
	assert.ErrorIs(t, err, ErrInvalidAccessTier)
}

func TestParseAccessTiers(t *testing.T) {
	tiers, err := ParseAccessTiers("free, ,pro")
	require.NoError(t, err)
	assert.Equal(t, []AccessTier{AccessFree, AccessPro}, tiers)

	tiers, err = ParseAccessTiers("")
	require.NoError(t, err)
	assert.Empty(t, tiers)

	_, err = ParseAccessTiers("free,gold")
	assert.ErrorIs(t, err, ErrInvalidAccessTier)
}
