package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-catalog-service/internal/config"
	"model-catalog-service/internal/core/domain"
)

func TestLoad_BuiltinCatalog(t *testing.T) {
	catalog, err := Load(&config.CatalogConfig{})
	require.NoError(t, err)

	categories := catalog.ModelCategories()
	require.Len(t, categories, 21)
	assert.Equal(t, "generate-images", categories[0].ID)
	require.Len(t, categories[0].Entries, 1)

	flux := categories[0].Entries[0]
	assert.Equal(t, 1, flux.ID)
	assert.Equal(t, "Flux Pro Ultra", flux.Title)
	assert.Equal(t, "black-forest-labs/flux-1.1-pro-ultra", flux.Model)
	assert.Equal(t, domain.AccessPro, flux.Access)
	assert.Equal(t, "2.5s", flux.Metrics["speed"])
	assert.True(t, flux.HasTag(domain.FeaturedTag))

	labels := catalog.ToolCategories()
	require.NotEmpty(t, labels)
	assert.Equal(t, domain.CategoryTrending, labels[0].ID)

	tools := catalog.Tools()
	require.Len(t, tools, 10)
	assert.Equal(t, "/placeholder1.jpg", tools[0].Image)
}

func TestLoad_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
model_categories:
  - id: generate-text
    title: Generate text
    description: Text models
    models:
      - id: 7
        title: Tiny LM
        description: Small model
        model: org/tiny-lm
        metrics: {speed: "1s"}
        tags: [Featured]
        category: generate-text
        access: free
tool_categories:
  - id: trending
    label: Trending
tools: []
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	catalog, err := Load(&config.CatalogConfig{Path: path})
	require.NoError(t, err)

	models := catalog.Models()
	require.Len(t, models, 1)
	assert.Equal(t, "Tiny LM", models[0].Title)
	assert.Empty(t, catalog.Tools())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(&config.CatalogConfig{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, err, "read catalog file")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("model_categories: []\nextra: true\n"))
	assert.ErrorContains(t, err, "decode catalog")
}

func TestParse_CategoryMismatch(t *testing.T) {
	doc := `
model_categories:
  - id: generate-text
    title: Generate text
    models:
      - id: 1
        title: Wrong
        category: generate-images
        access: free
`
	_, err := Parse([]byte(doc))
	assert.ErrorContains(t, err, "validate catalog")
}

func TestParse_InvalidAccess(t *testing.T) {
	doc := `
model_categories:
  - id: generate-text
    title: Generate text
    models:
      - id: 1
        title: Bad tier
        category: generate-text
        access: enterprise
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, domain.ErrInvalidAccessTier)
}

func TestEncode(t *testing.T) {
	out, err := Encode([]domain.CatalogEntry{{ID: 1, Title: "A", Access: domain.AccessFree}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "title: A")
	assert.Contains(t, string(out), "access: free")
}
