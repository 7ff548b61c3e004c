package catalogfile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"model-catalog-service/internal/config"
	"model-catalog-service/internal/core/domain"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// catalogFile is the on-disk layout of a catalog document.
type catalogFile struct {
	ModelCategories []domain.Category      `yaml:"model_categories"`
	ToolCategories  []domain.CategoryLabel `yaml:"tool_categories"`
	Tools           []domain.CatalogEntry  `yaml:"tools"`
}

// Load builds the catalog from cfg.Path, or from the built-in catalog when no
// path is set.
func Load(cfg *config.CatalogConfig) (*domain.Catalog, error) {
	if cfg.Path == "" {
		log.Debug("loading built-in catalog")
		return Parse(builtinCatalog)
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	log.WithField("path", cfg.Path).Info("loading catalog file")
	return Parse(data)
}

// Parse decodes a YAML catalog document. Unknown keys are rejected.
func Parse(data []byte) (*domain.Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	catalog, err := domain.NewCatalog(f.ModelCategories, f.ToolCategories, f.Tools)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return catalog, nil
}

// Encode renders entries as YAML for the catalog command.
func Encode(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return out, nil
}
