package ports

import (
	"context"

	"model-catalog-service/internal/core/domain"
)

// ModelBundle is the raw registry payload for one model. Metadata is required;
// Documentation is best-effort and never fails the bundle.
type ModelBundle struct {
	Metadata      domain.Document
	Documentation domain.Enrichment[string]
}

// RegistryClient defines the contract for the third-party model registry.
type RegistryClient interface {
	// FetchModelBundle retrieves metadata and documentation for an
	// owner/name identifier in parallel.
	FetchModelBundle(ctx context.Context, modelID string) (*ModelBundle, error)

	// SearchModels runs a free-text registry search.
	SearchModels(ctx context.Context, query string, limit int) ([]domain.Document, error)
}
