package services

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"model-catalog-service/internal/core/domain"
	"model-catalog-service/internal/core/ports/output"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// ModelDetailService resolves registry identifiers into normalized records.
type ModelDetailService struct {
	registry ports.RegistryClient
	now      func() time.Time
}

func NewModelDetailService(registry ports.RegistryClient) *ModelDetailService {
	return &ModelDetailService{registry: registry, now: time.Now}
}

func (s *ModelDetailService) GetRegistryModel(ctx context.Context, modelID string) (*domain.ModelDetail, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, domain.ErrMissingModelID
	}

	bundle, err := s.registry.FetchModelBundle(ctx, modelID)
	if err != nil {
		return nil, err
	}

	if bundle.Documentation.Degraded() {
		log.WithError(bundle.Documentation.Err).
			WithField("model_id", modelID).
			Warn("registry documentation unavailable, continuing without it")
	}

	detail := domain.Normalize(bundle.Metadata, modelID, bundle.Documentation.Get(), s.now())
	if detail.TimestampsDefaulted {
		log.WithField("model_id", modelID).Debug("registry record has no timestamps, defaulted to now")
	}
	return detail, nil
}

func (s *ModelDetailService) SearchRegistry(ctx context.Context, query string, limit int) ([]*domain.ModelDetail, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.ModelDetail{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	docs, err := s.registry.SearchModels(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := make([]*domain.ModelDetail, 0, len(docs))
	for _, doc := range docs {
		results = append(results, domain.Normalize(doc, "", "", now))
	}
	return results, nil
}
