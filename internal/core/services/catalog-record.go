package services

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"model-catalog-service/internal/core/domain"
	"model-catalog-service/internal/core/ports/output"
)

const (
	imageExtension   = ".jpg"
	imageContentType = "image/jpeg"
)

// CatalogRecordService reads persisted catalog rows and their images.
type CatalogRecordService struct {
	records ports.CatalogRecordStore
	images  ports.ImageStore
	now     func() time.Time
}

func NewCatalogRecordService(records ports.CatalogRecordStore, images ports.ImageStore) *CatalogRecordService {
	return &CatalogRecordService{records: records, images: images, now: time.Now}
}

func (s *CatalogRecordService) GetRecord(ctx context.Context, id string) (domain.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrMissingModelID
	}
	return s.records.GetRecord(ctx, id)
}

// GetRecordDetail returns a stored row in the same shape as registry records.
func (s *CatalogRecordService) GetRecordDetail(ctx context.Context, id string) (*domain.ModelDetail, error) {
	doc, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(doc, strings.TrimSpace(id), "", s.now()), nil
}

// ListRecords clamps the filter's paging and reads one page of rows.
func (s *CatalogRecordService) ListRecords(ctx context.Context, filter ports.RecordFilter) (*ports.RecordPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.AccessLevel != "" {
		tier, err := domain.ParseAccessTier(filter.AccessLevel)
		if err != nil {
			return nil, err
		}
		filter.AccessLevel = string(tier)
	}

	docs, total, err := s.records.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.RecordPage{Items: docs, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

// FetchImage returns the stored image for a model. A model without an
// uploaded image, or whose image cannot be read, gets the placeholder; only a
// missing model is an error.
func (s *CatalogRecordService) FetchImage(ctx context.Context, id string) (*domain.ModelImage, error) {
	doc, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	key := firstString(doc["id"], strings.TrimSpace(id)) + imageExtension
	data, _, err := s.images.DownloadImage(ctx, key)
	if err != nil {
		entry := log.WithField("key", key)
		if !errors.Is(err, domain.ErrImageNotFound) {
			entry.WithError(err).Warn("image download failed, serving placeholder")
		} else {
			entry.Debug("no custom image, serving placeholder")
		}
		return &domain.ModelImage{Placeholder: true}, nil
	}

	return &domain.ModelImage{Data: data, ContentType: imageContentType}, nil
}

func firstString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
