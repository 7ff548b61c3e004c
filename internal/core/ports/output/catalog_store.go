package ports

import (
	"context"

	"model-catalog-service/internal/core/domain"
)

type RecordFilter struct {
	Category    string
	Search      string
	AccessLevel string
	Limit       int
	Offset      int
}

// RecordPage is one page of rows with the limit and offset it was read with.
type RecordPage struct {
	Items  []domain.Document
	Total  int
	Limit  int
	Offset int
}

// CatalogRecordStore reads persisted catalog rows. It is read-only.
type CatalogRecordStore interface {
	// GetRecord returns domain.ErrModelNotFound when no row has the key.
	GetRecord(ctx context.Context, id string) (domain.Document, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]domain.Document, int, error)
	Ping(ctx context.Context) error
}

// ImageStore downloads model image blobs.
type ImageStore interface {
	// DownloadImage returns the blob bytes and content type, or
	// domain.ErrImageNotFound when nothing is stored under key.
	DownloadImage(ctx context.Context, key string) ([]byte, string, error)
}
