package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-catalog-service/internal/core/domain"
	"model-catalog-service/internal/core/ports/output"
)

// MockRegistryClient is a mock of RegistryClient.
type MockRegistryClient struct {
	mock.Mock
}

func (m *MockRegistryClient) FetchModelBundle(ctx context.Context, modelID string) (*ports.ModelBundle, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ModelBundle), args.Error(1)
}

func (m *MockRegistryClient) SearchModels(ctx context.Context, query string, limit int) ([]domain.Document, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

// MockCatalogRecordStore is a mock of CatalogRecordStore.
type MockCatalogRecordStore struct {
	mock.Mock
}

func (m *MockCatalogRecordStore) GetRecord(ctx context.Context, id string) (domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockCatalogRecordStore) ListRecords(ctx context.Context, filter ports.RecordFilter) ([]domain.Document, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockCatalogRecordStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockImageStore is a mock of ImageStore.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) DownloadImage(ctx context.Context, key string) ([]byte, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
