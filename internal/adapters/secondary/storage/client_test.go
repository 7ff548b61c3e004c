package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-catalog-service/internal/config"
	"model-catalog-service/internal/core/domain"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *imageStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewImageStore(&config.StoreConfig{
		URL:         srv.URL,
		ServiceKey:  "service-key",
		ImageBucket: "model-images",
		Timeout:     5 * time.Second,
	})
	return s.(*imageStore)
}

func TestDownloadImage_Success(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/model-images/42.jpg", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	})

	data, contentType, err := s.DownloadImage(context.Background(), "42.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDownloadImage_NotFound(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, _, err := s.DownloadImage(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestDownloadImage_BadRequestNotFoundBody(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"not_found","message":"Object not found"}`))
	})

	_, _, err := s.DownloadImage(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestDownloadImage_ServerError(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _, err := s.DownloadImage(context.Background(), "42.jpg")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
	assert.NotErrorIs(t, err, domain.ErrImageNotFound)
}

func TestDownloadImage_OversizedBodyRejected(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(make([]byte, maxImageBytes+1024))
	})

	data, _, err := s.DownloadImage(context.Background(), "42.jpg")
	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, domain.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "image exceeds")
}

func TestDownloadImage_DeclaredLengthOverLimit(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "9")
		_, _ = w.Write([]byte("123456789"))
	})
	s.maxBytes = 8

	_, _, err := s.DownloadImage(context.Background(), "42.jpg")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestDownloadImage_BodyAtLimit(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("12345678"))
	})
	s.maxBytes = 8

	data, _, err := s.DownloadImage(context.Background(), "42.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678"), data)
}
