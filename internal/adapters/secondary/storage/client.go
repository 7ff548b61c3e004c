package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"model-catalog-service/internal/config"
	"model-catalog-service/internal/core/domain"
	ports "model-catalog-service/internal/core/ports/output"
)

const (
	sourceStorage = "storage"
	maxImageBytes = 16 << 20
)

type imageStore struct {
	baseURL    string
	bucket     string
	serviceKey string
	maxBytes   int64
	client     *http.Client
}

// NewImageStore creates an ImageStore backed by the store's object storage API.
func NewImageStore(cfg *config.StoreConfig) ports.ImageStore {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &imageStore{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		bucket:     cfg.ImageBucket,
		serviceKey: cfg.ServiceKey,
		maxBytes:   maxImageBytes,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *imageStore) DownloadImage(ctx context.Context, key string) ([]byte, string, error) {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", &domain.UpstreamError{Source: sourceStorage, Err: fmt.Errorf("create request: %w", err)}
	}
	if s.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.serviceKey)
		req.Header.Set("apikey", s.serviceKey)
	}

	log.WithFields(log.Fields{"bucket": s.bucket, "key": key}).Debug("downloading image")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", &domain.UpstreamError{Source: sourceStorage, Err: err}
	}
	defer resp.Body.Close()

	if resp.ContentLength > s.maxBytes {
		return nil, "", &domain.UpstreamError{Source: sourceStorage, StatusCode: resp.StatusCode, Err: errImageTooLarge(s.maxBytes)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, "", &domain.UpstreamError{Source: sourceStorage, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode == http.StatusNotFound || isObjectNotFound(resp.StatusCode, body) {
		return nil, "", domain.ErrImageNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &domain.UpstreamError{
			Source:     sourceStorage,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	if int64(len(body)) > s.maxBytes {
		return nil, "", &domain.UpstreamError{Source: sourceStorage, StatusCode: resp.StatusCode, Err: errImageTooLarge(s.maxBytes)}
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func errImageTooLarge(limit int64) error {
	return fmt.Errorf("image exceeds %d bytes", limit)
}

// isObjectNotFound matches the storage API's 400 reply for a missing object.
func isObjectNotFound(status int, body []byte) bool {
	if status != http.StatusBadRequest {
		return false
	}
	lower := bytes.ToLower(body)
	return bytes.Contains(lower, []byte("not_found")) || bytes.Contains(lower, []byte("object not found"))
}
