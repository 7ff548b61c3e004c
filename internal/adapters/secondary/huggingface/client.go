package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"model-catalog-service/internal/config"
	"model-catalog-service/internal/core/domain"
	ports "model-catalog-service/internal/core/ports/output"
)

const (
	sourceRegistry = "registry"
	// maxBodyBytes caps how much of an upstream body is read.
	maxBodyBytes = 8 << 20
)

type registryClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewRegistryClient creates a client for the Hugging Face Hub API. The API key
// is checked per call, not here.
func NewRegistryClient(cfg *config.RegistryConfig) ports.RegistryClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &registryClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

// readmeResponse is the documentation endpoint payload.
type readmeResponse struct {
	Content string `json:"content"`
}

func (c *registryClient) FetchModelBundle(ctx context.Context, modelID string) (*ports.ModelBundle, error) {
	if modelID == "" {
		return nil, domain.ErrMissingModelID
	}
	if c.apiKey == "" {
		return nil, domain.ErrRegistryNotConfigured
	}

	modelURL := c.baseURL + "/models/" + escapeModelID(modelID)
	bundle := &ports.ModelBundle{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var doc domain.Document
		if err := c.getJSON(gctx, modelURL, &doc); err != nil {
			return err
		}
		if doc == nil {
			doc = domain.Document{}
		}
		bundle.Metadata = doc
		return nil
	})

	// Documentation never fails the group.
	g.Go(func() error {
		var readme readmeResponse
		if err := c.getJSON(gctx, modelURL+"/readme", &readme); err != nil {
			bundle.Documentation = domain.Enrichment[string]{Err: err}
			return nil
		}
		bundle.Documentation = domain.Enrichment[string]{Value: readme.Content}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (c *registryClient) SearchModels(ctx context.Context, query string, limit int) ([]domain.Document, error) {
	if c.apiKey == "" {
		return nil, domain.ErrRegistryNotConfigured
	}

	params := url.Values{}
	params.Set("search", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var docs []domain.Document
	if err := c.getJSON(ctx, c.baseURL+"/models?"+params.Encode(), &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// getJSON performs an authenticated GET and decodes a 2xx body into out.
// Every failure is reported as *domain.UpstreamError.
func (c *registryClient) getJSON(ctx context.Context, reqURL string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &domain.UpstreamError{Source: sourceRegistry, Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &domain.UpstreamError{Source: sourceRegistry, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.WithField("url", reqURL).Debug("fetching from registry")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.UpstreamError{Source: sourceRegistry, Err: err}
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"url":        reqURL,
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("registry response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &domain.UpstreamError{
			Source:     sourceRegistry,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return &domain.UpstreamError{
			Source:     sourceRegistry,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

// escapeModelID escapes each path segment and keeps the owner/name separator.
func escapeModelID(modelID string) string {
	segments := strings.Split(modelID, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
