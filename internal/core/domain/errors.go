package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrMissingModelID    = errors.New("model ID is required")
	ErrInvalidAccessTier = errors.New("access tier must be one of: free, pro")
	ErrInvalidCatalogID  = errors.New("catalog entry ID must be an integer")
)

// ============================================================================
// Configuration Errors
// ============================================================================

var (
	ErrRegistryNotConfigured = errors.New("registry API key not configured: set REGISTRY_API_KEY or HUGGINGFACE_API_KEY")
)

// ============================================================================
// Not Found Errors
// ============================================================================

var (
	ErrModelNotFound        = errors.New("model not found")
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")

	// ErrImageNotFound is returned by image stores when no blob exists for a
	// key. Services turn it into a placeholder, never into a 404.
	ErrImageNotFound = errors.New("model image not found")
)

// ============================================================================
// Upstream Errors
// ============================================================================

// UpstreamError reports a failed call to the registry or the catalog store.
// StatusCode is zero when the request never got a response.
type UpstreamError struct {
	Source     string
	StatusCode int
	Status     string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != "":
		return fmt.Sprintf("%s request failed: %s", e.Source, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s request failed: %v", e.Source, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s request failed: status %d", e.Source, e.StatusCode)
	default:
		return fmt.Sprintf("%s request failed", e.Source)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstreamError reports whether err wraps an *UpstreamError.
func IsUpstreamError(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr)
}
