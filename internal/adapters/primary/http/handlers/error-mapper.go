package handlers

import (
	"errors"
	"net/http"

	"model-catalog-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	var upErr *domain.UpstreamError

	switch {
	// Not found errors
	case errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrCatalogEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingModelID),
		errors.Is(err, domain.ErrInvalidAccessTier),
		errors.Is(err, domain.ErrInvalidCatalogID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Configuration errors
	case errors.Is(err, domain.ErrRegistryNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.As(err, &upErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": upErr.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
