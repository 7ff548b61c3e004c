package handlers

import (
	"net/http"
	"strconv"

	"model-catalog-service/internal/adapters/primary/http/dto"
	"model-catalog-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetRegistryModel(c *gin.Context) {
	modelID := c.Query("modelId")
	if modelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingModelID.Error()})
		return
	}

	detail, err := h.detailSvc.GetRegistryModel(c.Request.Context(), modelID)
	if err != nil {
		log.WithError(err).WithField("model_id", modelID).Error("get registry model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModelDetailEnvelope{Model: dto.ToModelDetailResponse(detail)})
}

func (h *Handler) SearchRegistry(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	results, err := h.detailSvc.SearchRegistry(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		log.WithError(err).Error("search registry failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelSearchResponse(results))
}
