package handlers

import (
	"model-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	detailSvc  *services.ModelDetailService
	recordSvc  *services.CatalogRecordService
	catalogSvc *services.CatalogService

	placeholderPath string
	publicBaseURL   string
}

func New(
	detailSvc *services.ModelDetailService,
	recordSvc *services.CatalogRecordService,
	catalogSvc *services.CatalogService,
	placeholderPath string,
	publicBaseURL string,
) *Handler {
	return &Handler{
		detailSvc:       detailSvc,
		recordSvc:       recordSvc,
		catalogSvc:      catalogSvc,
		placeholderPath: placeholderPath,
		publicBaseURL:   publicBaseURL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Registry lookups
	r.GET("/huggingface/model", h.GetRegistryModel)
	r.GET("/huggingface/search", h.SearchRegistry)

	// Stored catalog rows
	r.GET("/models", h.ListRecords)
	r.GET("/models/:id", h.GetRecord)
	r.GET("/models/:id/detail", h.GetRecordDetail)
	r.GET("/models/:id/image", h.GetRecordImage)

	// Static catalog
	r.GET("/catalog/categories", h.ListCategories)
	r.GET("/catalog/models", h.ListCatalogModels)
	r.GET("/catalog/models/:id", h.GetCatalogModel)
	r.GET("/catalog/tools", h.ListCatalogTools)
}
