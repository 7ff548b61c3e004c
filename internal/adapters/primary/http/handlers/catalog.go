package handlers

import (
	"net/http"
	"strconv"

	"model-catalog-service/internal/adapters/primary/http/dto"
	"model-catalog-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoriesResponse(h.catalogSvc.ModelCategories(), h.catalogSvc.ToolCategories()))
}

func (h *Handler) ListCatalogModels(c *gin.Context) {
	state, err := filterStateFromQuery(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogEntriesResponse(h.catalogSvc.ListModels(state)))
}

func (h *Handler) ListCatalogTools(c *gin.Context) {
	state, err := filterStateFromQuery(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogEntriesResponse(h.catalogSvc.ListTools(state)))
}

func (h *Handler) GetCatalogModel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		mapDomainError(c, domain.ErrInvalidCatalogID)
		return
	}

	entry, err := h.catalogSvc.FindModelEntry(id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogEntryResponse(*entry))
}

func filterStateFromQuery(c *gin.Context) (domain.FilterState, error) {
	tiers, err := domain.ParseAccessTiers(c.Query("access"))
	if err != nil {
		return domain.FilterState{}, err
	}
	return domain.FilterState{
		SearchQuery:    c.Query("q"),
		ActiveCategory: c.Query("category"),
		AccessTiers:    tiers,
	}, nil
}
