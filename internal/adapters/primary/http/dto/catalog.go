package dto

import (
	"model-catalog-service/internal/core/domain"
)

type CatalogEntryResponse struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Model       string            `json:"model"`
	Metrics     map[string]string `json:"metrics"`
	Tags        []string          `json:"tags"`
	Category    string            `json:"category"`
	Access      string            `json:"access"`
	Image       string            `json:"image,omitempty"`
}

type CategoryResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Models      []CatalogEntryResponse `json:"models"`
}

type CategoryLabelResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type CategoriesResponse struct {
	Models []CategoryResponse      `json:"models"`
	Tools  []CategoryLabelResponse `json:"tools"`
}

type CatalogEntriesResponse struct {
	Items []CatalogEntryResponse `json:"items"`
	Total int                    `json:"total"`
}

func ToCatalogEntryResponse(e domain.CatalogEntry) CatalogEntryResponse {
	metrics := e.Metrics
	if metrics == nil {
		metrics = map[string]string{}
	}
	return CatalogEntryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Model:       e.Model,
		Metrics:     metrics,
		Tags:        nonNil(e.Tags),
		Category:    e.Category,
		Access:      string(e.Access),
		Image:       e.Image,
	}
}

func ToCatalogEntriesResponse(entries []domain.CatalogEntry) CatalogEntriesResponse {
	items := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, ToCatalogEntryResponse(e))
	}
	return CatalogEntriesResponse{Items: items, Total: len(items)}
}

func ToCategoriesResponse(models []domain.Category, tools []domain.CategoryLabel) CategoriesResponse {
	resp := CategoriesResponse{
		Models: make([]CategoryResponse, 0, len(models)),
		Tools:  make([]CategoryLabelResponse, 0, len(tools)),
	}
	for _, c := range models {
		resp.Models = append(resp.Models, CategoryResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Models:      ToCatalogEntriesResponse(c.Entries).Items,
		})
	}
	for _, l := range tools {
		resp.Tools = append(resp.Tools, CategoryLabelResponse{ID: l.ID, Label: l.Label})
	}
	return resp
}
