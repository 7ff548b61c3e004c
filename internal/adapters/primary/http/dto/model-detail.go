package dto

import (
	"model-catalog-service/internal/core/domain"
)

// ModelDetailResponse is the JSON shape consumed by the model detail page.
// Optional fields are rendered with empty defaults, never null.
type ModelDetailResponse struct {
	ID                  string          `json:"id"`
	ModelID             string          `json:"modelId"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Tags                []string        `json:"tags"`
	Downloads           int64           `json:"downloads"`
	Likes               int64           `json:"likes"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt"`
	Author              string          `json:"author"`
	License             string          `json:"license"`
	PipelineTag         string          `json:"pipeline_tag"`
	Tasks               []string        `json:"tasks"`
	Languages           []string        `json:"languages"`
	ModelType           string          `json:"model_type"`
	LibraryName         string          `json:"library_name"`
	Config              map[string]any  `json:"config"`
	Metrics             []domain.Metric `json:"metrics"`
	Category            string          `json:"category"`
	TimestampsDefaulted bool            `json:"timestamps_defaulted"`
}

type ModelDetailEnvelope struct {
	Model ModelDetailResponse `json:"model"`
}

type ModelSearchResponse struct {
	Items []ModelDetailResponse `json:"items"`
}

type ListRecordsResponse struct {
	Items      []domain.Document `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

func ToModelDetailResponse(d *domain.ModelDetail) ModelDetailResponse {
	resp := ModelDetailResponse{
		ID:                  d.ID,
		ModelID:             d.ModelID,
		Name:                d.Name,
		Description:         d.Description,
		Tags:                nonNil(d.Tags),
		Downloads:           d.Downloads,
		Likes:               d.Likes,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
		Author:              d.Author,
		License:             d.License,
		PipelineTag:         deref(d.PipelineTag),
		Tasks:               nonNil(d.Tasks),
		Languages:           nonNil(d.Languages),
		ModelType:           deref(d.ModelType),
		LibraryName:         deref(d.LibraryName),
		Config:              d.Config,
		Metrics:             d.Metrics,
		Category:            d.Category,
		TimestampsDefaulted: d.TimestampsDefaulted,
	}
	if resp.Config == nil {
		resp.Config = map[string]any{}
	}
	if resp.Metrics == nil {
		resp.Metrics = []domain.Metric{}
	}
	return resp
}

func ToModelSearchResponse(details []*domain.ModelDetail) ModelSearchResponse {
	items := make([]ModelDetailResponse, 0, len(details))
	for _, d := range details {
		items = append(items, ToModelDetailResponse(d))
	}
	return ModelSearchResponse{Items: items}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
