package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-catalog-service/internal/core/domain"
)

func TestToModelDetailResponse_OptionalFieldsDefaulted(t *testing.T) {
	detail := domain.Normalize(domain.Document{}, "org/model", "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(ToModelDetailResponse(detail))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "", out["pipeline_tag"])
	assert.Equal(t, "", out["model_type"])
	assert.Equal(t, "", out["library_name"])
	assert.Equal(t, []any{}, out["languages"])
	assert.Equal(t, []any{}, out["tags"])
	assert.Equal(t, []any{}, out["tasks"])
	assert.Equal(t, map[string]any{}, out["config"])
	assert.Equal(t, "Unknown", out["license"])
	assert.Equal(t, "org/model", out["modelId"])
	assert.Len(t, out["metrics"], 2)
}

func TestToModelDetailResponse_OptionalFieldsKept(t *testing.T) {
	pipeline := "text-generation"
	detail := &domain.ModelDetail{
		ID:          "org/model",
		PipelineTag: &pipeline,
		Languages:   []string{"en", "fr"},
		Config:      map[string]any{"architectures": []any{"LlamaForCausalLM"}},
	}

	resp := ToModelDetailResponse(detail)

	assert.Equal(t, "text-generation", resp.PipelineTag)
	assert.Equal(t, []string{"en", "fr"}, resp.Languages)
	assert.Contains(t, resp.Config, "architectures")
}

func TestToCatalogEntriesResponse(t *testing.T) {
	resp := ToCatalogEntriesResponse([]domain.CatalogEntry{
		{ID: 1, Title: "Flux", Access: domain.AccessPro},
	})

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "pro", resp.Items[0].Access)
	assert.NotNil(t, resp.Items[0].Metrics)
	assert.NotNil(t, resp.Items[0].Tags)

	empty := ToCatalogEntriesResponse(nil)
	assert.NotNil(t, empty.Items)
}
