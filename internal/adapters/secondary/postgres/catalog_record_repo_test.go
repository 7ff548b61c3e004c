package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"model-catalog-service/internal/core/domain"
	output "model-catalog-service/internal/core/ports/output"
)

func TestBuildListQuery_NoFilters(t *testing.T) {
	countQuery, listQuery, args := buildListQuery(output.RecordFilter{Limit: 20})

	assert.Equal(t, "SELECT COUNT(*) FROM ai_models m WHERE TRUE", countQuery)
	assert.Contains(t, listQuery, "LIMIT $1 OFFSET $2")
	assert.Empty(t, args)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	countQuery, listQuery, args := buildListQuery(output.RecordFilter{
		Category:    "text-generation",
		Search:      "llama",
		AccessLevel: "free",
		Limit:       10,
		Offset:      30,
	})

	assert.Contains(t, countQuery, "m.category = $1")
	assert.Contains(t, countQuery, `(m.name ILIKE $2 ESCAPE '\' OR m.description ILIKE $2 ESCAPE '\' OR m.creator ILIKE $2 ESCAPE '\')`)
	assert.Contains(t, countQuery, "m.access_level = $3")
	assert.Contains(t, listQuery, "LIMIT $4 OFFSET $5")
	assert.Equal(t, []interface{}{"text-generation", "%llama%", "free"}, args)
}

func TestBuildListQuery_SearchOnly(t *testing.T) {
	_, listQuery, args := buildListQuery(output.RecordFilter{Search: "flux"})

	assert.Contains(t, listQuery, "m.name ILIKE $1")
	assert.Contains(t, listQuery, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []interface{}{"%flux%"}, args)
}

func TestBuildListQuery_SearchEscapesWildcards(t *testing.T) {
	tests := []struct {
		search  string
		pattern string
	}{
		{search: "_", pattern: `%\_%`},
		{search: "100%", pattern: `%100\%%`},
		{search: `a\b`, pattern: `%a\\b%`},
		{search: "llama_3", pattern: `%llama\_3%`},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			_, _, args := buildListQuery(output.RecordFilter{Search: tt.search})
			assert.Equal(t, []interface{}{tt.pattern}, args)
		})
	}
}

func TestMapGetRecordError(t *testing.T) {
	t.Run("no rows is not found", func(t *testing.T) {
		err := mapGetRecordError(pgx.ErrNoRows)
		assert.ErrorIs(t, err, domain.ErrModelNotFound)
		assert.False(t, domain.IsUpstreamError(err))
	})

	t.Run("wrapped no rows is not found", func(t *testing.T) {
		err := mapGetRecordError(fmt.Errorf("scan: %w", pgx.ErrNoRows))
		assert.ErrorIs(t, err, domain.ErrModelNotFound)
	})

	t.Run("other failures are upstream", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := mapGetRecordError(cause)
		assert.True(t, domain.IsUpstreamError(err))
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, domain.ErrModelNotFound)
	})
}
