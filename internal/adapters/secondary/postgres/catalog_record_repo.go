package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-catalog-service/internal/core/domain"
	output "model-catalog-service/internal/core/ports/output"
)

const sourceStore = "store"

// likeEscaper escapes LIKE wildcards so a search matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type catalogRecordRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRecordRepository creates a new CatalogRecordStore
func NewCatalogRecordRepository(pool *pgxpool.Pool) output.CatalogRecordStore {
	return &catalogRecordRepo{pool: pool}
}

func (r *catalogRecordRepo) GetRecord(ctx context.Context, id string) (domain.Document, error) {
	query := `SELECT row_to_json(m) FROM ai_models m WHERE m.id::text = $1`

	var doc domain.Document
	if err := r.pool.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		return nil, mapGetRecordError(err)
	}
	if doc == nil {
		doc = domain.Document{}
	}
	return doc, nil
}

// mapGetRecordError turns a point-lookup failure into a domain error.
func mapGetRecordError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrModelNotFound
	}
	return &domain.UpstreamError{Source: sourceStore, Err: fmt.Errorf("get record: %w", err)}
}

func (r *catalogRecordRepo) ListRecords(ctx context.Context, filter output.RecordFilter) ([]domain.Document, int, error) {
	countQuery, listQuery, args := buildListQuery(filter)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, &domain.UpstreamError{Source: sourceStore, Err: fmt.Errorf("count records: %w", err)}
	}

	rows, err := r.pool.Query(ctx, listQuery, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, &domain.UpstreamError{Source: sourceStore, Err: fmt.Errorf("list records: %w", err)}
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, &domain.UpstreamError{Source: sourceStore, Err: fmt.Errorf("scan record row: %w", err)}
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &domain.UpstreamError{Source: sourceStore, Err: fmt.Errorf("iterate record rows: %w", err)}
	}

	return docs, total, nil
}

func (r *catalogRecordRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// buildListQuery returns the count query, the page query and the shared
// filter args. The page query takes limit and offset as its last two args.
func buildListQuery(filter output.RecordFilter) (string, string, []interface{}) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("m.category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			`(m.name ILIKE $%d ESCAPE '\' OR m.description ILIKE $%d ESCAPE '\' OR m.creator ILIKE $%d ESCAPE '\')`,
			argPos, argPos, argPos))
		args = append(args, "%"+likeEscaper.Replace(filter.Search)+"%")
		argPos++
	}

	if filter.AccessLevel != "" {
		conditions = append(conditions, fmt.Sprintf("m.access_level = $%d", argPos))
		args = append(args, filter.AccessLevel)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ai_models m WHERE %s", whereClause)

	listQuery := fmt.Sprintf(`
		SELECT row_to_json(m)
		FROM ai_models m
		WHERE %s
		ORDER BY m.id
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	return countQuery, listQuery, args
}
