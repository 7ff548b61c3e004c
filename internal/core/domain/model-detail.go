package domain

// Document is an upstream JSON object of unknown shape, as returned by the
// registry or read from a store row.
type Document map[string]any

// Metric is a named numeric value shown on the detail page.
type Metric struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Name  string  `json:"name"`
}

const (
	MetricDownloads = "downloads"
	MetricLikes     = "likes"

	DefaultLicense = "Unknown"
)

// ModelDetail is the canonical model record rendered by detail views.
// Optional fields stay nil when the upstream omits them.
type ModelDetail struct {
	ID          string
	ModelID     string
	Name        string
	Description string
	Tags        []string
	Downloads   int64
	Likes       int64
	CreatedAt   string
	UpdatedAt   string
	Author      string
	License     string
	PipelineTag *string
	Tasks       []string
	Languages   []string
	ModelType   *string
	LibraryName *string
	Config      map[string]any
	Metrics     []Metric

	// Category is inferred from tags, pipeline tag, name and description.
	Category string

	// TimestampsDefaulted is set when CreatedAt or UpdatedAt was filled with
	// the normalization time because the upstream did not supply it. Such
	// records change on every fetch.
	TimestampsDefaulted bool
}

// Enrichment carries optional data whose failure must not fail the request.
type Enrichment[T any] struct {
	Value T
	Err   error
}

// Get returns the value, or the zero value when the fetch failed.
func (e Enrichment[T]) Get() T {
	if e.Err != nil {
		var zero T
		return zero
	}
	return e.Value
}

func (e Enrichment[T]) Degraded() bool { return e.Err != nil }

// ModelImage is either image bytes or an instruction to serve the placeholder.
type ModelImage struct {
	Data        []byte
	ContentType string
	Placeholder bool
}
