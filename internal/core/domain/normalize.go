package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for defaulted timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Normalize maps an upstream document (registry metadata or a store row) to a
// ModelDetail. It never fails: every missing field degrades to its default.
// requestKey is the identifier the caller asked for, documentation is the
// long-form text used when the document has no description, and now fills
// in missing timestamps.
func Normalize(doc Document, requestKey string, documentation string, now time.Time) *ModelDetail {
	if doc == nil {
		doc = Document{}
	}

	upstreamID := doc.str("id")

	d := &ModelDetail{
		ID:          firstNonEmpty(upstreamID, requestKey),
		ModelID:     firstNonEmpty(doc.str("modelId"), upstreamID, requestKey),
		Name:        firstNonEmpty(doc.str("name"), lastSegment(upstreamID), lastSegment(requestKey)),
		Description: firstNonEmpty(doc.str("description"), documentation),
		Author:      firstNonEmpty(doc.str("author"), doc.str("creator"), firstSegment(upstreamID), firstSegment(requestKey)),
		License:     firstNonEmpty(doc.str("license"), doc.nested("cardData").str("license"), DefaultLicense),
		Tags:        doc.strings("tags"),
		Downloads:   doc.count("downloads"),
		Likes:       doc.count("likes"),
		PipelineTag: doc.optStr("pipeline_tag"),
		Languages:   doc.optStrings("languages"),
		ModelType:   doc.optStr("model_type"),
		LibraryName: doc.optStr("library_name"),
		Config:      doc.optObject("config"),
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}

	stamp := now.UTC().Format(TimestampLayout)
	d.CreatedAt = firstNonEmpty(doc.str("createdAt"), doc.str("created_at"))
	if d.CreatedAt == "" {
		d.CreatedAt = stamp
		d.TimestampsDefaulted = true
	}
	d.UpdatedAt = firstNonEmpty(doc.str("lastModified"), doc.str("updated_at"), doc.str("last_updated"))
	if d.UpdatedAt == "" {
		d.UpdatedAt = stamp
		d.TimestampsDefaulted = true
	}

	d.Tasks = DeriveTasks(d.Tags)
	d.Metrics = []Metric{
		{Type: MetricDownloads, Value: float64(d.Downloads), Name: "Downloads"},
		{Type: MetricLikes, Value: float64(d.Likes), Name: "Likes"},
	}
	d.Category = InferCategory(d)

	return d
}

// DeriveTasks keeps the tags that contain neither ':' nor '_'.
func DeriveTasks(tags []string) []string {
	tasks := make([]string, 0, len(tags))
	for _, t := range tags {
		if strings.ContainsAny(t, ":_") {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func lastSegment(id string) string {
	if id == "" {
		return ""
	}
	return id[strings.LastIndex(id, "/")+1:]
}

func firstSegment(id string) string {
	if i := strings.Index(id, "/"); i >= 0 {
		return id[:i]
	}
	return id
}

// ============================================================================
// Document accessors
// ============================================================================

func (d Document) str(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	default:
		return ""
	}
}

func (d Document) optStr(key string) *string {
	s, ok := d[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func (d Document) nested(key string) Document {
	switch v := d[key].(type) {
	case map[string]any:
		return Document(v)
	case Document:
		return v
	default:
		return Document{}
	}
}

func (d Document) optObject(key string) map[string]any {
	switch v := d[key].(type) {
	case map[string]any:
		return v
	case Document:
		return map[string]any(v)
	default:
		return nil
	}
}

// strings returns the string items of an array field, dropping anything else.
func (d Document) strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func (d Document) optStrings(key string) []string {
	if _, ok := d[key]; !ok {
		return nil
	}
	if s, ok := d[key].(string); ok {
		return []string{s}
	}
	return d.strings(key)
}

// count reads a non-negative integer; anything else is 0.
func (d Document) count(key string) int64 {
	var n float64
	switch v := d[key].(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	if n >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}
