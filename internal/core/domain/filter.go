package domain

import "strings"

const (
	CategoryAll      = "all"
	CategoryTrending = "trending"

	FeaturedTag = "Featured"
)

// FilterState is the current browse selection.
type FilterState struct {
	SearchQuery    string
	ActiveCategory string
	AccessTiers    []AccessTier
}

// Apply returns the visible subset of entries in their original order.
//
// A non-empty search query wins over everything else: it matches title,
// description and upstream reference, and ignores category and tier. Without
// a query, "trending" keeps Featured entries, "all" keeps everything, and any
// other value is matched against the entry category. AccessTiers is not
// consulted here; see FilterByAccess.
func Apply(entries []CatalogEntry, state FilterState) []CatalogEntry {
	out := make([]CatalogEntry, 0, len(entries))

	if query := strings.ToLower(strings.TrimSpace(state.SearchQuery)); query != "" {
		for _, e := range entries {
			if matchesQuery(e, query) {
				out = append(out, e)
			}
		}
		return out
	}

	switch state.ActiveCategory {
	case CategoryTrending:
		for _, e := range entries {
			if e.HasTag(FeaturedTag) {
				out = append(out, e)
			}
		}
	case CategoryAll:
		out = append(out, entries...)
	default:
		for _, e := range entries {
			if e.Category == state.ActiveCategory {
				out = append(out, e)
			}
		}
	}
	return out
}

func matchesQuery(e CatalogEntry, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Description), query) ||
		strings.Contains(strings.ToLower(e.Model), query)
}

// FilterByAccess keeps entries whose tier is in tiers. An empty tier set keeps
// everything.
func FilterByAccess(entries []CatalogEntry, tiers []AccessTier) []CatalogEntry {
	if len(tiers) == 0 {
		return entries
	}
	allowed := make(map[AccessTier]bool, len(tiers))
	for _, t := range tiers {
		allowed[t] = true
	}
	out := make([]CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if allowed[e.Access] {
			out = append(out, e)
		}
	}
	return out
}
