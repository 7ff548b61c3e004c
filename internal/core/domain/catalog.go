package domain

import (
	"fmt"
	"strings"
)

// AccessTier classifies which catalog entries a viewer may use.
type AccessTier string

const (
	AccessFree AccessTier = "free"
	AccessPro  AccessTier = "pro"
)

func (a AccessTier) IsValid() bool {
	return a == AccessFree || a == AccessPro
}

// ParseAccessTier accepts a tier name in any case.
func ParseAccessTier(s string) (AccessTier, error) {
	tier := AccessTier(strings.ToLower(strings.TrimSpace(s)))
	if !tier.IsValid() {
		return "", ErrInvalidAccessTier
	}
	return tier, nil
}

// ParseAccessTiers parses a comma separated tier list. Blank items are skipped.
func ParseAccessTiers(s string) ([]AccessTier, error) {
	var tiers []AccessTier
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		tier, err := ParseAccessTier(part)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// CatalogEntry is a summary record shown in browse and grid views.
type CatalogEntry struct {
	ID          int               `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Model       string            `json:"model" yaml:"model"`
	Metrics     map[string]string `json:"metrics" yaml:"metrics"`
	Tags        []string          `json:"tags" yaml:"tags"`
	Category    string            `json:"category" yaml:"category"`
	Access      AccessTier        `json:"access" yaml:"access"`
	Image       string            `json:"image,omitempty" yaml:"image,omitempty"`
}

func (e CatalogEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (e CatalogEntry) clone() CatalogEntry {
	out := e
	if e.Metrics != nil {
		out.Metrics = make(map[string]string, len(e.Metrics))
		for k, v := range e.Metrics {
			out.Metrics[k] = v
		}
	}
	out.Tags = append([]string(nil), e.Tags...)
	return out
}

// Category groups model entries under a fixed id.
type Category struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Entries     []CatalogEntry `json:"models" yaml:"models"`
}

// CategoryLabel is a tool-page category tab.
type CategoryLabel struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Catalog is the static browse data. It is built once at startup and never
// mutated afterwards; every accessor hands out copies.
type Catalog struct {
	modelCategories []Category
	toolCategories  []CategoryLabel
	tools           []CatalogEntry
}

// NewCatalog validates the category references of every entry and returns a
// read-only catalog.
func NewCatalog(modelCategories []Category, toolCategories []CategoryLabel, tools []CatalogEntry) (*Catalog, error) {
	seen := make(map[string]bool, len(modelCategories))
	ids := make(map[int]bool)
	for _, c := range modelCategories {
		if c.ID == "" {
			return nil, fmt.Errorf("model category %q has no id", c.Title)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate model category %q", c.ID)
		}
		seen[c.ID] = true
		for _, e := range c.Entries {
			if err := validateEntry(e, ids); err != nil {
				return nil, fmt.Errorf("model category %q: %w", c.ID, err)
			}
			if e.Category != c.ID {
				return nil, fmt.Errorf("model %d: category %q does not match enclosing category %q", e.ID, e.Category, c.ID)
			}
		}
	}

	toolSeen := make(map[string]bool, len(toolCategories))
	for _, l := range toolCategories {
		toolSeen[l.ID] = true
	}
	toolIDs := make(map[int]bool)
	for _, e := range tools {
		if err := validateEntry(e, toolIDs); err != nil {
			return nil, fmt.Errorf("tools: %w", err)
		}
		if !toolSeen[e.Category] {
			return nil, fmt.Errorf("tool %d: unknown category %q", e.ID, e.Category)
		}
	}

	c := &Catalog{
		modelCategories: make([]Category, 0, len(modelCategories)),
		toolCategories:  append([]CategoryLabel(nil), toolCategories...),
		tools:           cloneEntries(tools),
	}
	for _, cat := range modelCategories {
		cat.Entries = cloneEntries(cat.Entries)
		c.modelCategories = append(c.modelCategories, cat)
	}
	return c, nil
}

func validateEntry(e CatalogEntry, ids map[int]bool) error {
	if ids[e.ID] {
		return fmt.Errorf("duplicate entry id %d", e.ID)
	}
	ids[e.ID] = true
	if e.Title == "" {
		return fmt.Errorf("entry %d has no title", e.ID)
	}
	if !e.Access.IsValid() {
		return fmt.Errorf("entry %d: %w", e.ID, ErrInvalidAccessTier)
	}
	return nil
}

// ModelCategories returns the model categories in display order.
func (c *Catalog) ModelCategories() []Category {
	out := make([]Category, 0, len(c.modelCategories))
	for _, cat := range c.modelCategories {
		cat.Entries = cloneEntries(cat.Entries)
		out = append(out, cat)
	}
	return out
}

func (c *Catalog) ToolCategories() []CategoryLabel {
	return append([]CategoryLabel(nil), c.toolCategories...)
}

// Models flattens every category into one list, keeping category order.
func (c *Catalog) Models() []CatalogEntry {
	var out []CatalogEntry
	for _, cat := range c.modelCategories {
		out = append(out, cloneEntries(cat.Entries)...)
	}
	if out == nil {
		out = []CatalogEntry{}
	}
	return out
}

func (c *Catalog) Tools() []CatalogEntry {
	return cloneEntries(c.tools)
}

func cloneEntries(entries []CatalogEntry) []CatalogEntry {
	out := make([]CatalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.clone())
	}
	return out
}
