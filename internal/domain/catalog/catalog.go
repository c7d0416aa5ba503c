package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// FallbackType is the designated entry used for unknown item types.
const FallbackType = "other"

var ErrMissingFallbackEntry = errors.New("catalog has no fallback entry")

// Entry is one furniture type of the pricing catalog. Entries are immutable after
// the catalog is built at process start.
type Entry struct {
	Type             string `json:"type"`
	BasePrice        int    `json:"base_price"`
	Description      string `json:"description"`
	IsFragile        bool   `json:"is_fragile"`
	NeedsDisassemble bool   `json:"needs_disassemble"`
	MaxQuantity      int    `json:"max_quantity"`
}

// Catalog is the static furniture-type -> pricing attributes mapping. Lookups of
// unknown types resolve to the fallback entry, never to an error.
type Catalog struct {
	entries  map[string]Entry
	fallback Entry
}

// New builds a catalog from the loaded entries. The fallback entry is required.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Type == "" {
			return nil, errors.New("catalog entry with empty type")
		}
		if e.BasePrice < 0 {
			return nil, fmt.Errorf("catalog entry %q has negative base price", e.Type)
		}
		if e.MaxQuantity < 1 {
			return nil, fmt.Errorf("catalog entry %q has max quantity < 1", e.Type)
		}
		if _, dup := c.entries[e.Type]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.Type)
		}
		c.entries[e.Type] = e
	}
	fb, ok := c.entries[FallbackType]
	if !ok {
		return nil, ErrMissingFallbackEntry
	}
	c.fallback = fb
	return c, nil
}

// Get returns the entry for itemType and whether it was an exact match.
func (c *Catalog) Get(itemType string) (Entry, bool) {
	e, ok := c.entries[itemType]
	return e, ok
}

// Resolve returns the entry for itemType, falling back to the designated
// fallback entry when the type is unknown.
func (c *Catalog) Resolve(itemType string) Entry {
	if e, ok := c.entries[itemType]; ok {
		return e
	}
	return c.fallback
}

// Entries returns all entries ordered by type.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
