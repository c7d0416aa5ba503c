package catalog

import (
	"sort"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default entries load", func(t *testing.T) {
		c, err := New(DefaultEntries())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Entries()) != len(DefaultEntries()) {
			t.Fatalf("expected %d entries, got %d", len(DefaultEntries()), len(c.Entries()))
		}
	})

	t.Run("empty type rejected", func(t *testing.T) {
		_, err := New([]Entry{{Type: "", BasePrice: 10, MaxQuantity: 1}})
		if err == nil {
			t.Fatalf("expected error for empty type")
		}
	})

	t.Run("negative base price rejected", func(t *testing.T) {
		_, err := New([]Entry{{Type: "sofa", BasePrice: -1, MaxQuantity: 1}})
		if err == nil {
			t.Fatalf("expected error for negative base price")
		}
	})

	t.Run("max quantity below one rejected", func(t *testing.T) {
		_, err := New([]Entry{{Type: "sofa", BasePrice: 10, MaxQuantity: 0}})
		if err == nil {
			t.Fatalf("expected error for max quantity < 1")
		}
	})

	t.Run("duplicate type rejected", func(t *testing.T) {
		_, err := New([]Entry{
			{Type: "sofa", BasePrice: 10, MaxQuantity: 1},
			{Type: "sofa", BasePrice: 20, MaxQuantity: 1},
		})
		if err == nil {
			t.Fatalf("expected error for duplicate type")
		}
	})

	t.Run("missing fallback rejected", func(t *testing.T) {
		_, err := New([]Entry{{Type: "sofa", BasePrice: 10, MaxQuantity: 1}})
		if err != ErrMissingFallbackEntry {
			t.Fatalf("expected ErrMissingFallbackEntry, got %v", err)
		}
	})
}

func TestCatalog_Lookups(t *testing.T) {
	c, err := New(DefaultEntries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("get known type", func(t *testing.T) {
		e, ok := c.Get("piano")
		if !ok || e.BasePrice != 900 {
			t.Fatalf("unexpected entry: %+v ok=%v", e, ok)
		}
	})

	t.Run("get unknown type", func(t *testing.T) {
		if _, ok := c.Get("hovercraft"); ok {
			t.Fatalf("expected miss for unknown type")
		}
	})

	t.Run("resolve falls back", func(t *testing.T) {
		e := c.Resolve("hovercraft")
		if e.Type != FallbackType {
			t.Fatalf("expected fallback entry, got %+v", e)
		}
	})

	t.Run("resolve exact match", func(t *testing.T) {
		e := c.Resolve("box")
		if e.Type != "box" || e.BasePrice != 15 {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("entries sorted by type", func(t *testing.T) {
		entries := c.Entries()
		if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type }) {
			t.Fatalf("entries not sorted by type")
		}
	})
}
