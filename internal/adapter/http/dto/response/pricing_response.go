package response

import (
	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/pricing"
)

type ItemPriceResponse struct {
	Type             string `json:"type"`
	Description      string `json:"description"`
	Quantity         int    `json:"quantity"`
	BasePrice        int    `json:"base_price"`
	TotalPrice       int    `json:"total_price"`
	IsFragile        bool   `json:"is_fragile"`
	NeedsDisassemble bool   `json:"needs_disassemble"`
}

func FromItemQuote(q pricing.ItemQuote) ItemPriceResponse {
	return ItemPriceResponse{
		Type:             q.ItemType,
		Description:      q.Description,
		Quantity:         q.Quantity,
		BasePrice:        q.BasePrice,
		TotalPrice:       q.TotalPrice,
		IsFragile:        q.IsFragile,
		NeedsDisassemble: q.NeedsDisassemble,
	}
}

type PriceRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func FromPriceRange(r pricing.Range) PriceRangeResponse {
	return PriceRangeResponse{Min: r.Min, Max: r.Max}
}

type CatalogEntryResponse struct {
	Type             string `json:"type"`
	BasePrice        int    `json:"base_price"`
	Description      string `json:"description"`
	IsFragile        bool   `json:"is_fragile"`
	NeedsDisassemble bool   `json:"needs_disassemble"`
	MaxQuantity      int    `json:"max_quantity"`
}

func FromCatalogEntries(entries []catalog.Entry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{
			Type:             e.Type,
			BasePrice:        e.BasePrice,
			Description:      e.Description,
			IsFragile:        e.IsFragile,
			NeedsDisassemble: e.NeedsDisassemble,
			MaxQuantity:      e.MaxQuantity,
		})
	}
	return out
}
