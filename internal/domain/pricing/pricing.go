// Package pricing computes moving-estimate prices from a fixed rule table and the
// furniture catalog. Every function here is pure: same inputs, same price, no I/O.
package pricing

import (
	"math"

	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/entities"
)

// Fixed rule table. Prices are whole currency units.
const (
	BasePrice                 = 500
	DefaultApartmentSurcharge = 350
	FragilityFactor           = 1.3
	DisassembleFee            = 50
	ReassembleFee             = 50
	FloorRate                 = 75
	ElevatorDiscount          = 0.5
)

// apartmentSurcharges maps the apartment size class to its surcharge. Unknown
// classes fall back to DefaultApartmentSurcharge; validation constrains the enum
// before pricing runs, so the fallback is defense-in-depth only.
var apartmentSurcharges = map[string]int{
	"1": 200,
	"2": 350,
	"3": 500,
	"4": 700,
	"5": 900,
}

// QuoteInput carries everything TotalPrice depends on.
type QuoteInput struct {
	ApartmentType        string
	Items                []entities.EstimateLineItem
	FloorDifference      int
	BothEndsHaveElevator bool
}

// ItemQuote is the read-only price breakdown for a single item type.
type ItemQuote struct {
	ItemType         string
	Description      string
	Quantity         int
	BasePrice        int
	TotalPrice       int
	IsFragile        bool
	NeedsDisassemble bool
}

// Range is the displayed min/max estimate bracket derived from the rule table.
type Range struct {
	Min int
	Max int
}

// Engine prices estimates against an immutable catalog.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// TotalPrice computes the full estimate price:
// base + apartment surcharge + per-item prices + floor surcharge, rounded to the
// nearest whole unit and never negative.
func (e *Engine) TotalPrice(in QuoteInput) int {
	total := float64(BasePrice + apartmentSurcharge(in.ApartmentType))

	for _, item := range in.Items {
		total += e.linePrice(item)
	}

	floor := float64(in.FloorDifference * FloorRate)
	if in.BothEndsHaveElevator {
		floor *= ElevatorDiscount
	}
	total += floor

	price := int(math.Round(total))
	if price < 0 {
		price = 0
	}
	return price
}

// linePrice is the price of one snapshotted line item. The reassembly fee is
// charged together with the disassembly fee whenever disassembly is flagged; the
// separate NeedsReassemble flag is carried on the item but not checked here.
func (e *Engine) linePrice(item entities.EstimateLineItem) float64 {
	entry := e.catalog.Resolve(item.ItemType)
	price := float64(entry.BasePrice * item.Quantity)
	if item.IsFragile {
		price *= FragilityFactor
	}
	if item.NeedsDisassemble {
		price += DisassembleFee + ReassembleFee
	}
	return price
}

// ItemPrice quotes a single item type at the given quantity using the catalog
// defaults for fragility and disassembly. Unknown types resolve to the fallback
// entry.
func (e *Engine) ItemPrice(itemType string, quantity int) ItemQuote {
	entry := e.catalog.Resolve(itemType)
	line := entities.EstimateLineItem{
		ItemType:         itemType,
		Quantity:         quantity,
		IsFragile:        entry.IsFragile,
		NeedsDisassemble: entry.NeedsDisassemble,
	}
	return ItemQuote{
		ItemType:         entry.Type,
		Description:      entry.Description,
		Quantity:         quantity,
		BasePrice:        entry.BasePrice,
		TotalPrice:       int(math.Round(e.linePrice(line))),
		IsFragile:        entry.IsFragile,
		NeedsDisassemble: entry.NeedsDisassemble,
	}
}

// PriceRange derives the displayed bracket from the same rule table: the cheapest
// possible estimate (smallest apartment, no items, no floors) up to the largest
// apartment plus the priciest catalog line at its quantity cap. Display only,
// never persisted.
func (e *Engine) PriceRange() Range {
	minSurcharge, maxSurcharge := 0, 0
	first := true
	for _, s := range apartmentSurcharges {
		if first {
			minSurcharge, maxSurcharge = s, s
			first = false
			continue
		}
		if s < minSurcharge {
			minSurcharge = s
		}
		if s > maxSurcharge {
			maxSurcharge = s
		}
	}

	maxLine := 0.0
	for _, entry := range e.catalog.Entries() {
		line := e.linePrice(entities.EstimateLineItem{
			ItemType:         entry.Type,
			Quantity:         entry.MaxQuantity,
			IsFragile:        entry.IsFragile,
			NeedsDisassemble: entry.NeedsDisassemble,
		})
		if line > maxLine {
			maxLine = line
		}
	}

	return Range{
		Min: BasePrice + minSurcharge,
		Max: BasePrice + maxSurcharge + int(math.Round(maxLine)),
	}
}

func apartmentSurcharge(apartmentType string) int {
	if s, ok := apartmentSurcharges[apartmentType]; ok {
		return s
	}
	return DefaultApartmentSurcharge
}
