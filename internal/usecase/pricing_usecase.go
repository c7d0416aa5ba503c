package usecase

import (
	"errors"
	"strings"

	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/pricing"
	"mudafacil/internal/domain/validation"
)

var (
	ErrInvalidItemType = errors.New("invalid item type")
	ErrInvalidQuantity = errors.New("invalid item quantity")
)

// IPricingUseCase exposes the read-only pricing queries. Nothing here persists
// anything.

type IPricingUseCase interface {
	GetItemPrice(itemType string, quantity int) (pricing.ItemQuote, error)
	GetPriceRange() pricing.Range
	GetCatalog() []catalog.Entry
}

type PricingUseCase struct {
	pricer  *pricing.Engine
	catalog *catalog.Catalog
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(pricer *pricing.Engine, c *catalog.Catalog) *PricingUseCase {
	return &PricingUseCase{pricer: pricer, catalog: c}
}

func (u *PricingUseCase) GetItemPrice(itemType string, quantity int) (pricing.ItemQuote, error) {
	itemType = strings.TrimSpace(itemType)
	if itemType == "" {
		return pricing.ItemQuote{}, ErrInvalidItemType
	}
	if quantity < validation.QuantityMin || quantity > validation.QuantityMax {
		return pricing.ItemQuote{}, ErrInvalidQuantity
	}
	return u.pricer.ItemPrice(itemType, quantity), nil
}

func (u *PricingUseCase) GetPriceRange() pricing.Range {
	return u.pricer.PriceRange()
}

func (u *PricingUseCase) GetCatalog() []catalog.Entry {
	return u.catalog.Entries()
}
