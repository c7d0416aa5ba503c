package repository

import (
	"context"

	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/usecase/interfaces"
)

// StaticCatalogSource serves the built-in furniture pricing table. The catalog
// is read once at startup; this source never changes afterwards.
type StaticCatalogSource struct{}

var _ interfaces.ICatalogSource = (*StaticCatalogSource)(nil)

func NewStaticCatalogSource() *StaticCatalogSource {
	return &StaticCatalogSource{}
}

func (s *StaticCatalogSource) GetAllFurniturePricing(_ context.Context) ([]catalog.Entry, error) {
	return catalog.DefaultEntries(), nil
}
