package interfaces

import (
	"context"

	"mudafacil/internal/domain/catalog"
)

// ICatalogSource delivers the furniture pricing table. It is read once at
// process start; the catalog built from it is immutable afterwards.
type ICatalogSource interface {
	GetAllFurniturePricing(ctx context.Context) ([]catalog.Entry, error)
}
