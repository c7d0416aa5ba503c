package interfaces

import (
	"context"

	"mudafacil/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Contract notes:
//   - CreateWithLineItems writes the header and every line row as one atomic
//     unit; either everything lands or nothing does.
//   - GetByID loads the header plus its ordered line-item snapshot and returns a
//     zero-value Estimate when nothing matches.
//   - UpdateStatus is conditional on the current status still being `expected`
//     and returns a zero-value Estimate when the condition fails, so concurrent
//     transitions cannot both win.

type IEstimateRepository interface {
	CreateWithLineItems(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.EstimateStatus) (entities.Estimate, error)
}
