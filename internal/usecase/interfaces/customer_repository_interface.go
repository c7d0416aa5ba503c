package interfaces

import (
	"context"

	"mudafacil/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Contract notes:
//   - FindByEmail/FindByPhone return a zero-value Customer when nothing matches.
//   - Create must be conditional on the email not existing and return
//     ErrCustomerExists when the condition fails, so find-or-create never
//     produces duplicates under concurrency.
//   - UpdateStats mutates only the fields enumerated by CustomerStatsUpdate.

type ICustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (entities.Customer, error)
	FindByPhone(ctx context.Context, phone string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	UpdateStats(ctx context.Context, email string, upd entities.CustomerStatsUpdate) error
}
