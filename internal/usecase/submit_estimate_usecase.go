package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mudafacil/internal/domain/entities"
	"mudafacil/internal/domain/pricing"
	"mudafacil/internal/domain/validation"
	"mudafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrCustomerConflict  = errors.New("customer conflict not recoverable")
)

const statsUpdateTimeout = 10 * time.Second

// SubmitResult is the caller-visible outcome of a successful submission.
type SubmitResult struct {
	EstimateID string
	CustomerID string
	TotalPrice int
}

// ISubmitEstimateUseCase exposes the estimate submission pipeline.
//
// Submit runs: validate -> resolve customer -> price -> atomic persist. The
// post-commit customer stats update happens asynchronously and never affects
// the returned result.

type ISubmitEstimateUseCase interface {
	Submit(ctx context.Context, cust validation.CustomerInput, move validation.MoveDetailsInput, items []validation.LineItemInput) (SubmitResult, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}

type SubmitEstimateUseCase struct {
	validator *validation.Validator
	pricer    *pricing.Engine
	customers interfaces.ICustomerRepository
	estimates interfaces.IEstimateRepository

	statsTracker tracker
}

var _ ISubmitEstimateUseCase = (*SubmitEstimateUseCase)(nil)

func NewSubmitEstimateUseCase(
	validator *validation.Validator,
	pricer *pricing.Engine,
	customers interfaces.ICustomerRepository,
	estimates interfaces.IEstimateRepository,
) *SubmitEstimateUseCase {
	return &SubmitEstimateUseCase{
		validator: validator,
		pricer:    pricer,
		customers: customers,
		estimates: estimates,
	}
}

func (u *SubmitEstimateUseCase) Submit(
	ctx context.Context,
	cust validation.CustomerInput,
	move validation.MoveDetailsInput,
	items []validation.LineItemInput,
) (SubmitResult, error) {
	// Validation must finish before any store is touched; a violation aborts
	// with zero side effects.
	validCust, details, lines, err := u.validator.ValidateSubmission(cust, move, items)
	if err != nil {
		return SubmitResult{}, err
	}

	customer, err := u.findOrCreateCustomer(ctx, validCust)
	if err != nil {
		return SubmitResult{}, err
	}

	total := u.pricer.TotalPrice(pricing.QuoteInput{
		ApartmentType:        details.ApartmentType,
		Items:                lines,
		FloorDifference:      details.FloorDifference(),
		BothEndsHaveElevator: details.BothEndsHaveElevator(),
	})

	now := time.Now().UTC()
	estimate := entities.Estimate{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		CustomerEmail: customer.Email,
		MoveDetails:   details,
		LineItems:     lines,
		TotalPrice:    total,
		Status:        entities.EstimateStatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.estimates.CreateWithLineItems(ctx, estimate)
	if err != nil {
		log.Printf("[estimate][usecase] atomic write failed estimate_id=%s err=%v", estimate.ID, err)
		return SubmitResult{}, err
	}

	// Aggregate stats are reporting metadata: update them off the request path
	// and swallow failures after logging. Name and phone come from the submission,
	// so a returning customer's changed identity is refreshed on the stored row.
	u.statsTracker.Go(func() {
		statsCtx, cancel := context.WithTimeout(context.Background(), statsUpdateTimeout)
		defer cancel()
		upd := entities.CustomerStatsUpdate{
			Name:         validCust.Name,
			Phone:        validCust.Phone,
			MovesInc:     1,
			SpentInc:     created.TotalPrice,
			LastMoveDate: now,
		}
		if err := u.customers.UpdateStats(statsCtx, customer.Email, upd); err != nil {
			log.Printf("[estimate][stats] update failed customer_email=%s estimate_id=%s err=%v", customer.Email, created.ID, err)
		}
	})

	return SubmitResult{
		EstimateID: created.ID,
		CustomerID: customer.ID,
		TotalPrice: created.TotalPrice,
	}, nil
}

// findOrCreateCustomer resolves the submitting identity: email first, then
// phone, then a conditional create. Losing the create race is recovered by a
// re-read, never surfaced.
func (u *SubmitEstimateUseCase) findOrCreateCustomer(ctx context.Context, in validation.CustomerInput) (entities.Customer, error) {
	if c, err := u.customers.FindByEmail(ctx, in.Email); err != nil {
		return entities.Customer{}, err
	} else if c.Email != "" {
		return c, nil
	}

	if c, err := u.customers.FindByPhone(ctx, in.Phone); err != nil {
		return entities.Customer{}, err
	} else if c.Email != "" {
		return c, nil
	}

	now := time.Now().UTC()
	fresh := entities.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.customers.Create(ctx, fresh)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, interfaces.ErrCustomerExists) {
		return entities.Customer{}, err
	}

	// Lost the race to a concurrent submission with the same email; the row is
	// there now, use it.
	log.Printf("[estimate][usecase] customer create raced, re-reading customer_email=%s", in.Email)
	existing, err := u.customers.FindByEmail(ctx, in.Email)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.Email == "" {
		return entities.Customer{}, ErrCustomerConflict
	}
	return existing, nil
}

func (u *SubmitEstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// WaitForStats blocks until every in-flight stats update has finished. Used by
// graceful shutdown and by tests.
func (u *SubmitEstimateUseCase) WaitForStats() {
	u.statsTracker.Wait()
}
