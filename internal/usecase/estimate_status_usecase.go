package usecase

import (
	"context"
	"errors"
	"strings"

	"mudafacil/internal/domain/entities"
	"mudafacil/internal/usecase/interfaces"
)

var ErrInvalidStatusTransition = errors.New("invalid estimate status transition")

// IEstimateStatusUseCase drives the estimate lifecycle outside the submission
// pipeline: pendente -> aprovado|rejeitado, aprovado -> concluido.

type IEstimateStatusUseCase interface {
	Approve(ctx context.Context, id string) (entities.Estimate, error)
	Reject(ctx context.Context, id string) (entities.Estimate, error)
	Complete(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateStatusUseCase struct {
	estimates interfaces.IEstimateRepository
}

var _ IEstimateStatusUseCase = (*EstimateStatusUseCase)(nil)

func NewEstimateStatusUseCase(estimates interfaces.IEstimateRepository) *EstimateStatusUseCase {
	return &EstimateStatusUseCase{estimates: estimates}
}

func (u *EstimateStatusUseCase) Approve(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusAprovado)
}

func (u *EstimateStatusUseCase) Reject(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusRejeitado)
}

func (u *EstimateStatusUseCase) Complete(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusConcluido)
}

func (u *EstimateStatusUseCase) transition(ctx context.Context, id string, next entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	current, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.Estimate{}, ErrInvalidStatusTransition
	}

	updated, err := u.estimates.UpdateStatus(ctx, id, current.Status, next)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		// Someone else moved the status between our read and the conditional
		// update; the transition we validated no longer applies.
		return entities.Estimate{}, ErrInvalidStatusTransition
	}
	return updated, nil
}
