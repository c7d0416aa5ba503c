package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"mudafacil/internal/domain/entities"
	"mudafacil/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound        = errors.New("deposit payment not found")
	ErrInvalidDepositPayload  = errors.New("invalid deposit payload")
	ErrEstimateNotApproved    = errors.New("estimate not approved")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrInvalidDepositEstimate = errors.New("invalid estimate_id")
)

// DepositRate is the fraction of the estimate total charged as reservation
// deposit on approval.
const DepositRate = 0.10

// IDepositPaymentUseCase charges and records the reservation deposit for an
// approved estimate.

type IDepositPaymentUseCase interface {
	CreateForEstimate(ctx context.Context, estimateID string, payerPayload json.RawMessage) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	payments  interfaces.IDepositPaymentRepository
	estimates interfaces.IEstimateRepository
	gateway   interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(
	payments interfaces.IDepositPaymentRepository,
	estimates interfaces.IEstimateRepository,
	gateway interfaces.IPaymentGateway,
) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{payments: payments, estimates: estimates, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateForEstimate(ctx context.Context, estimateID string, payerPayload json.RawMessage) (entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.DepositPayment{}, ErrInvalidDepositEstimate
	}
	if len(payerPayload) == 0 || !json.Valid(payerPayload) {
		return entities.DepositPayment{}, ErrInvalidDepositPayload
	}
	if u.gateway == nil {
		log.Printf("[deposit][usecase] gateway not configured estimate_id=%s", estimateID)
		return entities.DepositPayment{}, ErrGatewayNotConfigured
	}

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if est.ID == "" {
		return entities.DepositPayment{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusAprovado {
		log.Printf("[deposit][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.DepositPayment{}, ErrEstimateNotApproved
	}

	amount := int(math.Round(float64(est.TotalPrice) * DepositRate))

	// The stored estimate is the source of truth for the charged amount; the
	// caller only supplies payer data.
	var req map[string]any
	if err := json.Unmarshal(payerPayload, &req); err != nil {
		return entities.DepositPayment{}, ErrInvalidDepositPayload
	}
	req["transaction_amount"] = amount
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = est.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Reserva de mudança %s", est.ID)
	}
	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[deposit][usecase] gateway failed estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}

	status := entities.PaymentStatusNegado
	if providerStatus == "approved" {
		status = entities.PaymentStatusAprovado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		EstimateID:         est.ID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[deposit][usecase] repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] deposit recorded estimate_id=%s payment_id=%s status=%s amount=%d", estimateID, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *DepositPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidDepositEstimate
	}
	return u.payments.ListByEstimateID(ctx, estimateID)
}
