package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mudafacil/internal/domain/entities"
	"mudafacil/internal/usecase/interfaces"
	mock_interfaces "mudafacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDepositPaymentUseCase_CreateForEstimate(t *testing.T) {
	payer := json.RawMessage(`{"payer":{"email":"maria@example.com"},"payment_method_id":"pix"}`)

	t.Run("invalid estimate id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForEstimate(context.Background(), "  ", payer)
		if !errors.Is(err, ErrInvalidDepositEstimate) {
			t.Fatalf("expected ErrInvalidDepositEstimate, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil)
		for _, payload := range []json.RawMessage{nil, json.RawMessage("{broken")} {
			if _, err := uc.CreateForEstimate(context.Background(), "est-1", payload); !errors.Is(err, ErrInvalidDepositPayload) {
				t.Fatalf("expected ErrInvalidDepositPayload, got %v", err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, estimates, gateway)
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, estimates, gateway)
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusPendente}, nil)

		_, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if !errors.Is(err, ErrEstimateNotApproved) {
			t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
		}
	})

	t.Run("approved payment recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(payments, estimates, gateway)

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAprovado, TotalPrice: 1550}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
				var parsed map[string]any
				if err := json.Unmarshal(req, &parsed); err != nil {
					t.Fatalf("unexpected request payload: %v", err)
				}
				// 10% of 1550.
				if parsed["transaction_amount"] != float64(155) {
					t.Fatalf("expected amount 155, got %v", parsed["transaction_amount"])
				}
				if parsed["external_reference"] != "est-1" {
					t.Fatalf("expected external_reference est-1, got %v", parsed["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DepositPayment{})).DoAndReturn(
			func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
				if p.ID != "mp-1" || p.EstimateID != "est-1" || p.Amount != 155 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("expected aprovado, got %s", p.Status)
				}
				return p, nil
			},
		)

		res, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 155 || res.Status != entities.PaymentStatusAprovado {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("declined payment recorded as negado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(payments, estimates, gateway)

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAprovado, TotalPrice: 1000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{"id":"mp-2","status":"rejected"}`), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
				if p.Status != entities.PaymentStatusNegado {
					t.Fatalf("expected negado, got %s", p.Status)
				}
				return p, nil
			},
		)

		res, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusNegado {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("duplicate deposit surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(payments, estimates, gateway)

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAprovado, TotalPrice: 1000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, interfaces.ErrDepositExists)

		_, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if !errors.Is(err, interfaces.ErrDepositExists) {
			t.Fatalf("expected ErrDepositExists, got %v", err)
		}
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, estimates, gateway)

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAprovado, TotalPrice: 1000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.CreateForEstimate(context.Background(), "est-1", payer)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_ListByEstimateID(t *testing.T) {
	t.Run("invalid estimate id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByEstimateID(context.Background(), "")
		if !errors.Is(err, ErrInvalidDepositEstimate) {
			t.Fatalf("expected ErrInvalidDepositEstimate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(payments, nil, nil)
		expected := []entities.DepositPayment{{ID: "mp-1", EstimateID: "est-1"}}
		payments.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(expected, nil)

		res, err := uc.ListByEstimateID(context.Background(), " est-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "mp-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
