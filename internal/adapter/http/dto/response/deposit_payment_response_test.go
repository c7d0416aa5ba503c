package response

import (
	"testing"
	"time"

	"mudafacil/internal/domain/entities"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:         "mp-1",
		EstimateID: "est-1",
		Amount:     155,
		Date:       now,
		Status:     entities.PaymentStatusAprovado,
	}

	res := FromDepositPayment(p)
	if res.ID != "mp-1" || res.EstimateID != "est-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 155 || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}

func TestFromDepositPayments(t *testing.T) {
	out := FromDepositPayments(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}

	payments := []entities.DepositPayment{
		{ID: "mp-1", Status: entities.PaymentStatusAprovado},
		{ID: "mp-2", Status: entities.PaymentStatusNegado},
	}
	out = FromDepositPayments(payments)
	if len(out) != 2 || out[0].ID != "mp-1" || out[1].Status != "negado" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
