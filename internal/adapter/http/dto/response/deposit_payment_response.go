package response

import (
	"time"

	"mudafacil/internal/domain/entities"
)

type DepositPaymentResponse struct {
	ID         string    `json:"id"`
	EstimateID string    `json:"estimate_id"`
	Amount     int       `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		ID:         p.ID,
		EstimateID: p.EstimateID,
		Amount:     p.Amount,
		Date:       p.Date,
		Status:     string(p.Status),
	}
}

func FromDepositPayments(payments []entities.DepositPayment) []DepositPaymentResponse {
	out := make([]DepositPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromDepositPayment(p))
	}
	return out
}
