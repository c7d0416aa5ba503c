package entities

import "time"

// EstimateStatus represents the lifecycle of a moving estimate (orçamento de mudança).
//
// Domain notes:
//   - The estimate-service is the source of truth for estimate state.
//   - Transitions are explicit: pendente -> aprovado|rejeitado, aprovado -> concluido.
//     Nothing leaves rejeitado or concluido.

type EstimateStatus string

const (
	EstimateStatusPendente  EstimateStatus = "pendente"
	EstimateStatusAprovado  EstimateStatus = "aprovado"
	EstimateStatusRejeitado EstimateStatus = "rejeitado"
	EstimateStatusConcluido EstimateStatus = "concluido"
)

// CanTransitionTo reports whether next is a valid successor of the current status.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	switch s {
	case EstimateStatusPendente:
		return next == EstimateStatusAprovado || next == EstimateStatusRejeitado
	case EstimateStatusAprovado:
		return next == EstimateStatusConcluido
	default:
		return false
	}
}

// EstimateLineItem is one furniture entry of an estimate, snapshotted at submission
// time. Flags are the effective values (request override or catalog default), so a
// later catalog change never alters a stored estimate.
type EstimateLineItem struct {
	ItemType         string `json:"item_type"`
	Quantity         int    `json:"quantity"`
	IsFragile        bool   `json:"is_fragile"`
	NeedsDisassemble bool   `json:"needs_disassemble"`
	NeedsReassemble  bool   `json:"needs_reassemble"`
	Comments         string `json:"comments,omitempty"`
}

// Estimate is the priced moving estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - estimates table, PK: id
//   - estimate_line_items table, PK: estimate_id, SK: line_no
//   - header + line rows are written in a single TransactWriteItems
//
// Monetary representation:
//   - TotalPrice is an integer amount in whole currency units, immutable once stored.
//
// The estimate references its Customer by id/email only; the customer record outlives
// any single estimate.
type Estimate struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	CustomerEmail string             `json:"customer_email"`
	MoveDetails   MoveDetails        `json:"move_details"`
	LineItems     []EstimateLineItem `json:"line_items"`
	TotalPrice    int                `json:"total_price"`
	Status        EstimateStatus     `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
