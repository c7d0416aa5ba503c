package entities

import "time"

// Customer is a moving-service customer, deduplicated by email.
//
// Storage model (DynamoDB):
//   - customers table, PK: email (natural key, closes the find-or-create race)
//   - GSI (phone-index): phone
//
// The core only ever creates a customer or updates its aggregate stats; it never
// deletes one.
type Customer struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	TotalMoves   int        `json:"total_moves"`
	TotalSpent   int        `json:"total_spent"`
	LastMoveDate *time.Time `json:"last_move_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CustomerStatsUpdate enumerates exactly the fields mutated after a successful
// estimate. Anything not listed here is never touched by the stats path.
type CustomerStatsUpdate struct {
	Name         string
	Phone        string
	MovesInc     int
	SpentInc     int
	LastMoveDate time.Time
}
