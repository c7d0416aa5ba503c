package response

import (
	"time"

	"mudafacil/internal/domain/entities"
)

// SubmitEstimateResponse is the caller-visible outcome of a submission.
type SubmitEstimateResponse struct {
	EstimateID string `json:"estimate_id"`
	CustomerID string `json:"customer_id"`
	TotalPrice int    `json:"total_price"`
}

type LineItemResponse struct {
	Type             string `json:"type"`
	Quantity         int    `json:"quantity"`
	IsFragile        bool   `json:"is_fragile"`
	NeedsDisassemble bool   `json:"needs_disassemble"`
	NeedsReassemble  bool   `json:"needs_reassemble"`
	Comments         string `json:"comments,omitempty"`
}

type MoveDetailsResponse struct {
	ApartmentType          string    `json:"apartment_type"`
	PreferredMoveDate      time.Time `json:"preferred_move_date"`
	CurrentAddress         string    `json:"current_address"`
	DestinationAddress     string    `json:"destination_address"`
	OriginFloor            int       `json:"origin_floor"`
	DestinationFloor       int       `json:"destination_floor"`
	OriginHasElevator      bool      `json:"origin_has_elevator"`
	DestinationHasElevator bool      `json:"destination_has_elevator"`
	AdditionalNotes        string    `json:"additional_notes,omitempty"`
}

type EstimateResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerEmail string              `json:"customer_email"`
	MoveDetails   MoveDetailsResponse `json:"move_details"`
	LineItems     []LineItemResponse  `json:"line_items"`
	TotalPrice    int                 `json:"total_price"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	lines := make([]LineItemResponse, 0, len(e.LineItems))
	for _, l := range e.LineItems {
		lines = append(lines, LineItemResponse{
			Type:             l.ItemType,
			Quantity:         l.Quantity,
			IsFragile:        l.IsFragile,
			NeedsDisassemble: l.NeedsDisassemble,
			NeedsReassemble:  l.NeedsReassemble,
			Comments:         l.Comments,
		})
	}
	return EstimateResponse{
		ID:            e.ID,
		CustomerID:    e.CustomerID,
		CustomerEmail: e.CustomerEmail,
		MoveDetails: MoveDetailsResponse{
			ApartmentType:          e.MoveDetails.ApartmentType,
			PreferredMoveDate:      e.MoveDetails.PreferredMoveDate,
			CurrentAddress:         e.MoveDetails.CurrentAddress,
			DestinationAddress:     e.MoveDetails.DestinationAddress,
			OriginFloor:            e.MoveDetails.OriginFloor,
			DestinationFloor:       e.MoveDetails.DestinationFloor,
			OriginHasElevator:      e.MoveDetails.OriginHasElevator,
			DestinationHasElevator: e.MoveDetails.DestinationHasElevator,
			AdditionalNotes:        e.MoveDetails.AdditionalNotes,
		},
		LineItems:  lines,
		TotalPrice: e.TotalPrice,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
