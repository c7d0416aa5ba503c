package request

import "mudafacil/internal/domain/validation"

// CustomerPayload is the raw customer block of a submission. Constraint checks
// live in the domain validator; binding tags only reject structurally broken
// payloads early.
type CustomerPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type MoveDetailsPayload struct {
	ApartmentType          string `json:"apartment_type" binding:"required"`
	PreferredMoveDate      string `json:"preferred_move_date" binding:"required"`
	CurrentAddress         string `json:"current_address" binding:"required"`
	DestinationAddress     string `json:"destination_address" binding:"required"`
	OriginFloor            int    `json:"origin_floor"`
	DestinationFloor       int    `json:"destination_floor"`
	OriginHasElevator      bool   `json:"origin_has_elevator"`
	DestinationHasElevator bool   `json:"destination_has_elevator"`
	AdditionalNotes        string `json:"additional_notes"`
}

// LineItemPayload is one furniture entry. Nil flags fall back to the catalog
// defaults for the item type.
type LineItemPayload struct {
	Type             string `json:"type" binding:"required"`
	Quantity         int    `json:"quantity" binding:"required"`
	IsFragile        *bool  `json:"is_fragile"`
	NeedsDisassemble *bool  `json:"needs_disassemble"`
	NeedsReassemble  *bool  `json:"needs_reassemble"`
	Comments         string `json:"comments"`
}

// SubmitEstimateRequest is the full submission payload.
type SubmitEstimateRequest struct {
	Customer    CustomerPayload    `json:"customer" binding:"required"`
	MoveDetails MoveDetailsPayload `json:"move_details" binding:"required"`
	Items       []LineItemPayload  `json:"items" binding:"required"`
}

// ToInputs maps the transport payload onto the validator's input types.
func (r SubmitEstimateRequest) ToInputs() (validation.CustomerInput, validation.MoveDetailsInput, []validation.LineItemInput) {
	cust := validation.CustomerInput{
		Name:    r.Customer.Name,
		Email:   r.Customer.Email,
		Phone:   r.Customer.Phone,
		Address: r.Customer.Address,
		Notes:   r.Customer.Notes,
	}
	move := validation.MoveDetailsInput{
		ApartmentType:          r.MoveDetails.ApartmentType,
		PreferredMoveDate:      r.MoveDetails.PreferredMoveDate,
		CurrentAddress:         r.MoveDetails.CurrentAddress,
		DestinationAddress:     r.MoveDetails.DestinationAddress,
		OriginFloor:            r.MoveDetails.OriginFloor,
		DestinationFloor:       r.MoveDetails.DestinationFloor,
		OriginHasElevator:      r.MoveDetails.OriginHasElevator,
		DestinationHasElevator: r.MoveDetails.DestinationHasElevator,
		AdditionalNotes:        r.MoveDetails.AdditionalNotes,
	}
	items := make([]validation.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, validation.LineItemInput{
			ItemType:         it.Type,
			Quantity:         it.Quantity,
			IsFragile:        it.IsFragile,
			NeedsDisassemble: it.NeedsDisassemble,
			NeedsReassemble:  it.NeedsReassemble,
			Comments:         it.Comments,
		})
	}
	return cust, move, items
}
