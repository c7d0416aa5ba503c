package entities

import "time"

// ApartmentTypes is the fixed set of apartment size classes accepted by validation.
// The pricing layer keeps its own surcharge table keyed by the same values.
var ApartmentTypes = []string{"1", "2", "3", "4", "5"}

// IsValidApartmentType reports whether t is one of the fixed size classes.
func IsValidApartmentType(t string) bool {
	for _, v := range ApartmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// MoveDetails holds the logistics of a move, snapshotted under the estimate.
type MoveDetails struct {
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

// FloorDifference is the absolute distance between origin and destination floors.
func (m MoveDetails) FloorDifference() int {
	d := m.OriginFloor - m.DestinationFloor
	if d < 0 {
		d = -d
	}
	return d
}

// BothEndsHaveElevator reports whether the elevator discount applies.
func (m MoveDetails) BothEndsHaveElevator() bool {
	return m.OriginHasElevator && m.DestinationHasElevator
}
