// Package validation schema-checks submission payloads before any side effect.
// The validator runs every rule and reports all violated fields at once, so a
// caller can fix a form in one pass.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/entities"
)

const (
	NameMinLen    = 2
	NameMaxLen    = 50
	AddressMinLen = 5
	QuantityMin   = 1
	QuantityMax   = 50

	moveDateLayout = "2006-01-02"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Brazilian mobile numbers: optional +55, DDD, leading 9 plus eight digits.
	phonePattern = regexp.MustCompile(`^(\+55\s?)?\(?[1-9][0-9]\)?\s?9[0-9]{4}-?[0-9]{4}$`)
)

// FieldError is one violated constraint, keyed by the domain field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a submission. It is always
// caller-fixable and never partially applied.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// CustomerInput is the raw customer payload before validation.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// MoveDetailsInput is the raw move-logistics payload before validation. The date
// arrives as a string so the parse failure surfaces as a field error, not a
// transport error.
type MoveDetailsInput struct {
	ApartmentType          string
	PreferredMoveDate      string
	CurrentAddress         string
	DestinationAddress     string
	OriginFloor            int
	DestinationFloor       int
	OriginHasElevator      bool
	DestinationHasElevator bool
	AdditionalNotes        string
}

// LineItemInput is one raw furniture entry. Nil flags mean "use the catalog
// default".
type LineItemInput struct {
	ItemType         string
	Quantity         int
	IsFragile        *bool
	NeedsDisassemble *bool
	NeedsReassemble  *bool
	Comments         string
}

// Validator checks submissions against the fixed rules and the catalog caps.
// It is side-effect free.
type Validator struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func New(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c, now: time.Now}
}

// ValidateSubmission checks all three payloads and either returns the typed,
// snapshot-ready values or a *ValidationError listing every violation.
func (v *Validator) ValidateSubmission(
	cust CustomerInput,
	move MoveDetailsInput,
	items []LineItemInput,
) (CustomerInput, entities.MoveDetails, []entities.EstimateLineItem, error) {
	var verr ValidationError

	cust.Name = strings.TrimSpace(cust.Name)
	cust.Email = strings.TrimSpace(cust.Email)
	cust.Phone = strings.TrimSpace(cust.Phone)
	cust.Address = strings.TrimSpace(cust.Address)

	if n := utf8.RuneCountInString(cust.Name); n < NameMinLen || n > NameMaxLen {
		verr.add("name", fmt.Sprintf("must be between %d and %d characters", NameMinLen, NameMaxLen))
	}
	if !emailPattern.MatchString(cust.Email) {
		verr.add("email", "must be a well-formed email address")
	}
	if !phonePattern.MatchString(cust.Phone) {
		verr.add("phone", "must be a valid mobile number")
	}

	details := v.validateMoveDetails(move, &verr)
	lines := v.validateLineItems(items, &verr)

	if len(verr.Fields) > 0 {
		return CustomerInput{}, entities.MoveDetails{}, nil, &verr
	}
	return cust, details, lines, nil
}

func (v *Validator) validateMoveDetails(move MoveDetailsInput, verr *ValidationError) entities.MoveDetails {
	if !entities.IsValidApartmentType(move.ApartmentType) {
		verr.add("apartmentType", fmt.Sprintf("must be one of %s", strings.Join(entities.ApartmentTypes, ", ")))
	}

	var moveDate time.Time
	parsed, err := time.Parse(moveDateLayout, strings.TrimSpace(move.PreferredMoveDate))
	if err != nil {
		verr.add("preferredMoveDate", "must be a date in YYYY-MM-DD format")
	} else if !parsed.After(v.now()) {
		verr.add("preferredMoveDate", "must be in the future")
	} else {
		moveDate = parsed
	}

	current := strings.TrimSpace(move.CurrentAddress)
	destination := strings.TrimSpace(move.DestinationAddress)
	if utf8.RuneCountInString(current) < AddressMinLen {
		verr.add("currentAddress", fmt.Sprintf("must be at least %d characters", AddressMinLen))
	}
	if utf8.RuneCountInString(destination) < AddressMinLen {
		verr.add("destinationAddress", fmt.Sprintf("must be at least %d characters", AddressMinLen))
	}
	if move.OriginFloor < 0 {
		verr.add("originFloor", "must not be negative")
	}
	if move.DestinationFloor < 0 {
		verr.add("destinationFloor", "must not be negative")
	}

	return entities.MoveDetails{
		ApartmentType:          move.ApartmentType,
		PreferredMoveDate:      moveDate,
		CurrentAddress:         current,
		DestinationAddress:     destination,
		OriginFloor:            move.OriginFloor,
		DestinationFloor:       move.DestinationFloor,
		OriginHasElevator:      move.OriginHasElevator,
		DestinationHasElevator: move.DestinationHasElevator,
		AdditionalNotes:        strings.TrimSpace(move.AdditionalNotes),
	}
}

func (v *Validator) validateLineItems(items []LineItemInput, verr *ValidationError) []entities.EstimateLineItem {
	if len(items) == 0 {
		verr.add("items", "at least one item is required")
		return nil
	}

	lines := make([]entities.EstimateLineItem, 0, len(items))
	for i, item := range items {
		itemType := strings.TrimSpace(item.ItemType)
		if itemType == "" {
			verr.add(fmt.Sprintf("items[%d].type", i), "must not be empty")
			continue
		}

		entry := v.catalog.Resolve(itemType)
		if item.Quantity < QuantityMin || item.Quantity > QuantityMax {
			verr.add(fmt.Sprintf("items[%d].quantity", i), fmt.Sprintf("must be between %d and %d", QuantityMin, QuantityMax))
		} else if item.Quantity > entry.MaxQuantity {
			verr.add(fmt.Sprintf("items[%d].quantity", i), fmt.Sprintf("must not exceed %d for %s", entry.MaxQuantity, entry.Type))
		}

		lines = append(lines, entities.EstimateLineItem{
			ItemType:         itemType,
			Quantity:         item.Quantity,
			IsFragile:        boolOrDefault(item.IsFragile, entry.IsFragile),
			NeedsDisassemble: boolOrDefault(item.NeedsDisassemble, entry.NeedsDisassemble),
			NeedsReassemble:  boolOrDefault(item.NeedsReassemble, entry.NeedsDisassemble),
			Comments:         strings.TrimSpace(item.Comments),
		})
	}
	return lines
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasField reports whether the error carries an entry for the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
