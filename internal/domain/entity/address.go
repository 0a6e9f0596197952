package entity

import (
	"regexp"
	"strings"
	"time"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
)

// AddressType labels a saved customer address.
type AddressType string

const (
	AddressTypeHome  AddressType = "Home"
	AddressTypeWork  AddressType = "Work"
	AddressTypeOther AddressType = "Other"
)

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ValidPincode reports whether s is a six digit postal code not starting with zero.
func ValidPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// Address is a saved delivery location owned by a customer.
type Address struct {
	ID          uuid.UUID   `json:"id"`
	CustomerID  uuid.UUID   `json:"customerId"`
	AddressType AddressType `json:"addressType"`
	Street      string      `json:"street"`
	City        string      `json:"city"`
	Pincode     string      `json:"pincode"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Validate checks address type, street, city and pincode.
func (a *Address) Validate() error {
	var fields domainerrors.FieldCollector
	fields.Check(a.AddressType.IsValid(), "addressType", "Address type must be Home, Work or Other")
	fields.Check(strings.TrimSpace(a.Street) != "", "street", "Street is required")
	fields.Check(strings.TrimSpace(a.City) != "", "city", "City is required")
	fields.Check(ValidPincode(a.Pincode), "pincode", "Pincode must be a valid 6 digit code")

	return fields.Err()
}
