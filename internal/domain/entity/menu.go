package entity

import (
	"strconv"
	"strings"
	"time"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
)

// SelectionType controls how many options of a modifier group may be chosen.
type SelectionType string

const (
	SelectionSingle   SelectionType = "single"
	SelectionMultiple SelectionType = "multiple"
)

// IsValid checks if the SelectionType is a valid value.
func (s SelectionType) IsValid() bool {
	return s == SelectionSingle || s == SelectionMultiple
}

// ModifierOption is one choice within a group, priced as a delta on the item.
type ModifierOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ModifierGroup is an ordered set of options such as "Spice level".
type ModifierGroup struct {
	GroupName     string           `json:"groupName"`
	SelectionType SelectionType    `json:"selectionType"`
	Options       []ModifierOption `json:"options"`
}

// MenuItem is a sellable dish. Modifiers live and die with the item.
type MenuItem struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Price      float64         `json:"price"`
	Category   string          `json:"category"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	InStock    bool            `json:"inStock"`
	IsFeatured bool            `json:"isFeatured"`
	Modifiers  []ModifierGroup `json:"modifiers"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Validate checks name, price, category and every modifier group.
func (m *MenuItem) Validate() error {
	var fields domainerrors.FieldCollector
	fields.Check(strings.TrimSpace(m.Name) != "", "name", "Name is required")
	fields.Check(m.Price > 0, "price", "Price must be greater than 0")
	fields.Check(strings.TrimSpace(m.Category) != "", "category", "Category is required")

	for i, group := range m.Modifiers {
		prefix := "modifiers[" + strconv.Itoa(i) + "]"
		fields.Check(strings.TrimSpace(group.GroupName) != "", prefix+".groupName", "Group name is required")
		fields.Check(group.SelectionType.IsValid(), prefix+".selectionType", "Selection type must be single or multiple")
		for j, option := range group.Options {
			optPrefix := prefix + ".options[" + strconv.Itoa(j) + "]"
			fields.Check(strings.TrimSpace(option.Name) != "", optPrefix+".name", "Option name is required")
		}
	}

	return fields.Err()
}
