package entity

import (
	"strings"
	"time"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
)

// Feedback is a rating left by a visitor. It is hidden until an admin publishes it.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks name, message and the 1..5 rating range.
func (f *Feedback) Validate() error {
	var fields domainerrors.FieldCollector
	fields.Check(strings.TrimSpace(f.Name) != "", "name", "Name is required")
	fields.Check(strings.TrimSpace(f.Message) != "", "message", "Message is required")
	fields.Check(f.Rating >= 1 && f.Rating <= 5, "rating", "Rating must be between 1 and 5")

	return fields.Err()
}
