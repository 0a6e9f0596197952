package repository

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackRepository defines feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error

	// List returns feedback newest first; publicOnly restricts to approved entries.
	List(ctx context.Context, publicOnly bool) ([]*entity.Feedback, error)

	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	SetPublic(ctx context.Context, id uuid.UUID, public bool) (*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
