package usecase

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackInput is a public feedback submission.
type FeedbackInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// FeedbackUsecase covers guest feedback and its moderation.
type FeedbackUsecase interface {
	Submit(ctx context.Context, input *FeedbackInput) (*entity.Feedback, error)

	// ListPublic returns only admin-approved feedback.
	ListPublic(ctx context.Context) ([]*entity.Feedback, error)
	ListAll(ctx context.Context) ([]*entity.Feedback, error)

	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	SetPublic(ctx context.Context, id uuid.UUID, public bool) (*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
