package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores feedback unread and hidden until an admin publishes it.
func (srv *feedbackService) Submit(ctx context.Context, input *usecase.FeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		Name:    strings.TrimSpace(input.Name),
		Contact: strings.TrimSpace(input.Contact),
		Rating:  input.Rating,
		Message: strings.TrimSpace(input.Message),
	}

	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Info("Feedback received", slog.String("feedback_id", feedback.ID.String()), slog.Int("rating", feedback.Rating))

	return feedback, nil
}

func (srv *feedbackService) ListPublic(ctx context.Context) ([]*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public feedback")
	}

	return feedback, nil
}

func (srv *feedbackService) ListAll(ctx context.Context) ([]*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedback, nil
}

func (srv *feedbackService) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.MarkRead(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark feedback read")
	}

	return feedback, nil
}

func (srv *feedbackService) SetPublic(ctx context.Context, id uuid.UUID, public bool) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.SetPublic(ctx, id, public)
	if err != nil {
		return nil, errors.Wrap(err, "failed to change feedback visibility")
	}

	srv.log(ctx).Info("Feedback visibility changed", slog.String("feedback_id", id.String()), slog.Bool("public", public))

	return feedback, nil
}

func (srv *feedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.feedbackRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}
