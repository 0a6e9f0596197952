package impl

import (
	"context"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockRepo "dabeli/internal/mocks/repository"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedbackService(t *testing.T) (usecase.FeedbackUsecase, *mockRepo.MockFeedbackRepository) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)

	return NewFeedbackService(FeedbackServiceParams{FeedbackRepo: feedbackRepo, Logger: testLogger()}), feedbackRepo
}

func TestFeedbackService_Submit(t *testing.T) {
	srv, feedbackRepo := createTestFeedbackService(t)
	ctx := context.Background()

	feedbackRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(f *entity.Feedback) bool {
			return !f.IsPublic && !f.IsRead && f.Name == "Meera"
		})).
		Return(nil)

	feedback, err := srv.Submit(ctx, &usecase.FeedbackInput{Name: " Meera ", Rating: 5, Message: "Best dabeli in town"})
	require.NoError(t, err)
	assert.Equal(t, 5, feedback.Rating)
}

func TestFeedbackService_Submit_RatingOutOfRange(t *testing.T) {
	srv, _ := createTestFeedbackService(t)

	for _, rating := range []int{0, 6} {
		_, err := srv.Submit(context.Background(), &usecase.FeedbackInput{Name: "Meera", Rating: rating, Message: "ok"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestFeedbackService_ListPublicOnlyApproved(t *testing.T) {
	srv, feedbackRepo := createTestFeedbackService(t)
	ctx := context.Background()

	feedbackRepo.EXPECT().List(ctx, true).Return([]*entity.Feedback{{IsPublic: true}}, nil)

	feedback, err := srv.ListPublic(ctx)
	require.NoError(t, err)
	assert.Len(t, feedback, 1)
}

func TestFeedbackService_Moderation(t *testing.T) {
	srv, feedbackRepo := createTestFeedbackService(t)
	ctx := context.Background()
	id := uuid.New()

	feedbackRepo.EXPECT().MarkRead(ctx, id).Return(&entity.Feedback{ID: id, IsRead: true}, nil)
	feedbackRepo.EXPECT().SetPublic(ctx, id, true).Return(&entity.Feedback{ID: id, IsPublic: true}, nil)
	feedbackRepo.EXPECT().Delete(ctx, id).Return(domainerrors.ErrFeedbackNotFound)

	read, err := srv.MarkRead(ctx, id)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	published, err := srv.SetPublic(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublic)

	assert.ErrorIs(t, srv.Delete(ctx, id), domainerrors.ErrFeedbackNotFound)
}
