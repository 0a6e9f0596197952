package postgres

import (
	"context"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := &model.FeedbackModel{
		Name:     feedback.Name,
		Contact:  feedback.Contact,
		Rating:   feedback.Rating,
		Message:  feedback.Message,
		IsRead:   feedback.IsRead,
		IsPublic: feedback.IsPublic,
	}

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.Invalid("rating", "Rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

// List returns feedback newest first.
func (repo *feedbackRepository) List(ctx context.Context, publicOnly bool) ([]*entity.Feedback, error) {
	query := repo.db.WithContext(ctx).Model(&model.FeedbackModel{})
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var feedbackModels []*model.FeedbackModel
	if err := query.Order("created_at DESC").Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedback := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedback = append(feedback, toFeedbackDomain(feedbackM))
	}

	return feedback, nil
}

func (repo *feedbackRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	return repo.update(ctx, id, "is_read", true)
}

func (repo *feedbackRepository) SetPublic(ctx context.Context, id uuid.UUID, public bool) (*entity.Feedback, error) {
	return repo.update(ctx, id, "is_public", public)
}

func (repo *feedbackRepository) update(ctx context.Context, id uuid.UUID, column string, value bool) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	result := repo.db.WithContext(ctx).
		Model(&feedbackM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update feedback %s", column)
	}

	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrFeedbackNotFound
	}

	return toFeedbackDomain(&feedbackM), nil
}

func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FeedbackModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete feedback")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrFeedbackNotFound
	}

	return nil
}

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	return &entity.Feedback{
		ID:        data.ID,
		Name:      data.Name,
		Contact:   data.Contact,
		Rating:    data.Rating,
		Message:   data.Message,
		IsRead:    data.IsRead,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
