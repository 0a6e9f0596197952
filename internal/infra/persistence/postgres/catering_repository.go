package postgres

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const eventDateLayout = time.DateOnly

// cateringRepository implements the repository.CateringRepository interface.
type cateringRepository struct {
	db *gorm.DB
}

// NewCateringRepository is the constructor for cateringRepository.
func NewCateringRepository(db *gorm.DB) repository.CateringRepository {
	return &cateringRepository{db: db}
}

func (repo *cateringRepository) Create(ctx context.Context, request *entity.CateringRequest) error {
	requestM, err := fromCateringDomain(request)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create catering request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

func (repo *cateringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CateringRequest, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *cateringRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.CateringRequest, error) {
	var requestM model.CateringRequestModel

	if err := db.Where("id = ?", id).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCateringRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find catering request by ID")
	}

	return toCateringDomain(&requestM), nil
}

// FindByCustomer returns the customer's requests, newest first.
func (repo *cateringRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CateringRequest, error) {
	var requestModels []*model.CateringRequestModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find catering requests by customer")
	}

	return toCateringDomains(requestModels), nil
}

// List returns all requests, newest first, optionally filtered by status.
func (repo *cateringRepository) List(ctx context.Context, status *entity.CateringStatus) ([]*entity.CateringRequest, error) {
	query := repo.db.WithContext(ctx).Model(&model.CateringRequestModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var requestModels []*model.CateringRequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list catering requests")
	}

	return toCateringDomains(requestModels), nil
}

// UpdateStatus is a compare-and-swap on the status column; adminNotes is written only when non-nil.
func (repo *cateringRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	expected, next entity.CateringStatus,
	adminNotes *string,
) (*entity.CateringRequest, error) {
	updates := map[string]any{"status": string(next)}
	if adminNotes != nil {
		updates["admin_notes"] = *adminNotes
	}

	var requestM model.CateringRequestModel
	result := repo.db.WithContext(ctx).
		Model(&requestM).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update catering status")
	}

	if result.RowsAffected == 0 {
		// Read the primary: a lagging replica may not see the row yet.
		if _, err := repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id); err != nil {
			return nil, err
		}

		return nil, domainerrors.ErrStatusConflict
	}

	return toCateringDomain(&requestM), nil
}

// --- Mapper Functions ---

func toCateringDomains(requestModels []*model.CateringRequestModel) []*entity.CateringRequest {
	requests := make([]*entity.CateringRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toCateringDomain(requestM))
	}

	return requests
}

func toCateringDomain(data *model.CateringRequestModel) *entity.CateringRequest {
	if data == nil {
		return nil
	}

	menuItems := []entity.CateringMenuItem(data.MenuItems)
	if menuItems == nil {
		menuItems = []entity.CateringMenuItem{}
	}

	return &entity.CateringRequest{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		CustomerName:   data.CustomerName,
		CustomerPhone:  data.CustomerPhone,
		CustomerEmail:  data.CustomerEmail,
		EventType:      data.EventType,
		EventDate:      data.EventDate.Format(eventDateLayout),
		EventTime:      data.EventTime,
		GuestCount:     data.GuestCount,
		ServiceOption:  entity.ServiceOption(data.ServiceOption),
		VenueName:      data.VenueName,
		VenueAddress:   data.VenueAddress,
		MenuItems:      menuItems,
		EstimatedTotal: data.EstimatedTotal,
		Status:         entity.CateringStatus(data.Status),
		AdminNotes:     data.AdminNotes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCateringDomain(data *entity.CateringRequest) (*model.CateringRequestModel, error) {
	eventDate, err := time.Parse(eventDateLayout, data.EventDate)
	if err != nil {
		return nil, domainerrors.Invalid("eventDate", "Event date must be in YYYY-MM-DD format")
	}

	return &model.CateringRequestModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		CustomerName:   data.CustomerName,
		CustomerPhone:  data.CustomerPhone,
		CustomerEmail:  data.CustomerEmail,
		EventType:      data.EventType,
		EventDate:      eventDate,
		EventTime:      data.EventTime,
		GuestCount:     data.GuestCount,
		ServiceOption:  string(data.ServiceOption),
		VenueName:      data.VenueName,
		VenueAddress:   data.VenueAddress,
		MenuItems:      datatypes.JSONSlice[entity.CateringMenuItem](data.MenuItems),
		EstimatedTotal: data.EstimatedTotal,
		Status:         string(data.Status),
		AdminNotes:     data.AdminNotes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}
