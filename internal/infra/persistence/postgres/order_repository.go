package postgres

import (
	"context"

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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *orderRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByPhone returns every order placed with the phone, newest first.
func (repo *orderRepository) FindByPhone(ctx context.Context, phone string) ([]*entity.Order, error) {
	return repo.find(ctx, "failed to find orders by phone", "customer_phone = ?", phone)
}

// FindByCustomer returns the customer's orders, newest first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return repo.find(ctx, "failed to find orders by customer", "customer_id = ?", customerID)
}

func (repo *orderRepository) find(ctx context.Context, details string, where string, args ...any) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where(where, args...).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, details)
	}

	return toOrderDomains(orderModels), nil
}

// List returns one page of matching orders, newest first, with the total match count.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	filter = filter.Normalized()
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.OrderType != nil {
		query = query.Where("order_type = ?", string(*filter.OrderType))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

// UpdateStatus is a compare-and-swap on the status column.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) (*entity.Order, error) {
	var orderM model.OrderModel

	result := repo.db.WithContext(ctx).
		Model(&orderM).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Update("status", string(next))

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Read the primary: a lagging replica may not see the row yet.
		if _, err := repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id); err != nil {
			return nil, err
		}

		return nil, domainerrors.ErrStatusConflict
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := []entity.OrderItem(data.Items)
	if items == nil {
		items = []entity.OrderItem{}
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		OrderType:       entity.OrderType(data.OrderType),
		DeliveryAddress: data.DeliveryAddress.Data(),
		Items:           items,
		TotalPrice:      data.TotalPrice,
		Status:          entity.OrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		OrderType:       string(data.OrderType),
		DeliveryAddress: datatypes.NewJSONType(data.DeliveryAddress),
		Items:           datatypes.JSONSlice[entity.OrderItem](data.Items),
		TotalPrice:      data.TotalPrice,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
