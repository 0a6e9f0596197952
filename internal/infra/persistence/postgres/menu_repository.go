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
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid menu item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// List returns matching items ordered by category then name.
func (repo *menuRepository) List(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error) {
	query := repo.db.WithContext(ctx).Model(&model.MenuItemModel{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}

	var itemModels []*model.MenuItemModel
	if err := query.Order("category ASC, name ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// Update overwrites every editable column of the item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Select("name", "price", "category", "image_url", "in_stock", "is_featured", "modifiers").
		Updates(itemM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrMenuItemNotFound
	}

	return nil
}

func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrMenuItemNotFound
	}

	return nil
}

func (repo *menuRepository) SetInStock(ctx context.Context, id uuid.UUID, inStock bool) (*entity.MenuItem, error) {
	return repo.setFlag(ctx, id, "in_stock", inStock)
}

func (repo *menuRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.MenuItem, error) {
	return repo.setFlag(ctx, id, "is_featured", featured)
}

func (repo *menuRepository) setFlag(ctx context.Context, id uuid.UUID, column string, value bool) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	result := repo.db.WithContext(ctx).
		Model(&itemM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update menu item %s", column)
	}

	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrMenuItemNotFound
	}

	return toMenuItemDomain(&itemM), nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	modifiers := []entity.ModifierGroup(data.Modifiers)
	if modifiers == nil {
		modifiers = []entity.ModifierGroup{}
	}

	return &entity.MenuItem{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Category:   data.Category,
		ImageURL:   data.ImageURL,
		InStock:    data.InStock,
		IsFeatured: data.IsFeatured,
		Modifiers:  modifiers,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	modifiers := data.Modifiers
	if modifiers == nil {
		modifiers = []entity.ModifierGroup{}
	}

	return &model.MenuItemModel{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Category:   data.Category,
		ImageURL:   data.ImageURL,
		InStock:    data.InStock,
		IsFeatured: data.IsFeatured,
		Modifiers:  datatypes.JSONSlice[entity.ModifierGroup](modifiers),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
