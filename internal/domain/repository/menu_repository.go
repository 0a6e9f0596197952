package repository

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuFilter narrows a menu listing. Nil fields do not filter.
type MenuFilter struct {
	Category *string
	Featured *bool
	InStock  *bool
}

// MenuRepository defines menu item persistence.
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// List returns matching items ordered by category then name.
	List(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error)

	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	SetInStock(ctx context.Context, id uuid.UUID, inStock bool) (*entity.MenuItem, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.MenuItem, error)
}
