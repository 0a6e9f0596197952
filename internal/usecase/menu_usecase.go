package usecase

import (
	"context"
	"io"

	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"

	"github.com/google/uuid"
)

// MenuItemInput carries the editable fields of a menu item. Nil flags keep their defaults.
type MenuItemInput struct {
	Name       string                 `json:"name"`
	Price      float64                `json:"price"`
	Category   string                 `json:"category"`
	ImageURL   string                 `json:"imageUrl,omitempty"`
	InStock    *bool                  `json:"inStock,omitempty"`
	IsFeatured *bool                  `json:"isFeatured,omitempty"`
	Modifiers  []entity.ModifierGroup `json:"modifiers,omitempty"`
}

// ImageUpload is a menu image received from staff.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MenuUsecase covers the catalog.
type MenuUsecase interface {
	ListMenu(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
	SetInStock(ctx context.Context, id uuid.UUID, inStock bool) (*entity.MenuItem, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.MenuItem, error)

	// UploadImage stores a menu image and returns the URL to put in imageUrl.
	UploadImage(ctx context.Context, upload *ImageUpload) (string, error)

	// OpenImage streams a stored image by key.
	OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error)
}
