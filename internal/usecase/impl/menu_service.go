package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"
	"dabeli/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageBytes = 5 << 20

// allowedImageTypes are the sniffed content types accepted for menu images.
var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type menuService struct {
	menuRepo      repository.MenuRepository
	imageStore    service.ImageStore
	maxImageBytes int64
	logger        *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuRepo   repository.MenuRepository
	ImageStore service.ImageStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	srv := &menuService{
		menuRepo:      params.MenuRepo,
		imageStore:    params.ImageStore,
		maxImageBytes: defaultMaxImageBytes,
		logger:        params.Logger,
	}

	if params.Config != nil && params.Config.ImageStore != nil && params.Config.ImageStore.MaxSizeBytes > 0 {
		srv.maxImageBytes = params.Config.ImageStore.MaxSizeBytes
	}

	return srv
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *menuService) ListMenu(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error) {
	items, err := srv.menuRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return items, nil
}

func (srv *menuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get menu item")
	}

	return item, nil
}

// CreateMenuItem adds a dish. New items are in stock and not featured unless stated.
func (srv *menuService) CreateMenuItem(ctx context.Context, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		InStock:   true,
		Modifiers: []entity.ModifierGroup{},
	}
	applyMenuInput(item, input)

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := srv.menuRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	srv.log(ctx).Info("Menu item created", slog.String("menu_item_id", item.ID.String()), slog.String("name", item.Name))

	return item, nil
}

// UpdateMenuItem replaces the editable fields. Orders keep their own snapshot of the item.
func (srv *menuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu item")
	}

	previousImage := item.ImageURL
	applyMenuInput(item, input)

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := srv.menuRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update menu item")
	}

	if previousImage != "" && previousImage != item.ImageURL {
		srv.removeImage(ctx, previousImage)
	}

	return item, nil
}

func (srv *menuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to load menu item")
	}

	if err := srv.menuRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete menu item")
	}

	if item.ImageURL != "" {
		srv.removeImage(ctx, item.ImageURL)
	}

	srv.log(ctx).Info("Menu item deleted", slog.String("menu_item_id", id.String()))

	return nil
}

func (srv *menuService) SetInStock(ctx context.Context, id uuid.UUID, inStock bool) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.SetInStock(ctx, id, inStock)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update stock")
	}

	return item, nil
}

func (srv *menuService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.SetFeatured(ctx, id, featured)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update featured flag")
	}

	return item, nil
}

// UploadImage checks size and sniffed type before handing the bytes to the image store.
func (srv *menuService) UploadImage(ctx context.Context, upload *usecase.ImageUpload) (string, error) {
	if len(upload.Data) == 0 {
		return "", domainerrors.ErrInvalidImage.WithDetails("empty file")
	}
	if int64(len(upload.Data)) > srv.maxImageBytes {
		return "", domainerrors.ErrInvalidImage.WithDetails("larger than " + util.FormatBytes(srv.maxImageBytes))
	}

	detected := mimetype.Detect(upload.Data)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		srv.log(ctx).Warn("Rejected menu image",
			slog.String("filename", upload.Filename),
			slog.String("detected", detected.String()),
		)

		return "", domainerrors.ErrInvalidImage.WithDetails("unsupported type " + detected.String())
	}

	url, err := srv.imageStore.Upload(ctx, upload.Filename, detected.String(), upload.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store menu image")
	}

	srv.log(ctx).Info("Menu image uploaded", slog.String("url", url), slog.Int("bytes", len(upload.Data)))

	return url, nil
}

func (srv *menuService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, contentType, err := srv.imageStore.Open(ctx, key)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open menu image")
	}

	return reader, contentType, nil
}

// removeImage only logs failures.
func (srv *menuService) removeImage(ctx context.Context, url string) {
	if err := srv.imageStore.Delete(ctx, url); err != nil {
		srv.log(ctx).Warn("Failed to remove menu image", slog.String("url", url), slog.Any("error", err))
	}
}

func applyMenuInput(item *entity.MenuItem, input *usecase.MenuItemInput) {
	item.Name = strings.TrimSpace(input.Name)
	item.Price = input.Price
	item.Category = strings.TrimSpace(input.Category)
	item.ImageURL = strings.TrimSpace(input.ImageURL)

	if input.InStock != nil {
		item.InStock = *input.InStock
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}
	if input.Modifiers != nil {
		item.Modifiers = input.Modifiers
	}
}
