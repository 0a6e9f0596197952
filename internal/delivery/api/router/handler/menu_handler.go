package handler

import (
	"io"
	"log/slog"
	"net/http"

	"dabeli/internal/delivery/api/response"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgMenuItemDeleted = "Menu item removed"

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the catalog and menu images.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// StockRequest is the body of PATCH /api/menu/:id/stock
type StockRequest struct {
	InStock *bool `json:"inStock" validate:"required"`
}

// FeaturedRequest is the body of PATCH /api/menu/:id/featured
type FeaturedRequest struct {
	IsFeatured *bool `json:"isFeatured" validate:"required"`
}

// ImageURLResponse is returned by the image upload.
type ImageURLResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ListMenu supports ?category=&featured=&inStock=.
func (h *MenuHandler) ListMenu(c echo.Context) error {
	filter := repository.MenuFilter{Category: queryString(c, "category")}

	var err error
	if filter.Featured, err = queryBool(c, "featured"); err != nil {
		return err
	}
	if filter.InStock, err = queryBool(c, "inStock"); err != nil {
		return err
	}

	items, err := h.menuUC.ListMenu(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, items)
}

func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.menuUC.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var input usecase.MenuItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	item, err := h.menuUC.CreateMenuItem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, item)
}

func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.MenuItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	item, err := h.menuUC.UpdateMenuItem(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.menuUC.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgMenuItemDeleted)
}

func (h *MenuHandler) SetInStock(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.menuUC.SetInStock(c.Request().Context(), id, *req.InStock)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

func (h *MenuHandler) SetFeatured(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req FeaturedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.menuUC.SetFeatured(c.Request().Context(), id, *req.IsFeatured)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

// UploadImage accepts a multipart "image" field and returns its public URL.
func (h *MenuHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.Invalid("image", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	url, err := h.menuUC.UploadImage(c.Request().Context(), &usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, ImageURLResponse{ImageURL: url})
}

// ServeImage streams a stored menu image under /images/*.
func (h *MenuHandler) ServeImage(c echo.Context) error {
	reader, contentType, err := h.menuUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}
