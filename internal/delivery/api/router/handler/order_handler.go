package handler

import (
	"log/slog"
	"net/http"

	"dabeli/internal/delivery/api/response"
	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest is the body of PATCH /api/orders/update/:id
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// PlaceOrder creates a Pending order for the authenticated customer.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	// Field rules live on the entity, so the input is bound without tags.
	var input usecase.PlaceOrderInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), customerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order)
}

// TrackByPhone is the public tracking lookup.
func (h *OrderHandler) TrackByPhone(c echo.Context) error {
	orders, err := h.orderUC.TrackByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders)
}

// MyOrders lists the authenticated customer's orders.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders)
}

// UpdateStatus is the staff status change.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// ListOrders is the filtered admin listing.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var filter repository.OrderFilter

	if status := queryString(c, "status"); status != nil {
		s := entity.OrderStatus(*status)
		filter.Status = &s
	}
	if orderType := queryString(c, "orderType"); orderType != nil {
		t := entity.OrderType(*orderType)
		filter.OrderType = &t
	}

	var err error
	if filter.From, err = queryTime(c, "from", false); err != nil {
		return err
	}
	if filter.To, err = queryTime(c, "to", true); err != nil {
		return err
	}
	if filter.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		return err
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// GetOrder returns one order for staff.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// TrackingQRCode renders the order's tracking QR code as PNG.
func (h *OrderHandler) TrackingQRCode(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orderUC.TrackingQRCode(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
