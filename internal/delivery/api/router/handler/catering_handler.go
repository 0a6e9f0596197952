package handler

import (
	"log/slog"

	"dabeli/internal/delivery/api/response"
	"dabeli/internal/domain/entity"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CateringHandlerParams holds dependencies for CateringHandler, injected by Fx.
type CateringHandlerParams struct {
	fx.In

	CateringUC usecase.CateringUsecase
	Logger     *slog.Logger
}

// CateringHandler serves the catering request endpoints.
type CateringHandler struct {
	cateringUC usecase.CateringUsecase
	logger     *slog.Logger
}

// NewCateringHandler is the constructor for CateringHandler
func NewCateringHandler(params CateringHandlerParams) *CateringHandler {
	return &CateringHandler{
		cateringUC: params.CateringUC,
		logger:     params.Logger,
	}
}

// UpdateCateringStatusRequest is the body of PATCH /api/catering/update-status/:id
type UpdateCateringStatusRequest struct {
	Status     entity.CateringStatus `json:"status" validate:"required"`
	AdminNotes *string               `json:"adminNotes"`
}

// Submit creates a Pending Review request for the authenticated customer.
func (h *CateringHandler) Submit(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var input usecase.SubmitCateringInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	request, err := h.cateringUC.Submit(c.Request().Context(), customerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, request)
}

// MyRequests lists the authenticated customer's requests.
func (h *CateringHandler) MyRequests(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	requests, err := h.cateringUC.ListCustomerRequests(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests)
}

// ListAll is the staff listing, optionally filtered by ?status=.
func (h *CateringHandler) ListAll(c echo.Context) error {
	var status *entity.CateringStatus
	if raw := queryString(c, "status"); raw != nil {
		s := entity.CateringStatus(*raw)
		status = &s
	}

	requests, err := h.cateringUC.ListRequests(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests)
}

// GetRequest returns one request for staff.
func (h *CateringHandler) GetRequest(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	request, err := h.cateringUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, request)
}

// UpdateStatus is the staff status change with optional notes.
func (h *CateringHandler) UpdateStatus(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateCateringStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	request, err := h.cateringUC.UpdateStatus(c.Request().Context(), requestID, req.Status, req.AdminNotes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, request)
}
