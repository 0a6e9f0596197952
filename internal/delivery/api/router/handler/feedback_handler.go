package handler

import (
	"log/slog"

	"dabeli/internal/delivery/api/response"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgFeedbackDeleted = "Feedback removed"

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler serves guest feedback and its moderation.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// VisibilityRequest is the body of PATCH /api/feedback/:id/visibility
type VisibilityRequest struct {
	IsPublic *bool `json:"isPublic" validate:"required"`
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	var input usecase.FeedbackInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, feedback)
}

func (h *FeedbackHandler) ListPublic(c echo.Context) error {
	feedback, err := h.feedbackUC.ListPublic(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, feedback)
}

func (h *FeedbackHandler) ListAll(c echo.Context) error {
	feedback, err := h.feedbackUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, feedback)
}

func (h *FeedbackHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.MarkRead(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, feedback)
}

func (h *FeedbackHandler) SetVisibility(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req VisibilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.SetPublic(c.Request().Context(), id, *req.IsPublic)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, feedback)
}

func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.feedbackUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgFeedbackDeleted)
}
