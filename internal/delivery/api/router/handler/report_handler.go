package handler

import (
	"log/slog"

	"dabeli/internal/delivery/api/response"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves the admin dashboard.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// SalesReport aggregates ?from=&to=, defaulting to the last 30 days.
func (h *ReportHandler) SalesReport(c echo.Context) error {
	from, err := queryTime(c, "from", false)
	if err != nil {
		return err
	}

	to, err := queryTime(c, "to", true)
	if err != nil {
		return err
	}

	report, err := h.reportUC.SalesReport(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, report)
}
