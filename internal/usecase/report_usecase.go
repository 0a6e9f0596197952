package usecase

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"
)

// ReportUsecase serves the admin sales dashboard.
type ReportUsecase interface {
	// SalesReport aggregates [from, to). Nil bounds default to the last 30 days.
	SalesReport(ctx context.Context, from, to *time.Time) (*entity.SalesReport, error)
}
