package repository

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"
)

// ReportRepository runs read-only aggregations for the sales dashboard.
type ReportRepository interface {
	// SalesReport aggregates orders and catering requests created in [from, to).
	SalesReport(ctx context.Context, from, to time.Time, topItems int) (*entity.SalesReport, error)
}
