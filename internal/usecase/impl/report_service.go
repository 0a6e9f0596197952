package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultReportWindow = 30 * 24 * time.Hour
	reportTopItems      = 10
)

type reportService struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) SalesReport(ctx context.Context, from, to *time.Time) (*entity.SalesReport, error) {
	end := srv.now()
	if to != nil {
		end = *to
	}

	start := end.Add(-defaultReportWindow)
	if from != nil {
		start = *from
	}

	if !start.Before(end) {
		return nil, domainerrors.Invalid("from", "Report start must be before its end")
	}

	report, err := srv.reportRepo.SalesReport(ctx, start, end, reportTopItems)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales report")
	}

	srv.log(ctx).Debug("Sales report built",
		slog.Time("from", start),
		slog.Time("to", end),
		slog.Int64("orders", report.OrderCount),
	)

	return report, nil
}
