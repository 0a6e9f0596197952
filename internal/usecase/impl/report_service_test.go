package impl

import (
	"context"
	"testing"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockRepo "dabeli/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_SalesReport_DefaultWindow(t *testing.T) {
	reportRepo := mockRepo.NewMockReportRepository(t)
	srv := NewReportService(ReportServiceParams{ReportRepo: reportRepo, Logger: testLogger()}).(*reportService)

	now := time.Date(2026, 5, 31, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	ctx := context.Background()
	reportRepo.EXPECT().
		SalesReport(ctx, now.Add(-30*24*time.Hour), now, reportTopItems).
		Return(&entity.SalesReport{OrderCount: 3}, nil)

	report, err := srv.SalesReport(ctx, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, report.OrderCount)
}

func TestReportService_SalesReport_InvertedRange(t *testing.T) {
	srv := NewReportService(ReportServiceParams{ReportRepo: mockRepo.NewMockReportRepository(t), Logger: testLogger()})

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	_, err := srv.SalesReport(context.Background(), &from, &to)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
