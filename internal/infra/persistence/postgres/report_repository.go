package postgres

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface with SQL aggregates.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

type statusCountRow struct {
	Status string
	Count  int64
}

type revenueRow struct {
	Orders  int64
	Revenue float64
}

const itemSalesSQL = `
SELECT item->>'name' AS name,
       SUM((item->>'quantity')::bigint) AS quantity,
       SUM((item->>'price')::numeric * (item->>'quantity')::bigint) AS revenue
FROM orders, jsonb_array_elements(orders.items) AS item
WHERE orders.created_at >= ? AND orders.created_at < ? AND orders.status <> ?
GROUP BY item->>'name'
ORDER BY quantity DESC, name ASC
LIMIT ?`

const dailyRevenueSQL = `
SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day,
       COUNT(*) AS orders,
       COALESCE(SUM(total_price), 0) AS revenue
FROM orders
WHERE created_at >= ? AND created_at < ? AND status <> ?
GROUP BY 1
ORDER BY 1`

// SalesReport aggregates orders and catering requests created in [from, to).
func (repo *reportRepository) SalesReport(ctx context.Context, from, to time.Time, topItems int) (*entity.SalesReport, error) {
	db := repo.db.WithContext(ctx)
	cancelled := string(entity.OrderStatusCancelled)

	report := &entity.SalesReport{
		From:             from,
		To:               to,
		OrdersByStatus:   make(map[entity.OrderStatus]int64),
		CateringByStatus: make(map[entity.CateringStatus]int64),
		TopItems:         []entity.ItemSales{},
		DailyRevenue:     []entity.DailyRevenue{},
	}

	var orderStatuses []statusCountRow
	if err := db.Table("orders").
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&orderStatuses).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}
	for _, row := range orderStatuses {
		report.OrdersByStatus[entity.OrderStatus(row.Status)] = row.Count
		report.OrderCount += row.Count
	}

	var revenue revenueRow
	if err := db.Table("orders").
		Select("COUNT(*) AS orders, COALESCE(SUM(total_price), 0) AS revenue").
		Where("created_at >= ? AND created_at < ? AND status <> ?", from, to, cancelled).
		Scan(&revenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	report.Revenue = revenue.Revenue
	if revenue.Orders > 0 {
		report.AverageOrderValue = revenue.Revenue / float64(revenue.Orders)
	}

	if topItems > 0 {
		if err := db.Raw(itemSalesSQL, from, to, cancelled, topItems).Scan(&report.TopItems).Error; err != nil {
			return nil, errors.Wrap(err, "failed to rank items")
		}
	}

	if err := db.Raw(dailyRevenueSQL, from, to, cancelled).Scan(&report.DailyRevenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to bucket daily revenue")
	}

	var cateringStatuses []statusCountRow
	if err := db.Table("catering_requests").
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&cateringStatuses).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count catering requests by status")
	}
	for _, row := range cateringStatuses {
		report.CateringByStatus[entity.CateringStatus(row.Status)] = row.Count
	}

	return report, nil
}
