package entity

import "time"

// SalesReport aggregates orders and catering requests over a date range.
type SalesReport struct {
	From              time.Time                `json:"from"`
	To                time.Time                `json:"to"`
	OrderCount        int64                    `json:"orderCount"`
	Revenue           float64                  `json:"revenue"` // Excludes cancelled orders.
	AverageOrderValue float64                  `json:"averageOrderValue"`
	OrdersByStatus    map[OrderStatus]int64    `json:"ordersByStatus"`
	TopItems          []ItemSales              `json:"topItems"`
	DailyRevenue      []DailyRevenue           `json:"dailyRevenue"`
	CateringByStatus  map[CateringStatus]int64 `json:"cateringByStatus"`
}

// ItemSales is the sold quantity and revenue of one menu line.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// DailyRevenue is revenue bucketed by calendar day.
type DailyRevenue struct {
	Day     string  `json:"day"` // YYYY-MM-DD
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}
