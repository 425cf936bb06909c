package model

import (
	"time"
)

// DailyRevenue is the revenue booked on one calendar day.
type DailyRevenue struct {
	Date    string `json:"date"` // yyyy-mm-dd in the reporting location
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

// ProductSales aggregates sold quantity and revenue for a product name.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// PaymentShare is the order count and share for a payment method.
type PaymentShare struct {
	Method     PaymentMethod `json:"method"`
	Count      int           `json:"count"`
	Amount     int64         `json:"amount"`
	Percentage float64       `json:"percentage"`
}

// AnalyticsSnapshot aggregates transactions over a closed date interval.
type AnalyticsSnapshot struct {
	Start               time.Time      `json:"start"`
	End                 time.Time      `json:"end"`
	TotalRevenue        int64          `json:"total_revenue"`
	TotalSubtotal       int64          `json:"total_subtotal"`
	TotalTax            int64          `json:"total_tax"`
	TotalOrders         int            `json:"total_orders"`
	AverageOrderValue   float64        `json:"average_order_value"`
	Daily               []DailyRevenue `json:"daily"`
	Hourly              [24]int64      `json:"hourly"`
	Products            []ProductSales `json:"products"`
	TopProducts         []ProductSales `json:"top_products"`
	PaymentDistribution []PaymentShare `json:"payment_distribution"`
}

// Dashboard is the at-a-glance view for the current day.
type Dashboard struct {
	TodayRevenue       int64         `json:"today_revenue"`
	TodayOrders        int           `json:"today_orders"`
	MenuCount          int           `json:"menu_count"`
	LowStock           []StockItem   `json:"low_stock"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}
