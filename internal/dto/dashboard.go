package dto

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalBrands      int64            `json:"totalBrands"`
	TotalProducts    int64            `json:"totalProducts"`
	TotalUsers       int64            `json:"totalUsers"`
	TotalOrders      int64            `json:"totalOrders"`
	OrdersByStatus   map[string]int64 `json:"ordersByStatus"`
	DeliveredRevenue decimal.Decimal  `json:"deliveredRevenue"`
	LowStockProducts int64            `json:"lowStockProducts"`
}
