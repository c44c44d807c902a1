package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalParts    int             `json:"totalParts"`
	InStockParts  int             `json:"inStockParts"`  // stock > 0
	LowStockParts int             `json:"lowStockParts"` // stock < 10
	TotalValue    decimal.Decimal `json:"totalValue"`    // Σ precio × stock
	RecentParts   []PartResponse  `json:"recentParts"`   // primeros 5 del catálogo
}
