package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

// Umbrales del resumen de inventario.
const (
	LowStockThreshold = 10 // stock estrictamente menor se considera bajo
	RecentPartsLimit  = 5
)

// Summary contadores del dashboard calculados sobre un snapshot.
type Summary struct {
	TotalParts    int
	InStockParts  int
	LowStockParts int
	TotalValue    decimal.Decimal // Σ precio × stock
	RecentParts   []entity.Part   // primeros RecentPartsLimit del snapshot
}

// Summarize calcula el resumen. Un repuesto sin stock cuenta también como stock bajo.
func Summarize(parts []entity.Part) Summary {
	s := Summary{TotalParts: len(parts), TotalValue: decimal.Zero}
	for i := range parts {
		p := &parts[i]
		if p.InStock() {
			s.InStockParts++
		}
		if IsLowStock(p) {
			s.LowStockParts++
		}
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity))))
	}
	n := len(parts)
	if n > RecentPartsLimit {
		n = RecentPartsLimit
	}
	s.RecentParts = append([]entity.Part(nil), parts[:n]...)
	s.TotalValue = s.TotalValue.Round(2)
	return s
}

// IsLowStock indica si el stock está por debajo de LowStockThreshold.
func IsLowStock(p *entity.Part) bool {
	return p.StockQuantity < LowStockThreshold
}
