package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

func TestSummarize_CatalogoInicial(t *testing.T) {
	s := inventory.Summarize(catalog())

	assert.Equal(t, 3, s.TotalParts)
	assert.Equal(t, 3, s.InStockParts)
	assert.Equal(t, 0, s.LowStockParts)
	// 299.99*15 + 89.99*32 + 45.50*28 = 4499.85 + 2879.68 + 1274.00
	assert.True(t, decimal.RequireFromString("8653.53").Equal(s.TotalValue), "valor total: %s", s.TotalValue)
	assert.Len(t, s.RecentParts, 3)
}

func TestSummarize_StockBajoYRecientes(t *testing.T) {
	parts := catalog()
	parts[0].StockQuantity = 0
	parts[2].StockQuantity = 9
	for i := 0; i < 4; i++ {
		parts = append(parts, entity.Part{ID: "x", StockQuantity: 10, Price: decimal.Zero})
	}

	s := inventory.Summarize(parts)
	assert.Equal(t, 7, s.TotalParts)
	assert.Equal(t, 6, s.InStockParts)
	assert.Equal(t, 2, s.LowStockParts, "stock 0 y 9 son bajos; 10 no")
	assert.Len(t, s.RecentParts, inventory.RecentPartsLimit)
	assert.Equal(t, "1", s.RecentParts[0].ID)
}

func TestSummarize_Vacio(t *testing.T) {
	s := inventory.Summarize(nil)
	assert.Zero(t, s.TotalParts)
	assert.True(t, s.TotalValue.IsZero())
	assert.Empty(t, s.RecentParts)
}
