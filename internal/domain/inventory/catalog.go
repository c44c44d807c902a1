package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

// DefaultCatalog devuelve el catálogo inicial de demostración (IDs "1", "2", "3").
// Se usa para sembrar el repositorio en memoria y para generar el SQL de seed.
func DefaultCatalog(now time.Time) []entity.Part {
	return []entity.Part{
		{
			ID:            "1",
			Name:          "High-Speed Motor Assembly",
			Description:   "Professional grade motor for heavy-duty grain grinding",
			PartNumber:    "GM-MOT-001",
			Category:      entity.CategoryMotor,
			Price:         decimal.RequireFromString("299.99"),
			StockQuantity: 15,
			Manufacturer:  "GrainTech",
			Compatibility: []string{"GT-2000", "GT-3000", "GT-Pro"},
			Specifications: []entity.Specification{
				{Name: "Power", Value: "1800", Unit: "W"},
				{Name: "RPM", Value: "3600", Unit: "rpm"},
				{Name: "Voltage", Value: "220", Unit: "V"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            "2",
			Name:          "Tungsten Carbide Blade Set",
			Description:   "Ultra-sharp blades for efficient grain processing",
			PartNumber:    "GM-BLD-002",
			Category:      entity.CategoryBlade,
			Price:         decimal.RequireFromString("89.99"),
			StockQuantity: 32,
			Manufacturer:  "BladeMax",
			Compatibility: []string{"GT-2000", "GT-3000", "BM-500"},
			Specifications: []entity.Specification{
				{Name: "Material", Value: "Tungsten Carbide"},
				{Name: "Diameter", Value: "150", Unit: "mm"},
				{Name: "Thickness", Value: "3", Unit: "mm"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            "3",
			Name:          "Precision Ball Bearings",
			Description:   "High-performance bearings for smooth operation",
			PartNumber:    "GM-BRG-003",
			Category:      entity.CategoryBearing,
			Price:         decimal.RequireFromString("45.50"),
			StockQuantity: 28,
			Manufacturer:  "BearingPro",
			Compatibility: []string{"GT-2000", "GT-3000", "GT-Pro", "BM-500"},
			Specifications: []entity.Specification{
				{Name: "Type", Value: "Deep Groove Ball Bearing"},
				{Name: "Inner Diameter", Value: "20", Unit: "mm"},
				{Name: "Outer Diameter", Value: "47", Unit: "mm"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
