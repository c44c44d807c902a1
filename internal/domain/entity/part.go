package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del catálogo (molino de granos).
// ID es inmutable después de la creación. Price y StockQuantity no se validan aquí:
// la validación vive solo en la capa de entrada (HTTP).
type Part struct {
	ID             string
	Name           string
	Description    string
	PartNumber     string // pensado como único, no se exige
	Category       Category
	Price          decimal.Decimal
	StockQuantity  int
	Manufacturer   string
	Compatibility  []string // nombres de modelos compatibles
	ImageURL       string   // opcional
	Specifications []Specification
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Specification es una entrada de ficha técnica (ej: Power = 1800 W).
type Specification struct {
	Name  string
	Value string
	Unit  string // vacío si no aplica
}

// InStock indica si hay existencias.
func (p *Part) InStock() bool {
	return p.StockQuantity > 0
}

// Clone devuelve una copia profunda; los snapshots nunca comparten slices con el store.
func (p Part) Clone() Part {
	out := p
	// una lista vacía sigue vacía (no nil) en la copia
	if p.Compatibility != nil {
		out.Compatibility = make([]string, len(p.Compatibility))
		copy(out.Compatibility, p.Compatibility)
	}
	if p.Specifications != nil {
		out.Specifications = make([]Specification, len(p.Specifications))
		copy(out.Specifications, p.Specifications)
	}
	return out
}
