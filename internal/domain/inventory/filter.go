package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

// PartFilter criterios de búsqueda del catálogo. Los campos en su valor cero no filtran.
type PartFilter struct {
	Category     entity.Category
	Manufacturer string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      bool
	SearchTerm   string
}

// IsEmpty indica si ningún criterio está activo.
func (f PartFilter) IsEmpty() bool {
	return f.Category == "" && f.Manufacturer == "" && f.MinPrice == nil &&
		f.MaxPrice == nil && !f.InStock && f.SearchTerm == ""
}

// Apply aplica en secuencia los predicados de la búsqueda (servicio de dominio):
//
//	categoría exacta → fabricante (subcadena, sin mayúsculas) → precio mínimo (incl.)
//	→ precio máximo (incl.) → solo con stock → término libre en nombre, descripción o número de parte
//
// El resultado conserva el orden relativo de la entrada. parts no se modifica.
func (f PartFilter) Apply(parts []entity.Part) []entity.Part {
	// Minúsculas Unicode sin plegado completo: "ß" no equivale a "ss".
	// cases.Caser tiene estado: uno por llamada.
	fold := cases.Lower(language.Und)
	contains := func(haystack, needle string) bool {
		return strings.Contains(fold.String(haystack), needle)
	}

	out := make([]entity.Part, 0, len(parts))
	out = append(out, parts...)

	if f.Category != "" {
		out = keep(out, func(p *entity.Part) bool { return p.Category == f.Category })
	}
	if f.Manufacturer != "" {
		m := fold.String(f.Manufacturer)
		out = keep(out, func(p *entity.Part) bool { return contains(p.Manufacturer, m) })
	}
	if f.MinPrice != nil {
		lo := *f.MinPrice
		out = keep(out, func(p *entity.Part) bool { return p.Price.GreaterThanOrEqual(lo) })
	}
	if f.MaxPrice != nil {
		hi := *f.MaxPrice
		out = keep(out, func(p *entity.Part) bool { return p.Price.LessThanOrEqual(hi) })
	}
	if f.InStock {
		out = keep(out, func(p *entity.Part) bool { return p.InStock() })
	}
	if f.SearchTerm != "" {
		term := fold.String(f.SearchTerm)
		out = keep(out, func(p *entity.Part) bool {
			return contains(p.Name, term) ||
				contains(p.Description, term) ||
				contains(p.PartNumber, term)
		})
	}
	return out
}

// keep filtra en sitio conservando el orden.
func keep(parts []entity.Part, pred func(*entity.Part) bool) []entity.Part {
	n := 0
	for i := range parts {
		if pred(&parts[i]) {
			parts[n] = parts[i]
			n++
		}
	}
	return parts[:n]
}
