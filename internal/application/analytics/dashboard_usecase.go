// Package analytics contiene los casos de uso de lectura derivados del catálogo:
// el resumen del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/grinder-parts-api/internal/application/dto"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

// PartLister fuente del snapshot del catálogo (implementada por inventory.Store).
type PartLister interface {
	List(ctx context.Context) ([]entity.Part, error)
}

// DashboardUseCase genera los contadores del dashboard a partir del snapshot actual.
//
// Sin caché: cada llamada recalcula sobre el último snapshot, así refleja
// cualquier mutación previa.
type DashboardUseCase struct {
	parts PartLister
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(parts PartLister) *DashboardUseCase {
	return &DashboardUseCase{parts: parts}
}

// GetSummary construye el DashboardSummaryDTO:
//   - TotalParts:    cantidad de repuestos
//   - InStockParts:  stock > 0
//   - LowStockParts: stock < 10 (incluye los agotados)
//   - TotalValue:    Σ precio × stock, redondeado a 2 decimales
//   - RecentParts:   primeros 5 en orden del catálogo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar repuestos: %w", err)
	}
	s := domaininv.Summarize(parts)
	return &dto.DashboardSummaryDTO{
		TotalParts:    s.TotalParts,
		InStockParts:  s.InStockParts,
		LowStockParts: s.LowStockParts,
		TotalValue:    s.TotalValue,
		RecentParts:   dto.ToPartResponses(s.RecentParts),
	}, nil
}
