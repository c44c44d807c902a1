package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

// SeedIfEmpty inserta parts en el repositorio solo si está vacío. Devuelve cuántos insertó.
// Conserva IDs y timestamps de las entradas (el catálogo por defecto usa "1", "2", "3").
func SeedIfEmpty(ctx context.Context, repo repository.PartRepository, parts []entity.Part) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: listar repuestos: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range parts {
		p := parts[i].Clone()
		if err := repo.Create(ctx, &p); err != nil {
			return i, fmt.Errorf("seed: crear %s: %w", p.PartNumber, err)
		}
	}
	return len(parts), nil
}
