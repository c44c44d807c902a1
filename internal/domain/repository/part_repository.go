package repository

import (
	"context"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

// PartRepository define el puerto de persistencia para Part (DIP).
// El orden de inserción se conserva en List. GetByID devuelve (nil, nil) si no existe;
// Update y Delete devuelven false si el ID no existe (no es un error).
type PartRepository interface {
	List(ctx context.Context) ([]entity.Part, error)
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	Create(ctx context.Context, part *entity.Part) error
	Update(ctx context.Context, part *entity.Part) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
