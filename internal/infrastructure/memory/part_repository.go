// Package memory implementa los puertos de persistencia sobre estructuras en memoria.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo secuencia ordenada de repuestos en memoria (orden de inserción).
// Nunca devuelve error; la firma sigue el puerto para poder cambiar de backend.
type PartRepo struct {
	mu    sync.RWMutex
	parts []entity.Part
}

// NewPartRepository construye el repositorio con un contenido inicial (puede ser nil).
func NewPartRepository(seed []entity.Part) *PartRepo {
	r := &PartRepo{parts: make([]entity.Part, 0, len(seed))}
	for _, p := range seed {
		r.parts = append(r.parts, p.Clone())
	}
	return r
}

// List devuelve una copia del contenido completo.
func (r *PartRepo) List(_ context.Context) ([]entity.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p.Clone())
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si el ID no existe.
func (r *PartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	p := r.parts[i].Clone()
	return &p, nil
}

// Create agrega al final.
func (r *PartRepo) Create(_ context.Context, part *entity.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts = append(r.parts, part.Clone())
	return nil
}

// Update reemplaza el registro con el mismo ID conservando su posición.
func (r *PartRepo) Update(_ context.Context, part *entity.Part) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(part.ID)
	if i < 0 {
		return false, nil
	}
	r.parts[i] = part.Clone()
	return true, nil
}

// Delete elimina por ID conservando el orden del resto.
func (r *PartRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.parts = append(r.parts[:i], r.parts[i+1:]...)
	return true, nil
}

func (r *PartRepo) indexOf(id string) int {
	for i := range r.parts {
		if r.parts[i].ID == id {
			return i
		}
	}
	return -1
}
