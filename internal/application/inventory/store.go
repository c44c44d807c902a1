// Package inventory contiene el store del catálogo de repuestos: CRUD, búsqueda y
// difusión del snapshot completo a los observadores después de cada mutación.
package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinder-parts-api/internal/application/ports"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

// PartDraft datos para crear un repuesto (sin ID ni timestamps).
type PartDraft struct {
	Name           string
	Description    string
	PartNumber     string
	Category       entity.Category
	Price          decimal.Decimal
	StockQuantity  int
	Manufacturer   string
	Compatibility  []string
	ImageURL       string
	Specifications []entity.Specification
}

// PartPatch actualización parcial: solo se aplican los campos no nil. El ID no es modificable.
type PartPatch struct {
	Name           *string
	Description    *string
	PartNumber     *string
	Category       *entity.Category
	Price          *decimal.Decimal
	StockQuantity  *int
	Manufacturer   *string
	Compatibility  []string // nil = sin cambio; vacío = limpiar
	ImageURL       *string
	Specifications []entity.Specification
}

// Store casos de uso del catálogo. Las mutaciones se serializan: mutación, snapshot y
// publicación ocurren dentro del mismo turno, así los observadores ven los snapshots en orden.
// Los observadores corren de forma síncrona y no deben invocar operaciones de escritura.
type Store struct {
	repo   repository.PartRepository
	events ports.EventPublisher
	log    zerolog.Logger

	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

// StoreOption ajusta dependencias secundarias (reloj, generador de IDs).
type StoreOption func(*Store)

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator reemplaza la generación de UUIDs.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

// NewStore construye el store del catálogo.
func NewStore(repo repository.PartRepository, events ports.EventPublisher, log zerolog.Logger, opts ...StoreOption) *Store {
	s := &Store{
		repo:   repo,
		events: events,
		log:    log.With().Str("component", "inventory_store").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List devuelve el snapshot completo en orden de inserción.
func (s *Store) List(ctx context.Context) ([]entity.Part, error) {
	return s.repo.List(ctx)
}

// GetByID devuelve el repuesto o nil si no existe (la ausencia no es un error).
func (s *Store) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	return s.repo.GetByID(ctx, id)
}

// Create asigna un UUID, fija ambos timestamps al mismo instante, agrega y publica.
func (s *Store) Create(ctx context.Context, in PartDraft) (*entity.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	part := &entity.Part{
		ID:             s.newID(),
		Name:           in.Name,
		Description:    in.Description,
		PartNumber:     in.PartNumber,
		Category:       in.Category,
		Price:          in.Price,
		StockQuantity:  in.StockQuantity,
		Manufacturer:   in.Manufacturer,
		Compatibility:  nonNilStrings(in.Compatibility),
		ImageURL:       in.ImageURL,
		Specifications: nonNilSpecs(in.Specifications),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	s.log.Info().Str("part_id", part.ID).Str("part_number", part.PartNumber).Msg("repuesto creado")
	s.publishSnapshot(ctx)
	return part, nil
}

// Update mezcla los campos del patch y refresca UpdatedAt. Devuelve nil si el ID no existe.
func (s *Store) Update(ctx context.Context, id string, patch PartPatch) (*entity.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	applyPatch(part, patch)

	now := s.now()
	if now.Before(part.CreatedAt) {
		now = part.CreatedAt
	}
	part.UpdatedAt = now

	ok, err := s.repo.Update(ctx, part)
	if err != nil {
		return nil, err
	}
	if !ok {
		// eliminado por otro backend entre la lectura y la escritura
		return nil, nil
	}
	s.log.Info().Str("part_id", id).Msg("repuesto actualizado")
	s.publishSnapshot(ctx)
	return part, nil
}

// Delete elimina el repuesto y publica. Devuelve false si no existía.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	s.log.Info().Str("part_id", id).Msg("repuesto eliminado")
	s.publishSnapshot(ctx)
	return true, nil
}

// Search aplica el filtro sobre el snapshot completo conservando el orden relativo.
func (s *Store) Search(ctx context.Context, filter domaininv.PartFilter) ([]entity.Part, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(parts), nil
}

// Subscribe registra un observador de snapshots. Devuelve la función para darlo de baja.
func (s *Store) Subscribe(fn func([]entity.Part)) (func(), error) {
	return s.events.Subscribe(ports.TopicPartsSnapshot, func(payload any) {
		parts, _ := payload.([]entity.Part)
		fn(parts)
	})
}

// publishSnapshot toma el snapshot posterior a la mutación y lo difunde.
// Un error de lectura no revierte la mutación: se registra y no se publica.
func (s *Store) publishSnapshot(ctx context.Context) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot del catálogo")
		return
	}
	s.events.Publish(ports.TopicPartsSnapshot, snapshot)
}

func applyPatch(p *entity.Part, in PartPatch) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PartNumber != nil {
		p.PartNumber = *in.PartNumber
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	if in.Manufacturer != nil {
		p.Manufacturer = *in.Manufacturer
	}
	if in.Compatibility != nil {
		p.Compatibility = append([]string{}, in.Compatibility...)
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Specifications != nil {
		p.Specifications = append([]entity.Specification{}, in.Specifications...)
	}
}

func nonNilStrings(s []string) []string {
	return append([]string{}, s...)
}

func nonNilSpecs(s []entity.Specification) []entity.Specification {
	return append([]entity.Specification{}, s...)
}
