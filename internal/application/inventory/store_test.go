package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinder-parts-api/internal/application/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/eventbus"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var seedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeClock avanza un segundo en cada lectura.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) (*inventory.Store, *eventbus.Bus) {
	t.Helper()
	bus := eventbus.New()
	repo := memory.NewPartRepository(domaininv.DefaultCatalog(seedTime))
	clock := &fakeClock{t: seedTime}
	return inventory.NewStore(repo, bus, zerolog.Nop(), inventory.WithClock(clock.Now)), bus
}

func draft(name string, cat entity.Category, price string) inventory.PartDraft {
	return inventory.PartDraft{
		Name:          name,
		Description:   "desc " + name,
		PartNumber:    "PN-" + name,
		Category:      cat,
		Price:         decimal.RequireFromString(price),
		StockQuantity: 5,
		Manufacturer:  "TestCo",
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_IDUnicoYTimestampsIguales(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{"1": true, "2": true, "3": true}
	for i := 0; i < 50; i++ {
		p, err := store.Create(ctx, draft("p", entity.CategorySeal, "1.00"))
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "ID repetido: %s", p.ID)
		seen[p.ID] = true

		assert.False(t, p.CreatedAt.IsZero())
		assert.True(t, p.CreatedAt.Equal(p.UpdatedAt), "al crear ambos timestamps son iguales")
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 53)
}

func TestCreate_AgregaAlFinal(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p, err := store.Create(ctx, draft("nuevo", entity.CategoryBelt, "10"))
	require.NoError(t, err)

	list, _ := store.List(ctx)
	require.Len(t, list, 4)
	assert.Equal(t, p.ID, list[3].ID)
	assert.NotNil(t, list[3].Compatibility, "slices vacíos, no nil")
}

func TestCreate_RegistroDevueltoIgualAlLeido(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var snapshot []entity.Part
	_, err := store.Subscribe(func(parts []entity.Part) { snapshot = parts })
	require.NoError(t, err)

	p, err := store.Create(ctx, draft("vacío", entity.CategoryGasket, "3.50"))
	require.NoError(t, err)
	require.NotNil(t, p.Compatibility)
	require.NotNil(t, p.Specifications)

	got, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *p, *got)
	assert.NotNil(t, got.Compatibility)
	assert.NotNil(t, got.Specifications)

	require.Len(t, snapshot, 4)
	assert.Equal(t, *p, snapshot[3])
}

func TestCreate_NoValidaPrecioNiStockNegativos(t *testing.T) {
	// la validación vive en la capa HTTP; el store acepta cualquier valor
	store, _ := newTestStore(t)
	d := draft("neg", entity.CategoryOther, "-5")
	d.StockQuantity = -1
	p, err := store.Create(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, p.Price.IsNegative())
	assert.Equal(t, -1, p.StockQuantity)
}

func TestGetByID_AusenteDevuelveNil(t *testing.T) {
	store, _ := newTestStore(t)
	p, err := store.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MezclaCamposYRefrescaTimestamp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	stock := 99
	name := "Motor renovado"
	updated, err := store.Update(ctx, "1", inventory.PartPatch{StockQuantity: &stock, Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID, "el ID es inmutable")
	assert.Equal(t, 99, got.StockQuantity)
	assert.Equal(t, "Motor renovado", got.Name)
	assert.Equal(t, "GM-MOT-001", got.PartNumber, "campos no incluidos no cambian")
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	assert.True(t, got.UpdatedAt.After(seedTime))
}

func TestUpdate_RelojAtrasadoNoDejaUpdatedAntesDeCreated(t *testing.T) {
	bus := eventbus.New()
	repo := memory.NewPartRepository(domaininv.DefaultCatalog(seedTime))
	past := func() time.Time { return seedTime.Add(-time.Hour) }
	store := inventory.NewStore(repo, bus, zerolog.Nop(), inventory.WithClock(past))

	cat := entity.CategoryOther
	p, err := store.Update(context.Background(), "2", inventory.PartPatch{Category: &cat})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.UpdatedAt.Equal(p.CreatedAt))
}

func TestUpdate_ListasYPrecio(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p, err := store.Update(ctx, "3", inventory.PartPatch{
		Price:          decPtr("50.25"),
		Compatibility:  []string{},
		Specifications: []entity.Specification{{Name: "Seal", Value: "2RS"}},
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, decimal.RequireFromString("50.25").Equal(p.Price))
	assert.Empty(t, p.Compatibility, "slice vacío limpia la lista")
	assert.Len(t, p.Specifications, 1)
}

func TestUpdate_AusenteDevuelveNilSinPublicar(t *testing.T) {
	store, _ := newTestStore(t)
	calls := 0
	_, err := store.Subscribe(func([]entity.Part) { calls++ })
	require.NoError(t, err)

	name := "x"
	p, err := store.Update(context.Background(), "no-existe", inventory.PartPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Zero(t, calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EliminaUnoYConservaOrden(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ok, err := store.Delete(ctx, "2")
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := store.GetByID(ctx, "2")
	assert.Nil(t, got)

	list, _ := store.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "3", list[1].ID)

	ok, err = store.Delete(ctx, "2")
	require.NoError(t, err)
	assert.False(t, ok, "segunda eliminación devuelve false, no error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_CatalogoInicial(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	out, err := store.Search(ctx, domaininv.PartFilter{SearchTerm: "bearing"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.CategoryBearing, out[0].Category)

	out, err = store.Search(ctx, domaininv.PartFilter{Category: entity.CategoryBlade, MaxPrice: decPtr("50")})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearch_CategoriaConservaOrdenDeList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	_, _ = store.Create(ctx, draft("m2", entity.CategoryMotor, "10"))
	_, _ = store.Create(ctx, draft("b2", entity.CategoryBlade, "10"))
	_, _ = store.Create(ctx, draft("m3", entity.CategoryMotor, "10"))

	out, err := store.Search(ctx, domaininv.PartFilter{Category: entity.CategoryMotor})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "m2", out[1].Name)
	assert.Equal(t, "m3", out[2].Name)
}

func TestSearch_RangoDePrecios(t *testing.T) {
	store, _ := newTestStore(t)
	out, err := store.Search(context.Background(), domaininv.PartFilter{MinPrice: decPtr("50"), MaxPrice: decPtr("100")})
	require.NoError(t, err)
	for _, p := range out {
		assert.True(t, p.Price.GreaterThanOrEqual(decimal.NewFromInt(50)))
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(100)))
	}
	assert.Len(t, out, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshots
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_CadaMutacionPublicaSnapshotCompleto(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var sizes []int
	unsub, err := store.Subscribe(func(parts []entity.Part) { sizes = append(sizes, len(parts)) })
	require.NoError(t, err)

	p, _ := store.Create(ctx, draft("a", entity.CategoryScrew, "1"))
	stock := 1
	_, _ = store.Update(ctx, p.ID, inventory.PartPatch{StockQuantity: &stock})
	_, _ = store.Delete(ctx, "1")
	_, _ = store.Delete(ctx, "1") // no existe: no publica

	assert.Equal(t, []int{4, 4, 3}, sizes)

	unsub()
	_, _ = store.Create(ctx, draft("b", entity.CategoryScrew, "1"))
	assert.Len(t, sizes, 3, "después de la baja no se reciben snapshots")
}

func TestSubscribe_ElSnapshotEsUnaCopia(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Subscribe(func(parts []entity.Part) {
		for i := range parts {
			parts[i].Name = "mutado por observador"
		}
	})
	require.NoError(t, err)
	_, _ = store.Delete(ctx, "3")

	p, _ := store.GetByID(ctx, "1")
	require.NotNil(t, p)
	assert.Equal(t, "High-Speed Motor Assembly", p.Name)
}
