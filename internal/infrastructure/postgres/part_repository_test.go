package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/pkg/config"
)

// getTestRepo conecta a TEST_DATABASE_URL; sin base de datos disponible el test se omite.
func getTestRepo(t *testing.T) *PartRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	t.Cleanup(pool.Close)
	_, err = pool.Exec(ctx, `TRUNCATE parts`)
	require.NoError(t, err)
	return NewPartRepository(pool)
}

func newTestPart(name string) *entity.Part {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &entity.Part{
		ID:            uuid.NewString(),
		Name:          name,
		PartNumber:    "PN-" + name,
		Category:      entity.CategorySeal,
		Price:         decimal.RequireFromString("12.34"),
		StockQuantity: 3,
		Manufacturer:  "SealCo",
		Compatibility: []string{"GT-2000"},
		Specifications: []entity.Specification{
			{Name: "Material", Value: "NBR"},
			{Name: "Diameter", Value: "30", Unit: "mm"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPartRepo_CrearListarYOrden(t *testing.T) {
	repo := getTestRepo(t)
	ctx := context.Background()

	first, second := newTestPart("a"), newTestPart("b")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.True(t, first.Price.Equal(list[0].Price))
	assert.Equal(t, first.Specifications, list[0].Specifications)
	assert.Equal(t, []string{"GT-2000"}, list[0].Compatibility)
}

func TestPartRepo_UpdateYDelete(t *testing.T) {
	repo := getTestRepo(t)
	ctx := context.Background()

	p := newTestPart("c")
	require.NoError(t, repo.Create(ctx, p))

	p.StockQuantity = 42
	p.UpdatedAt = p.UpdatedAt.Add(time.Second)
	ok, err := repo.Update(ctx, p)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, got.StockQuantity)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
