package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinder-parts-api/internal/application/analytics"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/memory"
)

type failingLister struct{}

func (failingLister) List(context.Context) ([]entity.Part, error) {
	return nil, errors.New("db caída")
}

func TestGetSummary_CatalogoInicial(t *testing.T) {
	repo := memory.NewPartRepository(domaininv.DefaultCatalog(time.Now()))
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalParts)
	assert.Equal(t, 3, out.InStockParts)
	assert.Equal(t, 0, out.LowStockParts)
	assert.Equal(t, "8653.53", out.TotalValue.StringFixed(2))
	require.Len(t, out.RecentParts, 3)
	assert.Equal(t, "1", out.RecentParts[0].ID)
}

func TestGetSummary_ReflejaMutaciones(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPartRepository(domaininv.DefaultCatalog(time.Now()))
	uc := analytics.NewDashboardUseCase(repo)

	p, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	p.StockQuantity = 0
	_, err = repo.Update(ctx, p)
	require.NoError(t, err)

	out, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, out.InStockParts)
	// agotado también cuenta como stock bajo
	assert.Equal(t, 1, out.LowStockParts)
}

func TestGetSummary_PropagaError(t *testing.T) {
	uc := analytics.NewDashboardUseCase(failingLister{})
	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}
