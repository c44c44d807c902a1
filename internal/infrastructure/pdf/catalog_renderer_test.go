package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/pdf"
)

func TestRender_GeneraPDF(t *testing.T) {
	at := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	doc, err := pdf.NewCatalogRenderer("").Render(context.Background(), domaininv.DefaultCatalog(at), at)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "parts-20260210-090000.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")), "debe ser un PDF")
}

func TestRender_CatalogoVacio(t *testing.T) {
	doc, err := pdf.NewCatalogRenderer("Vacío").Render(context.Background(), []entity.Part{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Content)
}
