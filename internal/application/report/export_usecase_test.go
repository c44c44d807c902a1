package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinder-parts-api/internal/application/report"
	"github.com/jhoicas/grinder-parts-api/internal/domain"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

// fakeSearcher aplica el filtro sobre el catálogo inicial.
type fakeSearcher struct{ err error }

func (f fakeSearcher) Search(_ context.Context, filter domaininv.PartFilter) ([]entity.Part, error) {
	if f.err != nil {
		return nil, f.err
	}
	return filter.Apply(domaininv.DefaultCatalog(time.Now())), nil
}

// recordingRenderer guarda lo que recibió.
type recordingRenderer struct {
	format string
	got    []entity.Part
}

func (r *recordingRenderer) Format() string { return r.format }

func (r *recordingRenderer) Render(_ context.Context, parts []entity.Part, _ time.Time) (*report.Document, error) {
	r.got = parts
	return &report.Document{Content: []byte("ok"), ContentType: "text/plain", Filename: "x." + r.format}, nil
}

func TestExport_AplicaFiltroYSeleccionaRenderer(t *testing.T) {
	csv := &recordingRenderer{format: "csv"}
	xml := &recordingRenderer{format: "xml"}
	uc := report.NewExportUseCase(fakeSearcher{}, csv, xml)

	doc, err := uc.Export(context.Background(), " CSV ", domaininv.PartFilter{Category: entity.CategoryBlade})
	require.NoError(t, err)

	assert.Equal(t, "x.csv", doc.Filename)
	require.Len(t, csv.got, 1)
	assert.Equal(t, "2", csv.got[0].ID)
	assert.Nil(t, xml.got)
	assert.Equal(t, []string{"csv", "xml"}, uc.Formats())
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := report.NewExportUseCase(fakeSearcher{}, &recordingRenderer{format: "csv"})

	_, err := uc.Export(context.Background(), "docx", domaininv.PartFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_PropagaErrorDeBusqueda(t *testing.T) {
	boom := errors.New("boom")
	uc := report.NewExportUseCase(fakeSearcher{err: boom}, &recordingRenderer{format: "csv"})

	_, err := uc.Export(context.Background(), "csv", domaininv.PartFilter{})
	assert.ErrorIs(t, err, boom)
}
