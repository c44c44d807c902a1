// Package report exporta el catálogo (completo o filtrado) a formatos descargables.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/grinder-parts-api/internal/domain"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

// Formatos soportados.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
	FormatPDF = "pdf"
)

// Document resultado de una exportación.
type Document struct {
	Content     []byte
	ContentType string
	Filename    string
	// Digest huella del contenido canónico (se sirve como ETag); vacío si el formato no la calcula.
	Digest string
}

// Renderer convierte un snapshot de repuestos a un formato concreto.
type Renderer interface {
	Format() string
	Render(ctx context.Context, parts []entity.Part, generatedAt time.Time) (*Document, error)
}

// PartSearcher fuente del snapshot filtrado (implementada por inventory.Store).
type PartSearcher interface {
	Search(ctx context.Context, filter domaininv.PartFilter) ([]entity.Part, error)
}

// ExportUseCase selecciona el renderer por formato y exporta el resultado de la búsqueda.
type ExportUseCase struct {
	parts     PartSearcher
	renderers map[string]Renderer
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso con los renderers disponibles.
func NewExportUseCase(parts PartSearcher, renderers ...Renderer) *ExportUseCase {
	m := make(map[string]Renderer, len(renderers))
	for _, r := range renderers {
		m[r.Format()] = r
	}
	return &ExportUseCase{parts: parts, renderers: m, now: time.Now}
}

// Formats devuelve los formatos registrados en orden alfabético.
func (uc *ExportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Export filtra el catálogo y lo renderiza en el formato pedido.
// Un formato desconocido devuelve un error que envuelve domain.ErrUnsupportedFormat y domain.ErrInvalidInput.
func (uc *ExportUseCase) Export(ctx context.Context, format string, filter domaininv.PartFilter) (*Document, error) {
	r, ok := uc.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("export %q: %w (%w)", format, domain.ErrUnsupportedFormat, domain.ErrInvalidInput)
	}
	parts, err := uc.parts.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export: buscar repuestos: %w", err)
	}
	doc, err := r.Render(ctx, parts, uc.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", r.Format(), err)
	}
	return doc, nil
}
