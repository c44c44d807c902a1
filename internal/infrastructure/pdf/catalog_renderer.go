// Package pdf genera el listado imprimible del catálogo de repuestos con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + cantidad      │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Parte | Nombre | Categoría | Fabricante | Precio │
//	│         | Stock (resaltado si es bajo)                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Valor del inventario                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/grinder-parts-api/internal/application/report"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ report.Renderer = (*CatalogRenderer)(nil)

// CatalogRenderer implementa report.Renderer para "pdf".
type CatalogRenderer struct {
	title string
}

// NewCatalogRenderer construye el renderer; title aparece en el encabezado y en los metadatos.
func NewCatalogRenderer(title string) *CatalogRenderer {
	if title == "" {
		title = "Catálogo de repuestos"
	}
	return &CatalogRenderer{title: title}
}

// Format implementa report.Renderer.
func (*CatalogRenderer) Format() string { return report.FormatPDF }

// Render implementa report.Renderer.
func (r *CatalogRenderer) Render(_ context.Context, parts []entity.Part, generatedAt time.Time) (*report.Document, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r.title, len(parts), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(parts)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(domaininv.Summarize(parts), totalUnits(parts)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return &report.Document{
		Content:     doc.GetBytes(),
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("parts-%s.pdf", generatedAt.Format("20060102-150405")),
	}, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, count int, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d repuestos", count), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Parte", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Fabricante", 2, align.Left),
		h("Precio", 1, align.Right),
		h("Stock", 1, align.Right),
	)
}

// tableRows una fila por repuesto; el stock bajo se resalta.
func tableRows(parts []entity.Part) []core.Row {
	out := make([]core.Row, 0, len(parts))
	for i := range parts {
		p := &parts[i]
		stockProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if domaininv.IsLowStock(p) {
			stockProps.Style = fontstyle.Bold
			stockProps.Color = colorAlert
		}
		out = append(out, row.New(7).Add(
			col.New(2).Add(text.New(p.PartNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(p.Category), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Manufacturer, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New("$"+p.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.StockQuantity), stockProps)),
		))
	}
	return out
}

func totalsRow(s domaininv.Summary, units int) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades:"),
			label("Stock bajo:"),
			label("Valor total:"),
		),
		col.New(3).Add(
			value(strconv.Itoa(units)),
			value(strconv.Itoa(s.LowStockParts)),
			value("$"+s.TotalValue.StringFixed(2)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func totalUnits(parts []entity.Part) int {
	n := 0
	for i := range parts {
		n += parts[i].StockQuantity
	}
	return n
}
