// Package csvexport renderiza el catálogo como CSV con gocsv.
package csvexport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/grinder-parts-api/internal/application/report"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

var _ report.Renderer = (*Renderer)(nil)

// partRow una fila del CSV. Listas y especificaciones se aplanan en una sola celda.
type partRow struct {
	ID             string `csv:"id"`
	PartNumber     string `csv:"part_number"`
	Name           string `csv:"name"`
	Category       string `csv:"category"`
	Manufacturer   string `csv:"manufacturer"`
	Price          string `csv:"price"`
	StockQuantity  int    `csv:"stock_quantity"`
	Compatibility  string `csv:"compatibility"`
	Specifications string `csv:"specifications"`
	Description    string `csv:"description"`
	ImageURL       string `csv:"image_url"`
	CreatedAt      string `csv:"created_at"`
	UpdatedAt      string `csv:"updated_at"`
}

// Renderer implementa report.Renderer para "csv".
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Format implementa report.Renderer.
func (*Renderer) Format() string { return report.FormatCSV }

// Render implementa report.Renderer. Con cero repuestos devuelve solo la cabecera.
func (*Renderer) Render(_ context.Context, parts []entity.Part, generatedAt time.Time) (*report.Document, error) {
	rows := make([]*partRow, 0, len(parts))
	for i := range parts {
		rows = append(rows, toRow(&parts[i]))
	}
	content, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("csv: serializar: %w", err)
	}
	return &report.Document{
		Content:     content,
		ContentType: "text/csv; charset=utf-8",
		Filename:    fmt.Sprintf("parts-%s.csv", generatedAt.Format("20060102-150405")),
	}, nil
}

func toRow(p *entity.Part) *partRow {
	specs := make([]string, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		v := s.Name + "=" + s.Value
		if s.Unit != "" {
			v += " " + s.Unit
		}
		specs = append(specs, v)
	}
	return &partRow{
		ID:             p.ID,
		PartNumber:     safeCell(p.PartNumber),
		Name:           safeCell(p.Name),
		Category:       string(p.Category),
		Manufacturer:   safeCell(p.Manufacturer),
		Price:          p.Price.StringFixed(2),
		StockQuantity:  p.StockQuantity,
		Compatibility:  safeCell(strings.Join(p.Compatibility, "|")),
		Specifications: safeCell(strings.Join(specs, "; ")),
		Description:    safeCell(p.Description),
		ImageURL:       safeCell(p.ImageURL),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// safeCell antepone ' a las celdas de texto libre que una hoja de cálculo evaluaría como fórmula.
func safeCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}
