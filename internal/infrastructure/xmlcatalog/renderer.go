// Package xmlcatalog renderiza el catálogo como XML (etree) y calcula una huella
// BLAKE2b-256 sobre su forma canónica C14N, usada como ETag.
package xmlcatalog

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
	"golang.org/x/crypto/blake2b"

	"github.com/jhoicas/grinder-parts-api/internal/application/report"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

// Namespace del documento de catálogo.
const Namespace = "urn:grinder-parts:catalog:1"

var _ report.Renderer = (*Renderer)(nil)

// Renderer implementa report.Renderer para "xml".
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Format implementa report.Renderer.
func (*Renderer) Format() string { return report.FormatXML }

// Render implementa report.Renderer.
//
// La huella se calcula antes de agregar generatedAt: dos exportaciones del mismo
// contenido producen el mismo Digest aunque se generen en instantes distintos.
func (*Renderer) Render(_ context.Context, parts []entity.Part, generatedAt time.Time) (*report.Document, error) {
	body := etree.NewDocument()
	root := buildCatalog(body, parts)

	digest, err := Digest(body)
	if err != nil {
		return nil, err
	}
	root.CreateAttr("generatedAt", generatedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("digest", digest)

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.AddChild(root)
	out.Indent(2)
	content, err := out.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return &report.Document{
		Content:     content,
		ContentType: "application/xml; charset=utf-8",
		Filename:    fmt.Sprintf("parts-%s.xml", generatedAt.Format("20060102-150405")),
		Digest:      digest,
	}, nil
}

// Digest devuelve la huella hexadecimal BLAKE2b-256 de la forma canónica del documento.
func Digest(doc *etree.Document) (string, error) {
	raw, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xml: serializar para huella: %w", err)
	}
	canonical, err := canonicalize(raw)
	if err != nil {
		return "", fmt.Errorf("xml: canonicalizar: %w", err)
	}
	sum := blake2b.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func buildCatalog(doc *etree.Document, parts []entity.Part) *etree.Element {
	root := doc.CreateElement("catalog")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("count", strconv.Itoa(len(parts)))
	for i := range parts {
		appendPart(root, &parts[i])
	}
	return root
}

func appendPart(root *etree.Element, p *entity.Part) {
	el := root.CreateElement("part")
	el.CreateAttr("id", p.ID)
	el.CreateAttr("category", string(p.Category))

	el.CreateElement("partNumber").SetText(p.PartNumber)
	el.CreateElement("name").SetText(p.Name)
	el.CreateElement("description").SetText(p.Description)
	el.CreateElement("manufacturer").SetText(p.Manufacturer)
	el.CreateElement("price").SetText(p.Price.StringFixed(2))
	el.CreateElement("stockQuantity").SetText(strconv.Itoa(p.StockQuantity))
	if p.ImageURL != "" {
		el.CreateElement("imageUrl").SetText(p.ImageURL)
	}

	compat := el.CreateElement("compatibility")
	for _, model := range p.Compatibility {
		compat.CreateElement("model").SetText(model)
	}

	specs := el.CreateElement("specifications")
	for _, s := range p.Specifications {
		spec := specs.CreateElement("spec")
		spec.CreateAttr("name", s.Name)
		if s.Unit != "" {
			spec.CreateAttr("unit", s.Unit)
		}
		spec.SetText(s.Value)
	}

	el.CreateElement("createdAt").SetText(p.CreatedAt.UTC().Format(time.RFC3339))
	el.CreateElement("updatedAt").SetText(p.UpdatedAt.UTC().Format(time.RFC3339))
}
