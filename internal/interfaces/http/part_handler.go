package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinder-parts-api/internal/application/dto"
	"github.com/jhoicas/grinder-parts-api/internal/application/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/application/report"
	"github.com/jhoicas/grinder-parts-api/internal/domain"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
)

// PartHandler maneja el catálogo de repuestos (protegido por sesión).
type PartHandler struct {
	store  *inventory.Store
	export *report.ExportUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(store *inventory.Store, export *report.ExportUseCase) *PartHandler {
	return &PartHandler{store: store, export: export}
}

// List godoc
// @Summary      Listar o buscar repuestos
// @Description  Sin parámetros devuelve el catálogo completo; con filtros aplica la búsqueda secuencial.
// @Tags         parts
// @Produce      json
// @Param        category      query  string  false  "Categoría exacta"
// @Param        manufacturer  query  string  false  "Subcadena del fabricante (sin mayúsculas)"
// @Param        min_price     query  number  false  "Precio mínimo (inclusive)"
// @Param        max_price     query  number  false  "Precio máximo (inclusive)"
// @Param        in_stock      query  bool    false  "Solo con stock"
// @Param        search        query  string  false  "Término en nombre, descripción o número de parte"
// @Success      200  {object}  dto.PartListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	filter, fields := parseFilter(c)
	if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Fields: fields})
	}
	var (
		parts []entity.Part
		err   error
	)
	if filter.IsEmpty() {
		parts, err = h.store.List(c.UserContext())
	} else {
		parts, err = h.store.Search(c.UserContext(), filter)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PartListResponse{Items: dto.ToPartResponses(parts), Total: len(parts)})
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         parts
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(dto.ToPartResponse(p))
}

// Create godoc
// @Summary      Crear repuesto
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Category = normalizeCategory(in.Category)
	fields := checkPriceScale(validateStruct(in), &in.Price)
	if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del repuesto inválidos", Fields: fields})
	}
	p, err := h.store.Create(c.UserContext(), inventory.PartDraft{
		Name:           in.Name,
		Description:    in.Description,
		PartNumber:     in.PartNumber,
		Category:       entity.Category(in.Category),
		Price:          in.Price,
		StockQuantity:  in.StockQuantity,
		Manufacturer:   in.Manufacturer,
		Compatibility:  cleanList(in.Compatibility),
		ImageURL:       in.ImageURL,
		Specifications: dto.ToSpecifications(in.Specifications),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPartResponse(p))
}

// Update godoc
// @Summary      Actualizar repuesto
// @Description  Solo se modifican los campos enviados; el ID nunca cambia.
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdatePartRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Category != nil {
		cat := normalizeCategory(*in.Category)
		in.Category = &cat
	}
	fields := checkPriceScale(validateStruct(in), in.Price)
	for name, v := range map[string]*string{
		"name": in.Name, "description": in.Description, "partNumber": in.PartNumber, "manufacturer": in.Manufacturer,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			if fields == nil {
				fields = map[string]string{}
			}
			fields[name] = "no puede estar vacío"
		}
	}
	if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del repuesto inválidos", Fields: fields})
	}

	patch := inventory.PartPatch{
		Name:          in.Name,
		Description:   in.Description,
		PartNumber:    in.PartNumber,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		Manufacturer:  in.Manufacturer,
		ImageURL:      in.ImageURL,
	}
	if in.Category != nil {
		cat := entity.Category(*in.Category)
		patch.Category = &cat
	}
	if in.Compatibility != nil {
		patch.Compatibility = cleanList(in.Compatibility)
	}
	if in.Specifications != nil {
		patch.Specifications = dto.ToSpecifications(in.Specifications)
	}

	p, err := h.store.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(dto.ToPartResponse(p))
}

// Delete godoc
// @Summary      Eliminar repuesto
// @Tags         parts
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.DeletePartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(dto.DeletePartResponse{Deleted: true})
}

// Export godoc
// @Summary      Exportar catálogo
// @Description  Exporta el catálogo (con los mismos filtros que el listado) en CSV, XML o PDF.
// @Description  El XML incluye una huella BLAKE2b-256 del contenido canónico que se envía como ETag.
// @Tags         parts
// @Produce      text/csv
// @Produce      application/xml
// @Produce      application/pdf
// @Param        format  query  string  false  "csv | xml | pdf"  default(csv)
// @Success      200
// @Success      304
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/parts/export [get]
func (h *PartHandler) Export(c *fiber.Ctx) error {
	filter, fields := parseFilter(c)
	if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Fields: fields})
	}
	doc, err := h.export.Export(c.UserContext(), c.Query("format", report.FormatCSV), filter)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "UNSUPPORTED_FORMAT",
				Message: "formato no soportado; use uno de: " + strings.Join(h.export.Formats(), ", "),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if doc.Digest != "" {
		etag := `"` + doc.Digest + `"`
		c.Set(fiber.HeaderETag, etag)
		if c.Get(fiber.HeaderIfNoneMatch) == etag {
			return c.SendStatus(fiber.StatusNotModified)
		}
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Content)
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         parts
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *PartHandler) Categories(c *fiber.Ctx) error {
	cats := entity.Categories()
	items := make([]string, 0, len(cats))
	for _, cat := range cats {
		items = append(items, string(cat))
	}
	return c.JSON(dto.CategoryListResponse{Items: items})
}

// ── helpers ───────────────────────────────────────────────────────────────────

// parseFilter lee los parámetros de búsqueda; los ausentes o vacíos no filtran.
func parseFilter(c *fiber.Ctx) (domaininv.PartFilter, map[string]string) {
	var (
		f      domaininv.PartFilter
		fields map[string]string
	)
	fail := func(name, msg string) {
		if fields == nil {
			fields = map[string]string{}
		}
		fields[name] = msg
	}

	if v := strings.TrimSpace(c.Query("category")); v != "" {
		cat := entity.Category(normalizeCategory(v))
		if !cat.Valid() {
			fail("category", "categoría desconocida")
		}
		f.Category = cat
	}
	f.Manufacturer = strings.TrimSpace(c.Query("manufacturer"))
	f.SearchTerm = strings.TrimSpace(c.Query("search"))

	for _, p := range []struct {
		name string
		dst  **decimal.Decimal
	}{{"min_price", &f.MinPrice}, {"max_price", &f.MaxPrice}} {
		v := strings.TrimSpace(c.Query(p.name))
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			fail(p.name, "debe ser un número")
			continue
		}
		*p.dst = &d
	}

	if v := strings.TrimSpace(c.Query("in_stock")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fail("in_stock", "debe ser true o false")
		}
		f.InStock = b
	}
	return f, fields
}

// cleanList descarta entradas vacías; conserva nil para distinguir "sin cambio".
func cleanList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
