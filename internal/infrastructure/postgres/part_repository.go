package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/grinder-parts-api/internal/domain"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, name, description, part_number, category, price, stock_quantity, manufacturer,
	compatibility, image_url, specifications, created_at, updated_at`

// specRow forma JSON de una especificación en la columna JSONB.
type specRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// List devuelve todos los repuestos en orden de inserción.
func (r *PartRepo) List(ctx context.Context) ([]entity.Part, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partColumns+` FROM parts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// GetByID obtiene un repuesto por ID; (nil, nil) si no existe.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	row := r.q.QueryRow(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
	p, err := scanPart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create persiste un nuevo repuesto al final del catálogo.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	specs, err := encodeSpecs(part.Specifications)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO parts (` + partColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		part.ID, part.Name, part.Description, part.PartNumber, string(part.Category),
		part.Price, part.StockQuantity, part.Manufacturer, nonNil(part.Compatibility),
		part.ImageURL, specs, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert part %s: %w", part.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// Update reescribe todas las columnas mutables. created_at y position no cambian.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) (bool, error) {
	specs, err := encodeSpecs(part.Specifications)
	if err != nil {
		return false, err
	}
	query := `
		UPDATE parts SET name = $2, description = $3, part_number = $4, category = $5, price = $6,
			stock_quantity = $7, manufacturer = $8, compatibility = $9, image_url = $10,
			specifications = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		part.ID, part.Name, part.Description, part.PartNumber, string(part.Category),
		part.Price, part.StockQuantity, part.Manufacturer, nonNil(part.Compatibility),
		part.ImageURL, specs, part.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update part: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un repuesto por ID.
func (r *PartRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete part: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var (
		p        entity.Part
		category string
		specs    []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PartNumber, &category, &p.Price,
		&p.StockQuantity, &p.Manufacturer, &p.Compatibility, &p.ImageURL, &specs,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan part: %w", err)
	}
	p.Category = entity.Category(category)
	if p.Specifications, err = decodeSpecs(specs); err != nil {
		return nil, err
	}
	return &p, nil
}

func encodeSpecs(specs []entity.Specification) ([]byte, error) {
	rows := make([]specRow, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, specRow{Name: s.Name, Value: s.Value, Unit: s.Unit})
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode specifications: %w", err)
	}
	return b, nil
}

func decodeSpecs(b []byte) ([]entity.Specification, error) {
	if len(b) == 0 {
		return []entity.Specification{}, nil
	}
	var rows []specRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("decode specifications: %w", err)
	}
	out := make([]entity.Specification, 0, len(rows))
	for _, s := range rows {
		out = append(out, entity.Specification{Name: s.Name, Value: s.Value, Unit: s.Unit})
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
