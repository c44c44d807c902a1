package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpecificationDTO entrada/salida de una especificación técnica.
type SpecificationDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// CreatePartRequest entrada para crear un repuesto.
type CreatePartRequest struct {
	Name           string             `json:"name" validate:"required"`
	Description    string             `json:"description" validate:"required"`
	PartNumber     string             `json:"partNumber" validate:"required"`
	Category       string             `json:"category" validate:"required,oneof=motor blade housing bearing belt switch seal screw gasket other"`
	Price          decimal.Decimal    `json:"price" validate:"required,gte=0.01"`
	StockQuantity  int                `json:"stockQuantity" validate:"gte=0"`
	Manufacturer   string             `json:"manufacturer" validate:"required"`
	Compatibility  []string           `json:"compatibility"`
	ImageURL       string             `json:"imageUrl"`
	Specifications []SpecificationDTO `json:"specifications"`
}

// UpdatePartRequest entrada para actualizar un repuesto (campos opcionales; el ID no se modifica).
// Las listas ausentes (null) no se tocan; una lista vacía las limpia.
type UpdatePartRequest struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	PartNumber     *string            `json:"partNumber"`
	Category       *string            `json:"category" validate:"omitempty,oneof=motor blade housing bearing belt switch seal screw gasket other"`
	Price          *decimal.Decimal   `json:"price" validate:"omitempty,gte=0.01"`
	StockQuantity  *int               `json:"stockQuantity" validate:"omitempty,gte=0"`
	Manufacturer   *string            `json:"manufacturer"`
	Compatibility  []string           `json:"compatibility"`
	ImageURL       *string            `json:"imageUrl"`
	Specifications []SpecificationDTO `json:"specifications"`
}

// PartResponse salida de un repuesto.
type PartResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	PartNumber     string             `json:"partNumber"`
	Category       string             `json:"category"`
	Price          decimal.Decimal    `json:"price"`
	StockQuantity  int                `json:"stockQuantity"`
	Manufacturer   string             `json:"manufacturer"`
	Compatibility  []string           `json:"compatibility"`
	ImageURL       string             `json:"imageUrl,omitempty"`
	Specifications []SpecificationDTO `json:"specifications"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// PartListResponse listado (completo o filtrado) de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Total int            `json:"total"`
}

// DeletePartResponse resultado de una eliminación.
type DeletePartResponse struct {
	Deleted bool `json:"deleted"`
}

// CategoryListResponse enumeración fija de categorías.
type CategoryListResponse struct {
	Items []string `json:"items"`
}
