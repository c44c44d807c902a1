package dto

import "github.com/jhoicas/grinder-parts-api/internal/domain/entity"

// ToPartResponse mapea la entidad a su representación JSON.
func ToPartResponse(p *entity.Part) *PartResponse {
	if p == nil {
		return nil
	}
	specs := make([]SpecificationDTO, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		specs = append(specs, SpecificationDTO{Name: s.Name, Value: s.Value, Unit: s.Unit})
	}
	return &PartResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PartNumber:     p.PartNumber,
		Category:       string(p.Category),
		Price:          p.Price,
		StockQuantity:  p.StockQuantity,
		Manufacturer:   p.Manufacturer,
		Compatibility:  append([]string{}, p.Compatibility...),
		ImageURL:       p.ImageURL,
		Specifications: specs,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPartResponses mapea un snapshot completo.
func ToPartResponses(parts []entity.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for i := range parts {
		out = append(out, *ToPartResponse(&parts[i]))
	}
	return out
}

// ToUserResponse mapea el usuario de la sesión; nil si no hay sesión.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToSpecifications descarta las entradas sin nombre o sin valor.
func ToSpecifications(in []SpecificationDTO) []entity.Specification {
	if in == nil {
		return nil
	}
	out := make([]entity.Specification, 0, len(in))
	for _, s := range in {
		if s.Name == "" || s.Value == "" {
			continue
		}
		out = append(out, entity.Specification{Name: s.Name, Value: s.Value, Unit: s.Unit})
	}
	return out
}
