package entity

// Category categoría fija de un repuesto.
type Category string

// Categorías válidas.
const (
	CategoryMotor   Category = "motor"
	CategoryBlade   Category = "blade"
	CategoryHousing Category = "housing"
	CategoryBearing Category = "bearing"
	CategoryBelt    Category = "belt"
	CategorySwitch  Category = "switch"
	CategorySeal    Category = "seal"
	CategoryScrew   Category = "screw"
	CategoryGasket  Category = "gasket"
	CategoryOther   Category = "other"
)

// Categories devuelve la enumeración completa en orden de presentación.
func Categories() []Category {
	return []Category{
		CategoryMotor, CategoryBlade, CategoryHousing, CategoryBearing, CategoryBelt,
		CategorySwitch, CategorySeal, CategoryScrew, CategoryGasket, CategoryOther,
	}
}

// Valid indica si c pertenece a la enumeración.
func (c Category) Valid() bool {
	for _, v := range Categories() {
		if v == c {
			return true
		}
	}
	return false
}
