package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate instancia compartida (es segura para uso concurrente y cachea los structs).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como float64 (gte, required).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// validateStruct devuelve los errores por campo o nil si la entrada es válida.
func validateStruct(in any) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

// priceDecimals escala de la columna price (NUMERIC(12,2)).
const priceDecimals = 2

// checkPriceScale rechaza precios con más de dos decimales; el backend Postgres los redondearía.
// price nil (patch sin precio) no se valida. Un error previo del campo se conserva.
func checkPriceScale(fields map[string]string, price *decimal.Decimal) map[string]string {
	if price == nil || price.Equal(price.Round(priceDecimals)) {
		return fields
	}
	if fields == nil {
		fields = map[string]string{}
	}
	if _, seen := fields["price"]; !seen {
		fields["price"] = "admite como máximo 2 decimales"
	}
	return fields
}

// normalizeCategory compara categorías sin mayúsculas, igual que el filtro del listado.
func normalizeCategory(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "formato de email inválido"
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "eqfield":
		return "las contraseñas no coinciden"
	default:
		return "valor inválido"
	}
}
