// Package docs registra la especificación OpenAPI de la API en swag.
// swagger.json va embebido en el binario y se sirve en /docs con gofiber/contrib/swagger.
package docs

import (
	_ "embed"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo información de la API exportada para uso externo.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Grinder Parts API",
	Description:      "Catálogo de repuestos para molinos de granos con sesión simulada.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// JSON devuelve el documento OpenAPI embebido.
func JSON() []byte {
	return []byte(docTemplate)
}

// Handler sirve la UI en /docs y el documento en /swagger.json desde la copia embebida,
// sin depender del directorio de trabajo.
func Handler(title string) fiber.Handler {
	return swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "swagger.json",
		FileContent: JSON(),
		Path:        "docs",
		Title:       title,
	})
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
