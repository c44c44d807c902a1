// seed_parts carga el catálogo por defecto (repuestos "1", "2" y "3") en PostgreSQL
// si la tabla parts está vacía. Aplica las migraciones antes de insertar.
//
// Uso: go run ./cmd/seed_parts
// Lee la conexión de DATABASE_URL o DB_HOST, DB_PORT, etc. (igual que cmd/api).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/grinder-parts-api/internal/application/inventory"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/grinder-parts-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	n, err := inventory.SeedIfEmpty(ctx, postgres.NewPartRepository(pool), domaininv.DefaultCatalog(time.Now().UTC()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar catálogo: %v\n", err)
		os.Exit(1)
	}
	if n == 0 {
		fmt.Println("La tabla parts ya tiene datos; no se insertó nada.")
		return
	}
	fmt.Printf("Insertados %d repuestos.\n", n)
}
