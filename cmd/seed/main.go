// seed inserta el catálogo inicial de empresas sin levantar la API.
//
// Uso: go run ./cmd/seed [ruta/companies.json]
// Sin argumento usa SEED_COMPANIES_PATH o, si está vacío, el catálogo embebido.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/coco-api/internal/application/seed"
	"github.com/jhoicas/coco-api/internal/infrastructure/postgres"
	"github.com/jhoicas/coco-api/pkg/config"
	"github.com/jhoicas/coco-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	path := cfg.Seed.CompaniesPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	res, err := seed.NewSeeder(postgres.NewCompanyRepository(pool), log).Companies(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Empresas creadas: %d, omitidas: %d\n", res.Created, res.Skipped)
}
