package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/internal/infrastructure/memory"
	"github.com/jhoicas/coco-api/internal/infrastructure/postgres"
	"github.com/jhoicas/coco-api/pkg/config"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// storage repositorios y TxRunner del backend elegido por DB_DRIVER.
type storage struct {
	stores   onboarding.Stores
	bookings repository.BookingRepository
	tx       onboarding.TxRunner
	close    func()
}

func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	switch cfg.Driver {
	case "memory":
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		db := memory.NewDB()
		return &storage{stores: db.Stores(), bookings: db.Bookings(), tx: db, close: func() {}}, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Msg("migraciones aplicadas")
		}
		return &storage{
			stores:   postgres.NewStores(pool),
			bookings: postgres.NewBookingRepository(pool),
			tx:       postgres.NewTxRunner(pool),
			close:    pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("DB_DRIVER %q no soportado", cfg.Driver)
	}
}
