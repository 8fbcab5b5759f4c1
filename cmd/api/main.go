package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/coco-api/internal/application/auth"
	"github.com/jhoicas/coco-api/internal/application/booking"
	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/application/seed"
	"github.com/jhoicas/coco-api/internal/application/usecase"
	"github.com/jhoicas/coco-api/internal/infrastructure/notify"
	httpRouter "github.com/jhoicas/coco-api/internal/interfaces/http"
	"github.com/jhoicas/coco-api/pkg/config"
	"github.com/jhoicas/coco-api/pkg/credential"
	"github.com/jhoicas/coco-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("notifier", cfg.Notifier.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	notifier, notifierCloser, err := notify.New(cfg.Notifier, log)
	if err != nil {
		// log.Fatal no ejecuta los defer.
		st.close()
		log.Fatal().Err(err).Msg("notificador")
	}
	defer func() { _ = notifierCloser.Close() }()
	dispatcher := notification.NewDispatcher(notifier, log, cfg.Notifier.Timeout)

	if cfg.Seed.Companies {
		res, err := seed.NewSeeder(st.stores.Companies, log).Companies(ctx, cfg.Seed.CompaniesPath)
		if err != nil {
			log.Error().Err(err).Msg("seed de empresas")
		} else {
			log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("seed de empresas")
		}
	}

	policy := onboarding.CredentialPolicy{Length: cfg.Credentials.Length, BcryptCost: cfg.Credentials.BcryptCost}
	issuer := policy.Issuer()
	stores := st.stores

	deps := httpRouter.RouterDeps{
		AuthUC: auth.NewAuthUseCase(stores.Users, stores.Employees, credential.NewBcryptHasher(cfg.Credentials.BcryptCost), auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}, log),
		UserUC:       usecase.NewUserUseCase(stores.Users, stores.Employees),
		CompanyUC:    usecase.NewCompanyUseCase(stores.Companies, stores.Employees, stores.Users),
		CoworkingUC:  usecase.NewCoworkingUseCase(stores.Coworkings),
		RequestUC:    onboarding.NewRequestUseCase(stores, log),
		ActivationUC: onboarding.NewActivationUseCase(stores, st.tx, issuer, dispatcher, log),
		ProvisionUC:  onboarding.NewProvisionUseCase(stores, st.tx, issuer, dispatcher, log),
		BookingUC:    booking.NewUseCase(st.bookings, stores.Users, stores.Coworkings, dispatcher, log),
		JWTSecret:    cfg.JWT.Secret,
	}

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerPath,
				Path:     "docs",
				Title:    "Coco API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.SwaggerPath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	httpRouter.Router(app, deps)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}

	// Los avisos en vuelo se entregan antes de cerrar el notificador.
	dispatcher.Wait()
	log.Info().Msg("aplicación detenida")
}
