package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/grinder-parts-api/docs"
	appanalytics "github.com/jhoicas/grinder-parts-api/internal/application/analytics"
	"github.com/jhoicas/grinder-parts-api/internal/application/auth"
	"github.com/jhoicas/grinder-parts-api/internal/application/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/application/report"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	domaininv "github.com/jhoicas/grinder-parts-api/internal/domain/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/csvexport"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/eventbus"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/grinder-parts-api/internal/infrastructure/pdf"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/sessionstore"
	"github.com/jhoicas/grinder-parts-api/internal/infrastructure/xmlcatalog"
	httpRouter "github.com/jhoicas/grinder-parts-api/internal/interfaces/http"
	"github.com/jhoicas/grinder-parts-api/pkg/config"
	"github.com/jhoicas/grinder-parts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("inventory_backend", cfg.Inventory.Backend).
		Str("session_backend", cfg.Session.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	zl := log.Zerolog()
	bus := eventbus.New()

	// ── Catálogo ──────────────────────────────────────────────────────────────
	var partRepo repository.PartRepository
	switch cfg.Inventory.Backend {
	case config.InventoryBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgRepo := postgres.NewPartRepository(pool)
		if cfg.Inventory.Seed {
			n, err := inventory.SeedIfEmpty(ctx, pgRepo, domaininv.DefaultCatalog(time.Now().UTC()))
			if err != nil {
				log.Fatal().Err(err).Msg("carga inicial del catálogo")
			}
			log.Info().Int("parts", n).Msg("catálogo inicial cargado")
		}
		partRepo = pgRepo
	default:
		var seed []entity.Part
		if cfg.Inventory.Seed {
			seed = domaininv.DefaultCatalog(time.Now().UTC())
		}
		partRepo = memory.NewPartRepository(seed)
	}

	partStore := inventory.NewStore(partRepo, bus, zl)
	unsubscribeParts, err := partStore.Subscribe(func(snapshot []entity.Part) {
		zl.Debug().Int("parts", len(snapshot)).Msg("snapshot del catálogo publicado")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("suscripción al catálogo")
	}
	defer unsubscribeParts()

	// ── Sesión ────────────────────────────────────────────────────────────────
	storage, err := sessionstore.New(ctx, cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de sesión")
	}
	defer storage.Close()

	var tokens auth.TokenIssuer = auth.PlaceholderTokenIssuer{}
	if cfg.JWT.Secret != "" {
		tokens = auth.NewJWTTokenIssuer(auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
	}
	sessionStore := auth.NewSessionStore(ctx, storage, tokens, bus, zl)

	// ── Casos de uso auxiliares ───────────────────────────────────────────────
	dashboardUC := appanalytics.NewDashboardUseCase(partStore)
	exportUC := report.NewExportUseCase(partStore,
		csvexport.NewRenderer(),
		xmlcatalog.NewRenderer(),
		infrapdf.NewCatalogRenderer(cfg.App.Name),
	)

	sched := scheduler.New()
	if err := sched.Register(cfg.Inventory.LowStockCron, scheduler.NewLowStockJob(partStore, zl)); err != nil {
		log.Fatal().Err(err).Msg("tarea de stock bajo")
	}
	sched.Start()

	// ── HTTP ──────────────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(docs.Handler("Grinder Parts API"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     sessionStore,
		Parts:       partStore,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sched.Stop(shutdownCtx)

	log.Info().Msg("aplicación detenida")
}
