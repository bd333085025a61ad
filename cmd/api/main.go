package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/infrastructure/legacy"
	"github.com/jhoicas/fulfilment-api/internal/infrastructure/location"
	"github.com/jhoicas/fulfilment-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fulfilment-api/internal/interfaces/http"
	"github.com/jhoicas/fulfilment-api/pkg/config"
	"github.com/jhoicas/fulfilment-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	var locs []entity.Location
	for _, lc := range cfg.Locations {
		locs = append(locs, entity.Location{
			Identification:        lc.Identification,
			MaxNumberOfWarehouses: lc.MaxWarehouses,
			MaxCapacity:           lc.MaxCapacity,
		})
	}
	catalog := location.NewCatalog(locs)

	legacyGateway := legacy.NewStoreManagerGateway(log, cfg.Legacy.Dir)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, catalog)
	fulfilmentUC := usecase.NewFulfilmentUseCase(assignmentRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, legacyGateway)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fulfilment API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC:  warehouseUC,
		FulfilmentUC: fulfilmentUC,
		StoreUC:      storeUC,
		ProductUC:    productUC,
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

	log.Info().Msg("aplicación detenida")
}
