package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinventory "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/usecase"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/infrastructure/metrics"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/interfaces/http"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/pkg/config"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockQueryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiveStockUC := appinventory.NewReceiveStockUseCase(txRunner, productRepo, locationRepo)
	createTransferUC := appinventory.NewCreateTransferUseCase(txRunner, locationRepo, productRepo)
	transferQueryUC := appinventory.NewTransferQueryUseCase(transferRepo)
	stockQueryUC := appinventory.NewStockQueryUseCase(stockRepo, batchRepo, locationRepo, movementRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReceiveStock:   receiveStockUC,
		CreateTransfer: createTransferUC,
		TransferQuery:  transferQueryUC,
		StockQuery:     stockQueryUC,
		LocationUC:     locationUC,
		ProductUC:      productUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	var metricsSrv *metrics.Server
	if cfg.Metrics.Enabled {
		metricsSrv = metrics.NewServer(cfg.Metrics.Addr)
		go func() {
			if err := metricsSrv.Start(); err != nil {
				log.Error().Err(err).Msg("servidor de métricas finalizado")
			}
		}()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("métricas expuestas")
	}

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
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}

	log.Info().Msg("aplicación detenida")
}
