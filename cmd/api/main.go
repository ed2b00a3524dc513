package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ransara-lk/supermarket-api/internal/application/checkout"
	"github.com/ransara-lk/supermarket-api/internal/application/ledger"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
	infraai "github.com/ransara-lk/supermarket-api/internal/infrastructure/ai"
	infrapdf "github.com/ransara-lk/supermarket-api/internal/infrastructure/pdf"
	"github.com/ransara-lk/supermarket-api/internal/infrastructure/postgres"
	httpRouter "github.com/ransara-lk/supermarket-api/internal/interfaces/http"
	"github.com/ransara-lk/supermarket-api/pkg/config"
	"github.com/ransara-lk/supermarket-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewStockBatchRepository(pool)
	txRepo := postgres.NewStockTransactionRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewStockLedgerUseCase(txRunner, txRepo)
	batchUC := usecase.NewStockBatchUseCase(txRunner, batchRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, batchRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo)
	checkoutUC := checkout.NewCheckoutUseCase(txRunner, cartRepo, orderRepo)

	// PDF: directorio imprimible de proveedores
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, reportGenerator)

	// Clasificador de feedback: remoto si hay endpoint, heurístico local si no
	moderationSvc := infraai.NewModerationService(cfg.Moderation.Endpoint)
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo, moderationSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// El frontend corre en otro origen durante el desarrollo.
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermarket API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		BatchUC:    batchUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		CartUC:     cartUC,
		CheckoutUC: checkoutUC,
		SupplierUC: supplierUC,
		FeedbackUC: feedbackUC,
		JWTSecret:  cfg.JWT.Secret,
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
