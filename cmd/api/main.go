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
	"github.com/jhoicas/decima-pos/internal/application/auth"
	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/application/sales"
	"github.com/jhoicas/decima-pos/internal/application/session"
	"github.com/jhoicas/decima-pos/internal/infrastructure/decima"
	infrapdf "github.com/jhoicas/decima-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/decima-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/decima-pos/internal/interfaces/http"
	"github.com/jhoicas/decima-pos/pkg/config"
	"github.com/jhoicas/decima-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
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

	userRepo := postgres.NewUserRepository(pool)
	prefRepo := postgres.NewPreferenceRepository(pool)
	recordRepo := postgres.NewCheckoutRecordRepository(pool)

	// Cliente del ERP Decima: catálogos, ventas y preparador de DTE
	erp := decima.NewClient(cfg.Decima, log.Zerolog())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(erp)
	checkoutUC := sales.NewCheckoutUseCase(erp, erp, recordRepo)
	listUC := sales.NewListUseCase(erp)
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.BusinessName)
	receiptUC := sales.NewReceiptUseCase(erp, receiptGen)
	sessionUC := session.NewSessionUseCase(prefRepo, catalogUC)

	// Limpieza periódica de claves de idempotencia vencidas
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if err := recordRepo.DeleteExpired(sweepCtx); err != nil {
					log.Warn().Err(err).Msg("limpieza de claves de idempotencia")
				}
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New hace panic si el archivo no existe, así que solo se
	// registra cuando está presente; sin él la API sirve igual.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Decima POS API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		CheckoutUC: checkoutUC,
		ListUC:     listUC,
		ReceiptUC:  receiptUC,
		SessionUC:  sessionUC,
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
