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

	_ "github.com/nicolasct/ventapos-api/docs"
	"github.com/nicolasct/ventapos-api/internal/application/auth"
	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/application/checkout"
	"github.com/nicolasct/ventapos-api/internal/application/notification"
	"github.com/nicolasct/ventapos-api/internal/application/usecase"
	"github.com/nicolasct/ventapos-api/internal/infrastructure/postgres"
	httpRouter "github.com/nicolasct/ventapos-api/internal/interfaces/http"
	"github.com/nicolasct/ventapos-api/pkg/config"
	"github.com/nicolasct/ventapos-api/pkg/eventbus"
	"github.com/nicolasct/ventapos-api/pkg/logger"
)

// @title                       VentaPOS API
// @version                     1.0
// @description                 API del punto de venta: catálogo, carrito, checkout, historial y notificaciones.
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bus := eventbus.New()
	defer bus.WaitAsync()

	notificationUC := notification.NewUseCase(notifRepo, productRepo, bus)
	productUC := usecase.NewProductUseCase(productRepo, notificationUC)
	saleUC := usecase.NewSaleUseCase(saleRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	carts := cart.NewManager()
	checkouts := checkout.NewManager()
	gateway := checkout.NewSimulatedGateway(time.Duration(cfg.Checkout.PaymentDelayMS) * time.Millisecond)
	workflow := checkout.NewWorkflow(
		txRunner, gateway, notifRepo, bus, log,
		time.Duration(cfg.Checkout.ConfirmHoldMS)*time.Millisecond,
	)

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
		Title:    "VentaPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		SaleUC:         saleUC,
		ReportUC:       reportUC,
		NotificationUC: notificationUC,
		Carts:          carts,
		Checkouts:      checkouts,
		Workflow:       workflow,
		ProductRepo:    productRepo,
		JWTSecret:      cfg.JWT.Secret,
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
