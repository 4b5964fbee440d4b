package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasct/ventapos-api/internal/application/auth"
	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/application/checkout"
	"github.com/nicolasct/ventapos-api/internal/application/notification"
	"github.com/nicolasct/ventapos-api/internal/application/usecase"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	SaleUC         *usecase.SaleUseCase
	ReportUC       *usecase.ReportUseCase
	NotificationUC *notification.UseCase
	Carts          *cart.Manager
	Checkouts      *checkout.Manager
	Workflow       *checkout.Workflow
	ProductRepo    repository.ProductRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	// Catálogo: lectura para cualquier sesión, mutaciones solo admin
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Carrito de la sesión
	carrito := protected.Group("/carrito")
	cartHandler := NewCartHandler(deps.Carts, deps.ProductRepo)
	carrito.Get("/", cartHandler.Get)
	carrito.Delete("/", cartHandler.Clear)
	carrito.Post("/items", cartHandler.AddItem)
	carrito.Put("/items/:id", cartHandler.SetQuantity)
	carrito.Delete("/items/:id", cartHandler.RemoveItem)

	// Flujo de compra
	chk := protected.Group("/checkout")
	checkoutHandler := NewCheckoutHandler(deps.Carts, deps.Checkouts, deps.Workflow)
	chk.Get("/", checkoutHandler.State)
	chk.Post("/iniciar", checkoutHandler.Start)
	chk.Put("/metodo", checkoutHandler.SelectMethod)
	chk.Post("/confirmar", checkoutHandler.Confirm)
	chk.Post("/cancelar", checkoutHandler.Cancel)

	// Ventas: historial global solo admin, historial propio para todos
	saleHandler := NewSaleHandler(deps.SaleUC)
	ventas := protected.Group("/ventas", admin)
	ventas.Get("/", saleHandler.List)
	ventas.Get("/:id", saleHandler.GetByID)
	protected.Get("/mis-compras", saleHandler.ListMine)

	// Reportes (solo admin)
	reportes := protected.Group("/reportes", admin)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportes.Get("/resumen", reportHandler.Summary)
	reportes.Get("/ventas-por-dia", reportHandler.SalesByDay)
	reportes.Get("/top-productos", reportHandler.TopProducts)

	// Notificaciones: alertas de stock solo admin, personales para todos
	notif := protected.Group("/notificaciones")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notif.Get("/stock", admin, notificationHandler.ListStockAlerts)
	notif.Delete("/stock/:id", admin, notificationHandler.DeleteStockAlert)
	notif.Get("/", notificationHandler.ListMine)
	notif.Delete("/:id", notificationHandler.DeleteMine)
}
