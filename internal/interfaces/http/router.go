package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/decima-pos/internal/application/auth"
	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/application/sales"
	"github.com/jhoicas/decima-pos/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *catalog.CatalogUseCase
	CheckoutUC *sales.CheckoutUseCase
	ListUC     *sales.ListUseCase
	ReceiptUC  *sales.ReceiptUseCase
	SessionUC  *session.SessionUseCase
	JWTSecret  string
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

	protected.Post("/auth/validate-token", authHandler.ValidateToken)

	// Catálogos del ERP (protegido)
	catalogs := protected.Group("/catalogs")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogs.Get("/articles", catalogHandler.Articles)
	catalogs.Get("/clients", catalogHandler.Clients)
	catalogs.Get("/document-types", catalogHandler.DocumentTypes)
	catalogs.Get("/payment-terms", catalogHandler.PaymentTerms)
	catalogs.Get("/payment-forms", catalogHandler.PaymentForms)
	catalogs.Get("/sale-points", catalogHandler.SalePoints)

	// Ventas (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.CheckoutUC, deps.ListUC, deps.ReceiptUC)
	salesGroup.Post("/checkout", salesHandler.Checkout)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id/receipt", salesHandler.Receipt)

	// Sesión de caja (protegido)
	sessionGroup := protected.Group("/session")
	sessionHandler := NewSessionHandler(deps.SessionUC)
	sessionGroup.Get("/sale-point", sessionHandler.GetSalePoint)
	sessionGroup.Put("/sale-point", sessionHandler.SetSalePoint)
}
