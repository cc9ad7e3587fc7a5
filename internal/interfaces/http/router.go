package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/auth"
	"github.com/sarvcafe/cafepos-api/internal/application/inventory"
	"github.com/sarvcafe/cafepos-api/internal/application/reporting"
	"github.com/sarvcafe/cafepos-api/internal/application/sales"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	LedgerUC       *inventory.LedgerUseCase
	MenuUC         *usecase.MenuUseCase
	PublicMenuUC   *usecase.PublicMenuUseCase
	SaleUC         *sales.SaleUseCase
	PrinterUC      *usecase.PrinterUseCase
	ReportUC       *reporting.ReportUseCase
	AdminUC        *usecase.AdminUseCase
	ProfileUC      *usecase.ProfileUseCase
	CustomerUC     *usecase.CustomerUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	JWTSecret      string
	CookieMaxAge   time.Duration
	SecureCookies  bool
}

// Router registers the API routes. SessionMiddleware runs on everything and
// never rejects; the per-group guards decide access.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.JWTSecret))

	anyPlan := RequirePlan(entity.TierBasic, entity.TierProfessional)
	professionalOnly := RequirePlan(entity.TierProfessional)

	// Auth (public, except the session probe which just reads Locals)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieMaxAge, deps.SecureCookies)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Public menu (no auth)
	menuHandler := NewMenuHandler(deps.MenuUC, deps.PublicMenuUC)
	api.Get("/public/menu/:slug", menuHandler.PublicMenu)

	// Subscription: check is session-aware but never rejects; upgrade needs a user
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	api.Post("/subscription/check", subscriptionHandler.Check)
	api.Post("/subscription/upgrade", RequireUser(), subscriptionHandler.RequestUpgrade)

	// Inventory (any active plan)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	products := api.Group("/products", anyPlan)
	products.Post("/", inventoryHandler.CreateProduct)
	products.Get("/", inventoryHandler.ListProducts)
	products.Put("/:id", inventoryHandler.UpdateProduct)
	products.Delete("/:id", inventoryHandler.DeleteProduct)
	products.Get("/:id/ledger", inventoryHandler.Ledger)
	api.Post("/inventory/adjust", anyPlan, inventoryHandler.AdjustStock)

	// Menu (any active plan)
	menu := api.Group("/menu", anyPlan)
	menu.Post("/", menuHandler.Create)
	menu.Get("/", menuHandler.List)
	menu.Get("/categories", menuHandler.Categories)
	menu.Get("/share", menuHandler.ShareSlug)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", menuHandler.Delete)

	// Sales (any active plan)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := api.Group("/sales", anyPlan)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Put("/payment-method", saleHandler.UpdatePaymentMethod)
	salesGroup.Get("/:id", saleHandler.Get)
	salesGroup.Get("/:id/invoice", saleHandler.Invoice)

	// Printers (any active plan; quotas enforced in the use case)
	printerHandler := NewPrinterHandler(deps.PrinterUC)
	printers := api.Group("/printers", anyPlan)
	printers.Post("/", printerHandler.Register)
	printers.Get("/", printerHandler.List)
	printers.Post("/jobs", professionalOnly, printerHandler.CreateJob)

	// Reports: summary and accounting for every plan, analytics gated
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := api.Group("/reports")
	reports.Get("/summary", anyPlan, reportHandler.Summary)
	reports.Get("/accounting", anyPlan, reportHandler.Timeframe)
	reports.Get("/materials", anyPlan, reportHandler.MaterialsSpend)
	reports.Get("/analytics", professionalOnly, reportHandler.Analytics)

	// Profile & customers (any active plan)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	api.Get("/profile", anyPlan, profileHandler.Get)
	api.Put("/profile", anyPlan, profileHandler.Update)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := api.Group("/customers", anyPlan)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Admin console (admin sessions only)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := api.Group("/admin", RequireAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/active", adminHandler.SetActive)
	admin.Put("/users/plan", adminHandler.SetPlan)
	admin.Put("/users/online-menu", adminHandler.SetOnlineMenu)
}
