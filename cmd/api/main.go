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

	"github.com/sarvcafe/cafepos-api/internal/application/auth"
	"github.com/sarvcafe/cafepos-api/internal/application/inventory"
	"github.com/sarvcafe/cafepos-api/internal/application/reporting"
	"github.com/sarvcafe/cafepos-api/internal/application/sales"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
	infrapdf "github.com/sarvcafe/cafepos-api/internal/infrastructure/pdf"
	"github.com/sarvcafe/cafepos-api/internal/infrastructure/postgres"
	"github.com/sarvcafe/cafepos-api/internal/infrastructure/printing"
	httpRouter "github.com/sarvcafe/cafepos-api/internal/interfaces/http"
	"github.com/sarvcafe/cafepos-api/pkg/config"
	"github.com/sarvcafe/cafepos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	printerRepo := postgres.NewPrinterRepository(pool)
	printJobRepo := postgres.NewPrintJobRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceGen := infrapdf.NewMarotoInvoiceGenerator()
	dispatcher := printing.NewIPPDispatcher(cfg.Printer.IPPEndpoint)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledgerUC := inventory.NewLedgerUseCase(txRunner, productRepo, logRepo, saleRepo)
	menuUC := usecase.NewMenuUseCase(menuItemRepo)
	publicMenuUC := usecase.NewPublicMenuUseCase(userRepo, menuItemRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, menuItemRepo, userRepo, invoiceGen, cfg.Invoice.Dir, log)
	printerUC := usecase.NewPrinterUseCase(printerRepo, printJobRepo, dispatcher)
	reportUC := reporting.NewReportUseCase(saleRepo, menuItemRepo, productRepo, logRepo)
	adminUC := usecase.NewAdminUseCase(userRepo)
	profileUC := usecase.NewProfileUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	subscriptionUC := usecase.NewSubscriptionUseCase(userRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sarv Cafe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		LedgerUC:       ledgerUC,
		MenuUC:         menuUC,
		PublicMenuUC:   publicMenuUC,
		SaleUC:         saleUC,
		PrinterUC:      printerUC,
		ReportUC:       reportUC,
		AdminUC:        adminUC,
		ProfileUC:      profileUC,
		CustomerUC:     customerUC,
		SubscriptionUC: subscriptionUC,
		JWTSecret:      cfg.JWT.Secret,
		CookieMaxAge:   time.Duration(cfg.JWT.Expiration) * time.Minute,
		SecureCookies:  cfg.App.Env == "production",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
