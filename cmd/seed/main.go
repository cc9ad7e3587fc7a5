// seed creates the admin account and, optionally, a demo cafe with menu
// items and raw materials so a fresh environment is usable right away.
//
// Usage: go run ./cmd/seed [-demo]
// Reads the same configuration as the API (env / .env).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/internal/infrastructure/postgres"
	"github.com/sarvcafe/cafepos-api/pkg/config"
	"github.com/sarvcafe/cafepos-api/pkg/logger"
)

func main() {
	demo := flag.Bool("demo", false, "also seed a demo cafe with menu and inventory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	adminPhone := envOr("SEED_ADMIN_PHONE", "09120000000")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "admin-change-me")

	if err := ensureAccount(userRepo, accountSpec{
		Name:     "Sarv Admin",
		Phone:    adminPhone,
		Password: adminPassword,
		Role:     entity.RoleAdmin,
		Tier:     entity.TierProfessional,
		Active:   true,
	}, log); err != nil {
		log.Fatal().Err(err).Msg("create admin account")
	}

	if *demo {
		if err := seedDemoCafe(ctx, pool, userRepo, log); err != nil {
			log.Fatal().Err(err).Msg("seed demo cafe")
		}
	}
}

type accountSpec struct {
	Name     string
	Phone    string
	Password string
	Role     string
	Tier     string
	Active   bool
}

// ensureAccount creates the account when the phone is not registered yet.
func ensureAccount(userRepo repository.UserRepository, spec accountSpec, log *logger.Logger) error {
	existing, err := userRepo.GetByPhone(spec.Phone)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Str("phone", spec.Phone).Msg("account already present")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(spec.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:               uuid.New().String(),
		Name:             spec.Name,
		Phone:            spec.Phone,
		PasswordHash:     string(hash),
		Role:             spec.Role,
		SubscriptionTier: spec.Tier,
		Active:           spec.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := userRepo.Create(user); err != nil {
		return err
	}
	log.Info().Str("phone", spec.Phone).Str("role", spec.Role).Msg("account created")
	return nil
}

// seedDemoCafe creates an active demo tenant with a few raw materials (each
// with its initial-stock ledger entry) and menu items.
func seedDemoCafe(ctx context.Context, pool *pgxpool.Pool, userRepo repository.UserRepository, log *logger.Logger) error {
	demoPhone := "09121112233"
	if err := ensureAccount(userRepo, accountSpec{
		Name:     "کافه سرو",
		Phone:    demoPhone,
		Password: envOr("SEED_DEMO_PASSWORD", "demo-change-me"),
		Role:     entity.RoleUser,
		Tier:     entity.TierProfessional,
		Active:   true,
	}, log); err != nil {
		return err
	}
	demo, err := userRepo.GetByPhone(demoPhone)
	if err != nil {
		return err
	}

	productRepo := postgres.NewProductRepository(pool)
	existing, err := productRepo.ListByUser(demo.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info().Msg("demo cafe already seeded")
		return nil
	}

	txRunner := postgres.NewTxRunner(pool)
	now := time.Now()

	materials := []struct {
		Name  string
		Price int64
		Stock int64
		Unit  string
	}{
		{"coffee beans", 900000, 10, "kg"},
		{"milk", 80000, 24, "liter"},
		{"cocoa powder", 350000, 3, "kg"},
	}
	for _, mat := range materials {
		product := &entity.Product{
			ID:        uuid.New().String(),
			UserID:    demo.ID,
			Name:      mat.Name,
			Price:     decimal.NewFromInt(mat.Price),
			Stock:     mat.Stock,
			StockUnit: mat.Unit,
			Category:  "ingredients",
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
			if err := productRepo.Create(product); err != nil {
				return err
			}
			return logRepo.Create(&entity.InventoryLog{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Change:    mat.Stock,
				Reason:    entity.ReasonInitialStock,
				CreatedAt: now,
			})
		})
		if err != nil {
			return err
		}
	}

	menuRepo := postgres.NewMenuItemRepository(pool)
	items := []struct {
		Name     string
		Price    int64
		Cost     int64
		Category string
	}{
		{"espresso", 60000, 18000, "coffee"},
		{"latte", 85000, 30000, "coffee"},
		{"hot chocolate", 95000, 35000, "warm drinks"},
	}
	for _, it := range items {
		cost := decimal.NewFromInt(it.Cost)
		if err := menuRepo.Create(&entity.MenuItem{
			ID:        uuid.New().String(),
			UserID:    demo.ID,
			Name:      it.Name,
			Price:     decimal.NewFromInt(it.Price),
			Cost:      &cost,
			Category:  it.Category,
			Materials: []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}
	}

	log.Info().Str("phone", demoPhone).Msg("demo cafe seeded")
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
