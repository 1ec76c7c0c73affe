// seed crea los datos iniciales para un despliegue nuevo: el usuario ADMIN y,
// con --demo, una tienda con productos y stock de ejemplo para probar la API.
//
// Uso: go run ./cmd/seed [--demo]
// El password del admin se lee de SEED_ADMIN_PASSWORD (obligatorio).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-tiendas/internal/application/ledger"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventario-tiendas/pkg/config"
	"github.com/tu-usuario/inventario-tiendas/pkg/logger"
)

func main() {
	demo := len(os.Args) > 1 && os.Args[1] == "--demo"

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Admin: idempotente, si ya existe no se toca.
	admin, err := userRepo.GetByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		admin = &entity.User{
			ID:           uuid.New().String(),
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("user_id", admin.ID).Msg("usuario admin creado")
	} else {
		log.Info().Msg("usuario admin ya existe, sin cambios")
	}

	if !demo {
		return
	}

	// Datos de demostración: una tienda, tres productos y stock inicial.
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      "Tienda Centro",
		Address:   "Av. Principal 123",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := storeRepo.Create(store); err != nil {
		log.Fatal().Err(err).Msg("crear tienda demo")
	}

	products := []struct {
		sku, name, unit string
		price, initial  string
		minimum         string
	}{
		{"SKU-001", "Arroz Extra 1kg", "UND", "4.50", "120", "20"},
		{"SKU-002", "Aceite Girasol 1L", "UND", "9.90", "40", "10"},
		{"SKU-003", "Detergente 500g", "UND", "6.20", "0", "5"},
	}

	ledgerUC := ledger.NewUseCase(txRunner, storeRepo, productRepo, stockRepo, movementRepo)
	for _, p := range products {
		product := &entity.Product{
			ID:        uuid.New().String(),
			SKU:       p.sku,
			Name:      p.name,
			Unit:      p.unit,
			UnitPrice: decimal.RequireFromString(p.price),
			Active:    true,
			StoreID:   store.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := productRepo.Create(product); err != nil {
			log.Fatal().Err(err).Str("sku", p.sku).Msg("crear producto demo")
		}
		if err := ledgerUC.SetMinimum(ctx, store.ID, product.ID, decimal.RequireFromString(p.minimum)); err != nil {
			log.Fatal().Err(err).Str("sku", p.sku).Msg("fijar mínimo demo")
		}
		initial := decimal.RequireFromString(p.initial)
		if initial.IsZero() {
			continue
		}
		err := ledgerUC.Adjust(ctx, ledger.AdjustInput{
			StoreID:   store.ID,
			ProductID: product.ID,
			Delta:     initial,
			UserID:    admin.ID,
			Note:      "carga inicial",
		})
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.sku).Msg("stock inicial demo")
		}
	}

	log.Info().Str("store_id", store.ID).Msg("datos de demostración creados")
}
