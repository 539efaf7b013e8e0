package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/go-storefront/internal/app/storefront"
	catalogpostgres "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogdomain "github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-storefront/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-storefront/internal/platform/postgres"
)

// catalog-seed migrates the products table and upserts the default catalog.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := storefront.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := platformobservability.NewLogger(os.Stdout, cfg.Observability("catalog-seed"))
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		log.Fatalf("cannot seed catalog: %v", err)
	}
	defer platformpostgres.Closer(db)()

	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		log.Fatalf("failed to migrate catalog schema: %v", err)
	}
	products := catalogdomain.DefaultProducts()
	if err := catalogpostgres.NewRepository(db).Seed(ctx, products); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	logger.Info("catalog seed completed", slog.Int("products", len(products)))
}
