package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kuvot/artorders/internal/analytics"
	"github.com/kuvot/artorders/internal/catalog"
	catalogStore "github.com/kuvot/artorders/internal/catalog/store"
	"github.com/kuvot/artorders/internal/config"
	"github.com/kuvot/artorders/internal/database"
	"github.com/kuvot/artorders/internal/export"
	artHttp "github.com/kuvot/artorders/internal/http"
	analyticsHandler "github.com/kuvot/artorders/internal/http/analytics"
	catalogHandler "github.com/kuvot/artorders/internal/http/catalog"
	exportHandler "github.com/kuvot/artorders/internal/http/export"
	orderHandler "github.com/kuvot/artorders/internal/http/order"
	productHandler "github.com/kuvot/artorders/internal/http/product"
	shippingHandler "github.com/kuvot/artorders/internal/http/shipping"
	"github.com/kuvot/artorders/internal/order"
	orderStore "github.com/kuvot/artorders/internal/order/store"
	"github.com/kuvot/artorders/internal/product"
	productStore "github.com/kuvot/artorders/internal/product/store"
	"github.com/kuvot/artorders/internal/shipping"
	shippingStore "github.com/kuvot/artorders/internal/shipping/store"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		catalogService   = catalog.NewService(catalogStore.New(db))
		productService   = product.NewService(productStore.New(db))
		orderService     = order.NewService(orderStore.New(db), catalogService, productService)
		analyticsService = analytics.NewService(orderService)
		exportService    = export.NewService(orderService)
		shippingService  = shipping.NewService(
			shippingStore.New(db),
			shipping.NewClient(cfg.Carrier.BaseURL),
			orderService,
		)
	)

	if cfg.Seed.Enabled {
		seed(catalogService, shippingService)
	}

	var (
		catalogH   = catalogHandler.NewHandler(catalogService)
		productH   = productHandler.NewHandler(productService)
		orderH     = orderHandler.NewHandler(orderService)
		analyticsH = analyticsHandler.NewHandler(analyticsService)
		exportH    = exportHandler.NewHandler(exportService)
		shippingH  = shippingHandler.NewHandler(shippingService)
	)

	router := artHttp.New(cfg.CORS.AllowedOrigins, catalogH, productH, orderH, analyticsH, exportH, shippingH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func seed(catalogService *catalog.Service, shippingService *shipping.Service) {
	ctx := context.Background()

	created, err := catalogService.Seed(ctx)
	if err != nil {
		slog.Error("failed to seed price catalog", "error", err)
		os.Exit(1)
	}

	if created > 0 {
		slog.Info("seeded price catalog", "entries", created)
	}

	created, err = shippingService.SeedTemplates(ctx)
	if err != nil {
		slog.Error("failed to seed dimension templates", "error", err)
		os.Exit(1)
	}

	if created > 0 {
		slog.Info("seeded dimension templates", "templates", created)
	}
}
