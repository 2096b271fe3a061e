package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shopwave/shopwave-backend/api/routes"
	"github.com/shopwave/shopwave-backend/internal/cart"
	"github.com/shopwave/shopwave-backend/internal/catalog"
	checkoutsvc "github.com/shopwave/shopwave-backend/internal/checkout"
	"github.com/shopwave/shopwave-backend/internal/notifier"
	"github.com/shopwave/shopwave-backend/internal/orders"
	"github.com/shopwave/shopwave-backend/internal/profile"
	"github.com/shopwave/shopwave-backend/internal/settings"
	"github.com/shopwave/shopwave-backend/pkg/config"
	"github.com/shopwave/shopwave-backend/pkg/env"
	"github.com/shopwave/shopwave-backend/pkg/kv"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/metrics"
	pkgredis "github.com/shopwave/shopwave-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := kv.Open(context.Background(), cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open store", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing store", err)
		}
	}()

	var idempotencyStore pkgredis.IdempotencyStore
	if cfg.Redis.Enabled() {
		redisClient, err := pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		idempotencyStore = redisClient
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpStats := metrics.NewHTTPMetrics(registry)
	checkoutStats := metrics.NewCheckoutMetrics(registry)

	feed := notifier.NewFeed(cfg.Notifier.FeedSize, logg)
	catalogService := catalog.NewService(logg)
	cartService := cart.NewService(cart.NewRepository(store), feed, logg)
	orderService := orders.NewService(store, logg)
	checkoutService := checkoutsvc.NewService(cartService, orderService, feed, logg, checkoutStats, cfg.Checkout.ProcessingDelay)
	profileService := profile.NewService(profile.NewRepository(store), feed, logg)
	settingsService := settings.NewService(store)

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:    cfg,
			Logger:    logg,
			Store:     store,
			Redis:     idempotencyStore,
			Registry:  registry,
			HTTPStats: httpStats,
			Catalog:   catalogService,
			Cart:      cartService,
			Checkout:  checkoutService,
			Profile:   profileService,
			Settings:  settingsService,
			Orders:    orderService,
			Feed:      feed,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
