package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/routes"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/auth"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/checkout"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cms"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/hero"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/reviews"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/users"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/wishlist"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/auth/session"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/logger"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/metrics"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/migrate"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		dbClient.Close()
		os.Exit(1)
	}
	defer func() {
		if err := multierr.Combine(redisClient.Close(), dbClient.Close()); err != nil {
			logg.Error(context.Background(), "error closing backing clients", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo, cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cmsService, err := cms.NewService(cms.NewRepository(dbClient.DB()), redisClient, cfg.CMS)
	if err != nil {
		logg.Error(context.Background(), "failed to create cms service", err)
		os.Exit(1)
	}

	heroService, err := hero.NewService(hero.ServiceParams{
		Repository: hero.NewRepository(dbClient.DB()),
		Config:     cfg.Hero,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create hero service", err)
		os.Exit(1)
	}

	guestCarts, err := cart.NewGuestStore(redisClient, cfg.Checkout.GuestCartTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create guest cart store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		Repository: cart.NewRepository(dbClient.DB()),
		Products:   catalogRepo,
		GuestStore: guestCarts,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Repository: wishlist.NewRepository(dbClient.DB()),
		Products:   catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	reviewsService, err := reviews.NewService(reviews.ServiceParams{
		Repository: reviews.NewRepository(dbClient.DB()),
		Products:   catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}

	linkBuilder, err := checkout.NewLinkBuilder(cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create whatsapp link builder", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Carts: cartService,
		Links: linkBuilder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		CartMerger:     cartService,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			Sessions:        sessionManager,
			Auth:            authService,
			Catalog:         catalogService,
			CMS:             cmsService,
			Hero:            heroService,
			Cart:            cartService,
			Wishlist:        wishlistService,
			Reviews:         reviewsService,
			Checkout:        checkoutService,
			HTTPMetrics:     httpMetrics,
			MetricsRegistry: registry,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-sigCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
