package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trendx-service/internal/api"
	"trendx-service/internal/cache"
	"trendx-service/internal/database"
	"trendx-service/internal/logging"
	"trendx-service/internal/repository"
	"trendx-service/internal/service"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := database.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel).With("service", "trendx-shop")
	slog.SetDefault(logger)
	logger.Info("starting server", "addr", cfg.HTTPAddr, "store_driver", cfg.StoreDriver)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	var products repository.ProductRepository = store.Repos.Products
	var closeCache func() error
	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(ctx, cache.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("redis unavailable, product cache disabled", "error", err)
		} else {
			logger.Info("product cache enabled")
			products = cache.NewCachedProductRepository(products, rdb, logger)
			closeCache = rdb.Close
		}
	}

	router := api.NewRouter(api.Services{
		Products:  service.NewProductService(products, logger),
		Customers: service.NewCustomerService(store.Repos.Customers, logger),
		Orders:    service.NewOrderService(store.Repos.Orders, logger),
		Dashboard: service.NewDashboardService(store.Repos),
	}, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("server failure", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown incomplete", "error", err)
	}
	if closeCache != nil {
		if err := closeCache(); err != nil {
			logger.Warn("failed to close redis", "error", err)
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("failed to close store", "error", err)
	}

	logger.Info("server stopped")
	return serveErr
}
