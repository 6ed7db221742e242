package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cats-shop/internal/config"
	"cats-shop/internal/database"
	"cats-shop/internal/handler"
	"cats-shop/internal/i18n"
	"cats-shop/internal/order"
	"cats-shop/internal/repository"
	"cats-shop/internal/router"
	"cats-shop/internal/service"
	"cats-shop/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting cats-shop server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the product store. The JSON file backend is the default;
	// postgres is opt-in for deployments that outgrow a single file.
	var productRepo repository.ProductRepository
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}
		productRepo = repository.NewPostgresStore(pool, logger)

	default:
		productRepo = repository.NewFileStore(cfg.Store.ProductsFile, logger)
		logger.Info().
			Str("path", cfg.Store.ProductsFile).
			Msg("using JSON file product store")
	}

	// Initialize order dispatch
	dispatcher := order.NewTelegramDispatcher(cfg.Telegram.Bot, logger)
	composer := order.NewComposer(dispatcher, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(productRepo, composer, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize the storefront pages
	bundle, err := i18n.LoadBundle()
	if err != nil {
		return fmt.Errorf("failed to load locale dictionaries: %w", err)
	}
	pages, err := web.NewPages(productService, orderService, bundle, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storefront pages: %w", err)
	}

	// Initialize router
	mux := router.New(cfg, productHandler, orderHandler, pages, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
