package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oneMinuteShop/app/echo-server/router"
	"oneMinuteShop/business/orders"
	"oneMinuteShop/business/product"
	"oneMinuteShop/business/tenant"
	"oneMinuteShop/internal/middleware"
	redisRepo "oneMinuteShop/internal/repository/redis"
	"oneMinuteShop/internal/rest"
	"oneMinuteShop/pkg/config"
	redisClient "oneMinuteShop/pkg/database/redis"
	"oneMinuteShop/pkg/logger"
	"oneMinuteShop/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.App.Environment, cfg.App.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "backend", cfg.Database.Backend)

	metrics.Init()

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := openStorage(startCtx, cfg)
	startCancel()
	if err != nil {
		logger.Fatal("Failed to open storage", "backend", cfg.Database.Backend, "error", err)
	}

	logger.Info("Storage ready", "backend", cfg.Database.Backend)

	// Tenant cache is optional; resolution works straight from the store.
	var tenantCache tenant.TenantCache
	if cfg.Redis.Enabled() {
		client, err := redisClient.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, tenant cache disabled", "error", err)
		} else {
			defer redisClient.CloseRedisClient(client)
			tenantCache = redisRepo.NewTenantCache(client, cfg.Cache.TenantTTL)
			logger.Info("Tenant cache enabled", "ttl", cfg.Cache.TenantTTL.String())
		}
	}

	// Init service
	resolver := tenant.NewResolver(store.tenants, tenantCache)
	guard := tenant.NewGuard(resolver)
	tenantService := tenant.NewTenantService(store.tenants)
	productService := product.NewProductService(store.products, resolver, guard)
	ordersService := orders.NewOrdersService(store.orders, resolver)

	// Init handler
	timeout := cfg.Server.RequestTimeout
	diagnosticHandler := rest.NewDiagnosticHandler(store.prober, timeout)
	tenantHandler := rest.NewTenantHandler(tenantService, timeout)
	productHandler := rest.NewProductHandler(productService, timeout)
	ordersHandler := rest.NewOrdersHandler(ordersService, timeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))
	e.Use(middleware.Metrics())

	// Setup routes
	router.SetupDiagnosticRoutes(e, diagnosticHandler)
	router.SetupTenantRoutes(e, tenantHandler)
	router.SetupProductRoutes(e, productHandler)
	router.SetOrdersRoutes(e, ordersHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := store.close(ctx); err != nil {
		logger.Error("Storage close error", "error", err)
	}

	logger.Info("Server stopped")
}
