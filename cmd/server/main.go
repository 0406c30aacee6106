package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/elinacho/lumiskin-backend/config"
	"github.com/elinacho/lumiskin-backend/internal/app/controller"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/internal/app/service"
	"github.com/elinacho/lumiskin-backend/internal/middleware"
	"github.com/elinacho/lumiskin-backend/internal/router"
	"github.com/elinacho/lumiskin-backend/internal/scheduler"
	"github.com/elinacho/lumiskin-backend/internal/websocket"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
	"github.com/elinacho/lumiskin-backend/pkg/redis"
	"github.com/elinacho/lumiskin-backend/pkg/shopify"
	"github.com/elinacho/lumiskin-backend/pkg/util"
)

const demoPassword = "lumiskin-demo"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Lumiskin Backend Server", map[string]interface{}{
		"environment":        cfg.Server.Environment,
		"port":               cfg.Server.Port,
		"log_level":          logLevel,
		"shopify_configured": cfg.Shopify.Domain != "" && cfg.Shopify.AccessToken != "",
	})

	// Redis backs recent searches and session revocation, both best-effort.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, recent searches disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Shopify Storefront client. Without domain/token every remote call
	// fails fast and the static catalog serves everything.
	shopifyClient := shopify.NewClient(shopify.Config{
		Domain:      cfg.Shopify.Domain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
	})

	// Seed in-memory stores
	demoHash, err := util.HashPassword(demoPassword)
	if err != nil {
		logger.Fatal("Failed to hash demo password", err)
	}
	catalogRepo := repository.NewCatalogRepository(repository.SeedCatalog())
	reviewRepo := repository.NewReviewRepository(repository.SeedReviews())
	userRepo := repository.NewUserRepository(repository.SeedUsers(demoHash))
	cartRepo := repository.NewCartRepository()
	searchRepo := repository.NewRecentSearchRepository(redis.GetClient())

	// Cart event hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	productService := service.NewProductService(catalogRepo, searchRepo, shopifyClient)
	cartService := service.NewCartService(cartRepo, productService, hub)
	reviewService := service.NewReviewService(reviewRepo)
	authService := service.NewAuthService(userRepo, cfg.Session.Secret, cfg.Session.TokenExpiry)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService, hub, cfg.CORS.AllowedOrigins)
	reviewController := controller.NewReviewController(reviewService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Session.Secret)

	// Catalog cache refresh
	cacheScheduler := scheduler.NewCatalogCacheScheduler(catalogRepo, shopifyClient)
	if err := cacheScheduler.Start(); err != nil {
		logger.Warn("Catalog cache scheduler failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer cacheScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		cartController,
		reviewController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
