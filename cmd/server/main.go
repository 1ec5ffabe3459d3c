package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/keyvanm/inventory-sales-api/internal/config"     // Internal config loader
	"github.com/keyvanm/inventory-sales-api/internal/database"   // Database connector
	"github.com/keyvanm/inventory-sales-api/internal/handler"    // HTTP handlers
	"github.com/keyvanm/inventory-sales-api/internal/middleware" // Rate limit / cache middleware
	"github.com/keyvanm/inventory-sales-api/internal/queue"      // Sale event consumer
	"github.com/keyvanm/inventory-sales-api/internal/repository" // DB repositories
	"github.com/keyvanm/inventory-sales-api/internal/router"     // Route registration
	queue_publisher "github.com/keyvanm/inventory-sales-api/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Repositories.
	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)
	categories := repository.NewCategoryRepo(db)
	suppliers := repository.NewSupplierRepo(db)

	// Redis is optional; a nil client turns the limiter and the response
	// cache into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Handlers.
	sys := handler.NewSystemHandler(cfg, func(ctx context.Context) error { return database.Probe(ctx, db) })
	auth := handler.NewAuthHandler(cfg, users)
	productH := handler.NewProductHandler(products)
	categoryH := handler.NewCategoryHandler(categories)
	supplierH := handler.NewSupplierHandler(suppliers)
	saleH := handler.NewSaleHandler(products, queue_publisher.PublishSaleCompleted)
	reportH := handler.NewReportHandler(products)

	// Background consumer appending sale events to logs/sales.log.  Runs a
	// reconnect loop of its own; a missing broker only costs the audit log.
	go func() {
		if err := queue.StartSaleConsumer(); err != nil {
			log.Printf("sale consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterSystem(e, sys)
	router.RegisterAuth(e, auth, limiter)
	router.RegisterInventory(e, productH, categoryH, supplierH, saleH, reportH, cfg.JWTSecret, cache)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
