package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"mentorpath/backend/cache"
	"mentorpath/backend/config"
	"mentorpath/backend/middleware"
	"mentorpath/backend/routes"
	"mentorpath/backend/services"
	"mentorpath/backend/store"
	"mentorpath/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Persistence + catalog seed
	st := store.NewGormStore(db)
	if err := st.SeedCatalog(context.Background()); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	// Optional search cache
	var searchCache services.SearchCache
	if cfg.RedisAddr != "" {
		searchCache = cache.New(cfg.RedisAddr, cfg.SearchCacheTTL, logger)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		DB:    db,
		Store: st,
		Cache: searchCache,
		Cfg:   cfg,
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
