package main

import (
	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/config"
	"tripmates-api/database"
	"tripmates-api/logger"
	"tripmates-api/middleware"
	"tripmates-api/routes"
	"tripmates-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", err)
	}

	// Seed the static location reference data
	if err := database.SeedGazetteer(db); err != nil {
		logger.Fatal("Failed to seed gazetteer", err)
	}

	// Wire concepts into the synchronization layer
	emailService := services.NewEmailService(cfg)
	application := app.New(db, emailService)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, application, cfg)

	// Start server
	logger.Info("Starting TripMates API server", "port", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}
