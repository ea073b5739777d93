package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"wellness_system/internal/api"        // Custom package for API handlers
	"wellness_system/internal/config"     // Custom package for configuration
	"wellness_system/internal/middleware" // Custom package for middleware
	"wellness_system/internal/store"      // Custom package for storage

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database and build the injected store
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	st := store.NewGormStore(db)

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// All routes live under /api
	apiGroup := r.Group("/api")
	apiGroup.POST("/register", api.RegisterHandler(st))                       // Registration endpoint
	apiGroup.POST("/login", api.LoginHandler(st, cfg.JWTSecret))              // Login endpoint
	apiGroup.POST("/save_dosha", api.SaveDoshaHandler(st, redisClient))       // Dosha profile upsert endpoint
	apiGroup.POST("/log_day", api.LogDayHandler(st, redisClient))             // Daily habit log endpoint
	apiGroup.GET("/get_dashboard_data/:user_id", api.DashboardHandler(st, redisClient)) // Dashboard endpoint

	// Log history requires a session token
	protected := apiGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	protected.GET("/logs", api.LogHistoryHandler(st, redisClient)) // Log history endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
