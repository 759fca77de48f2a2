package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/api"    // Custom package for API handlers
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/config" // Custom package for configuration
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/db"     // Custom package for database access
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils"  // Custom package for file utilities

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Make sure the media directory exists before serving or writing uploads
	if err := utils.EnsureDir(cfg.MediaDir); err != nil {
		logrus.Fatalf("failed to create media dir: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Wire all routes (auth, public landing, admin CRUD, media static)
	api.RegisterRoutes(r, gdb, redisClient, cfg)

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
