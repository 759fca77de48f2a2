package main

import (
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/config" // Custom import path (Config)
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/db"     // Custom import path (Database)
)

// Main entry point for migration and singleton seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Run auto-migration and seed the singleton rows
}
