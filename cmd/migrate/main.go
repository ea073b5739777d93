package main

import (
	"wellness_system/internal/config" // Custom import path (Config)
	"wellness_system/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create or update the schema
}
