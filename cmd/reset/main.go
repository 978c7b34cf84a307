// Command reset drops the configured database, recreates it and reapplies
// every migration. It refuses to run with ENVIRONMENT=prod.
package main

import (
	"context"
	"log"

	"github.com/osse101/CarbonScan_Go/internal/config"
	"github.com/osse101/CarbonScan_Go/internal/database"
)

func main() {
	target, err := config.LoadDatabaseTarget()
	if err != nil {
		log.Fatalf("Failed to load database settings: %v", err)
	}
	if target.IsProduction() {
		log.Fatalf("Refusing to reset database %s in production", target.Name)
	}

	ctx := context.Background()

	if err := database.RecreateDatabase(ctx, target.MaintenanceConnString(), target.Name); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}
	if err := database.Migrate(ctx, target.ConnString()); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}
	log.Printf("Database %s reset", target.Name)
}
