// Command setup creates the configured database when it is missing and
// applies every pending migration.
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

	ctx := context.Background()

	created, err := database.EnsureDatabase(ctx, target.MaintenanceConnString(), target.Name)
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	if !created {
		log.Printf("Database %s already exists", target.Name)
	}

	if err := database.Migrate(ctx, target.ConnString()); err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	log.Printf("Database %s is up to date", target.Name)
}
