// Command migrate applies the schema to the configured database. Production
// deployments run this explicitly; development servers migrate on boot.
package main

import (
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")
}
