package main

import (
	"log"

	"logistics-planner/internal/adapters/repositories"
	"logistics-planner/internal/config"
	"logistics-planner/internal/platform/db"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// Maintenance tool: initialize the schema and load shipments from a
// JSON seed file into the configured database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.SeedPath == "" {
		log.Fatal("SEED_PATH is required")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(database, cfg.SeedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
