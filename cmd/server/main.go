package main

import (
	"log"
	"net/http"
	"time"

	"logistics-planner/internal/adapters/repositories"
	"logistics-planner/internal/api"
	"logistics-planner/internal/config"
	"logistics-planner/internal/platform/db"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQLite repository behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	// Optional demo data for local runs.
	if cfg.SeedPath != "" {
		if err := repositories.SeedFromJSON(database, cfg.SeedPath); err != nil {
			log.Fatal(err)
		}
	}

	repo := repositories.NewSqliteShipmentRepository(database)
	router := api.NewRouter(repo)

	log.Printf("Server listening addr=:%s db=%s", cfg.Port, cfg.DBPath)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
