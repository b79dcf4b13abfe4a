package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		id TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		weight_kg REAL NOT NULL,
		priority TEXT NOT NULL,
		status TEXT NOT NULL,
		eta TEXT,
		carrier TEXT,
		tracking_id TEXT,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipments_created_at
    ON shipments(created_at);
	`

	statements := []string{
		createShipmentsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ShipmentSeed struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	ETA         *string `json:"eta"`
	Carrier     *string `json:"carrier"`
	TrackingID  *string `json:"tracking_id"`
	CreatedAt   string  `json:"created_at"`
}

// Populate the database with shipment data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed shipments: read %q: %w", jsonPath, err)
	}

	var data []ShipmentSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed shipments: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("seed shipments: item at index %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.CreatedAt) == "" {
			return fmt.Errorf("seed shipments: item id=%q: created_at cannot be empty", item.ID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed shipments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO shipments (
		id,
		origin,
		destination,
		weight_kg,
		priority,
		status,
		eta,
		carrier,
		tracking_id,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed shipments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range data {
		_, err := stmt.Exec(
			s.ID, s.Origin, s.Destination, s.WeightKg, s.Priority,
			s.Status, s.ETA, s.Carrier, s.TrackingID, s.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("seed shipments: insert id=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed shipments: commit tx: %w", err)
	}

	return nil
}
