package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"logistics-planner/internal/adapters/repositories"
	"logistics-planner/internal/api/dto"
	"logistics-planner/internal/config"
	"logistics-planner/internal/platform/db"
	"logistics-planner/internal/ports"
	"logistics-planner/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the CLI composition root. It resolves the database location,
// bootstraps the schema and dispatches to one subcommand per run.
func main() {
	log.SetFlags(0)

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteShipmentRepository(database)
	ctx := context.Background()

	switch args[0] {
	case "list":
		runList(ctx, repo, args[1:])
	case "create":
		runCreate(ctx, repo, args[1:])
	case "stats":
		runStats(ctx, repo)
	case "route":
		runRoute(args[1:])
	default:
		printUsage()
	}
}

func runList(ctx context.Context, repo ports.ShipmentRepository, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	priority := fs.String("priority", "", "filter by priority")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	shipments, err := repo.List(ctx, ports.ShipmentFilter{
		Status:   *status,
		Priority: *priority,
	})
	if err != nil {
		log.Fatal(err)
	}

	if len(shipments) == 0 {
		fmt.Println("No shipments found.")
		return
	}

	fmt.Printf("%-10s %-8s %-8s %-18s %-10s\n", "ID", "Origin", "Dest", "Status", "Priority")
	fmt.Println(strings.Repeat("-", 60))
	for _, s := range shipments {
		fmt.Printf("%-10s %-8s %-8s %-18s %-10s\n", s.ID, s.Origin, s.Destination, s.Status, s.Priority)
	}
}

func runCreate(ctx context.Context, repo ports.ShipmentRepository, args []string) {
	if len(args) < 3 || len(args) > 4 {
		log.Fatal("usage: logistics create <origin> <destination> <weight_kg> [priority]")
	}

	origin := args[0]
	destination := args[1]

	weightKg, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		log.Fatalf("invalid weight_kg %q: must be a number", args[2])
	}

	priority := "standard"
	if len(args) == 4 {
		priority = args[3]
	}

	id, err := repo.Create(ctx, origin, destination, weightKg, priority)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Created shipment %s: %s -> %s\n", id, origin, destination)
}

func runStats(ctx context.Context, repo ports.ShipmentRepository) {
	shipments, err := repo.GetAll(ctx)
	if err != nil {
		log.Fatal(err)
	}

	stats := services.ComputeDeliveryStats(shipments, time.Now().UTC())

	byCarrier := make(map[string]dto.CarrierPerformanceResponse, len(stats.ByCarrier))
	for carrier, perf := range stats.ByCarrier {
		byCarrier[carrier] = dto.CarrierPerformanceResponse{DeliveryRate: perf.DeliveryRatePct}
	}

	printJSON(dto.StatsResponse{
		TotalShipments: stats.TotalShipments,
		Delivered:      stats.Delivered,
		InException:    stats.InException,
		OnTimeRatePct:  stats.OnTimeRatePct,
		AvgTransitDays: stats.AvgTransitDays,
		ByCarrier:      byCarrier,
	})
}

func runRoute(args []string) {
	if len(args) != 2 {
		log.Fatal("usage: logistics route <origin> <destination>")
	}

	estimate, err := services.EstimateRoute(args[0], args[1])
	if err != nil {
		var unknown *services.UnknownCityError
		if errors.As(err, &unknown) {
			// Unknown cities are reported as a payload, not a fatal error.
			printJSON(map[string]string{"error": unknown.Error()})
			return
		}
		log.Fatal(err)
	}

	printJSON(dto.RouteResponse{
		Origin:      estimate.Origin,
		Destination: estimate.Destination,
		DistanceKm:  estimate.DistanceKm,
		DurationH:   estimate.DurationH,
		Stops:       estimate.Stops,
	})
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println(`Usage: logistics <command> [arguments]

Commands:
  list [--status S] [--priority P]                      List shipments
  create <origin> <destination> <weight_kg> [priority]  Create a new shipment
  stats                                                 Delivery statistics
  route <origin> <destination>                          Get route info`)
}
