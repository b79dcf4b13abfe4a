package api

import (
	"net/http"

	"logistics-planner/internal/api/handlers"
	"logistics-planner/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ShipmentRepository) http.Handler {
	mux := http.NewServeMux()

	shipmentHandler := &handlers.ShipmentHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{}
	statsHandler := &handlers.StatsHandler{Repo: repo}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /shipments", shipmentHandler.List)
	mux.HandleFunc("POST /shipments", shipmentHandler.Create)
	mux.HandleFunc("POST /shipments/batch", shipmentHandler.Batch)
	mux.HandleFunc("POST /shipments/{id}/carrier", shipmentHandler.AssignCarrier)
	mux.HandleFunc("POST /shipments/{id}/status", shipmentHandler.UpdateStatus)
	mux.HandleFunc("GET /route", routeHandler.Estimate)
	mux.HandleFunc("GET /stats", statsHandler.Stats)

	return loggingMiddleware(mux)
}
