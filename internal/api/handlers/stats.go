package handlers

import (
	"log"
	"net/http"
	"time"

	"logistics-planner/internal/api/dto"
	"logistics-planner/internal/ports"
	"logistics-planner/internal/services"
)

// StatsHandler exposes delivery performance statistics.
type StatsHandler struct {
	Repo ports.ShipmentRepository
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.Repo.GetAll(r.Context())
	if err != nil {
		log.Printf("delivery stats failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	stats := services.ComputeDeliveryStats(shipments, time.Now().UTC())

	byCarrier := make(map[string]dto.CarrierPerformanceResponse, len(stats.ByCarrier))
	for carrier, perf := range stats.ByCarrier {
		byCarrier[carrier] = dto.CarrierPerformanceResponse{DeliveryRate: perf.DeliveryRatePct}
	}

	writeJSON(w, r, http.StatusOK, dto.StatsResponse{
		TotalShipments: stats.TotalShipments,
		Delivered:      stats.Delivered,
		InException:    stats.InException,
		OnTimeRatePct:  stats.OnTimeRatePct,
		AvgTransitDays: stats.AvgTransitDays,
		ByCarrier:      byCarrier,
	})
}
