package handlers

import (
	"errors"
	"net/http"
	"strings"

	"logistics-planner/internal/api/dto"
	"logistics-planner/internal/services"
)

// RouteHandler exposes the great-circle route estimator.
type RouteHandler struct{}

func (h *RouteHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	origin := strings.TrimSpace(r.URL.Query().Get("origin"))
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))

	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	estimate, err := services.EstimateRoute(origin, destination)
	if err != nil {
		var unknown *services.UnknownCityError
		if errors.As(err, &unknown) {
			writeError(w, r, http.StatusBadRequest, unknown.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Origin:      estimate.Origin,
		Destination: estimate.Destination,
		DistanceKm:  estimate.DistanceKm,
		DurationH:   estimate.DurationH,
		Stops:       estimate.Stops,
	})
}
