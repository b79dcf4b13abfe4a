package services

import (
	"fmt"
	"math"
	"strings"

	"logistics-planner/internal/domain"
)

const (
	earthRadiusKm = 6371
	// Rough estimate: average truck speed 80 km/h.
	avgSpeedKmh = 80
)

// Returned when a route endpoint is not in the city coordinate table.
// It carries the full set of supported codes so callers can surface
// them directly; branch on it with errors.As.
type UnknownCityError struct {
	KnownCities []string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("Unknown city. Available cities: [%s]", strings.Join(e.KnownCities, ", "))
}

// Estimate the route between two supported cities.
//
// The estimate is a great-circle distance (Haversine formula) with a
// constant average speed; it does not attempt real-world routing and
// never produces intermediate stops.
func EstimateRoute(origin, destination string) (*domain.RouteEstimate, error) {
	originCoord, originOK := domain.CityCoords[origin]
	destCoord, destOK := domain.CityCoords[destination]
	if !originOK || !destOK {
		return nil, &UnknownCityError{KnownCities: domain.KnownCities()}
	}

	distanceKm := haversineDistance(originCoord, destCoord)
	durationH := distanceKm / avgSpeedKmh

	return &domain.RouteEstimate{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  round1(distanceKm),
		DurationH:   round1(durationH),
		Stops:       []string{origin, destination},
	}, nil
}

// Great-circle distance in km between two coordinates.
func haversineDistance(from, to domain.Coordinates) float64 {
	lat1 := radians(from.Lat)
	lat2 := radians(to.Lat)
	deltaLat := radians(to.Lat - from.Lat)
	deltaLon := radians(to.Lon - from.Lon)

	a := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
