package services

import (
	"errors"
	"math"
	"testing"
)

func TestEstimateRouteKnownCities(t *testing.T) {
	est, err := EstimateRoute("NYC", "LAX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Great-circle NYC -> LAX is roughly 3936 km.
	if est.DistanceKm < 3931 || est.DistanceKm > 3941 {
		t.Fatalf("distance = %.1f, want about 3936 +-5", est.DistanceKm)
	}

	if diff := math.Abs(est.DurationH - est.DistanceKm/80); diff > 0.06 {
		t.Fatalf("duration = %.1f, want distance/80 = %.2f", est.DurationH, est.DistanceKm/80)
	}

	if est.Origin != "NYC" || est.Destination != "LAX" {
		t.Fatalf("endpoints = %q -> %q, want NYC -> LAX", est.Origin, est.Destination)
	}

	if len(est.Stops) != 2 || est.Stops[0] != "NYC" || est.Stops[1] != "LAX" {
		t.Fatalf("stops = %v, want [NYC LAX]", est.Stops)
	}
}

func TestEstimateRouteSameCity(t *testing.T) {
	est, err := EstimateRoute("CHI", "CHI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.DistanceKm != 0 {
		t.Fatalf("distance = %.1f, want 0", est.DistanceKm)
	}
	if est.DurationH != 0 {
		t.Fatalf("duration = %.1f, want 0", est.DurationH)
	}
}

func TestEstimateRouteUnknownCity(t *testing.T) {
	_, err := EstimateRoute("XXX", "NYC")
	if err == nil {
		t.Fatal("expected an error for unknown origin")
	}

	var unknown *UnknownCityError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownCityError", err)
	}

	if len(unknown.KnownCities) != 20 {
		t.Fatalf("known cities = %d, want 20", len(unknown.KnownCities))
	}

	found := false
	for _, c := range unknown.KnownCities {
		if c == "NYC" {
			found = true
		}
	}
	if !found {
		t.Fatalf("known cities %v missing NYC", unknown.KnownCities)
	}
}
