package domain

// Represents the estimated route between two supported cities.
// A RouteEstimate is the output of the great-circle estimator and is
// immutable planning data with no side effects. Stops holds exactly
// [origin, destination]; no intermediate routing is attempted.
type RouteEstimate struct {
	Origin      string
	Destination string
	DistanceKm  float64
	DurationH   float64
	Stops       []string
}
