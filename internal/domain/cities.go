package domain

import "sort"

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// CityCoords maps the supported three-letter city codes to their
// coordinates. The table is fixed program configuration; it is not
// persisted and shipment origins/destinations are not validated
// against it at creation time.
var CityCoords = map[string]Coordinates{
	"NYC": {40.7128, -74.0060},
	"LAX": {34.0522, -118.2437},
	"CHI": {41.8781, -87.6298},
	"HOU": {29.7604, -95.3698},
	"PHX": {33.4484, -112.0742},
	"PHI": {39.9526, -75.1652},
	"SAN": {32.7157, -117.1611},
	"DAL": {32.7767, -96.7970},
	"SJC": {37.3382, -121.8863},
	"AUS": {30.2672, -97.7431},
	"DEN": {39.7392, -104.9903},
	"ATL": {33.7490, -84.3880},
	"BOS": {42.3601, -71.0589},
	"MIA": {25.7617, -80.1918},
	"SEA": {47.6062, -122.3321},
	"POR": {45.5152, -122.6784},
	"MIN": {44.9778, -93.2650},
	"DET": {42.3314, -83.0458},
	"CLE": {41.4993, -81.6944},
	"STL": {38.6270, -90.1994},
}

// Return the supported city codes in sorted order.
func KnownCities() []string {
	cities := make([]string, 0, len(CityCoords))
	for c := range CityCoords {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}
