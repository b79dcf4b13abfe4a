package dto

type RouteResponse struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	DistanceKm  float64  `json:"distance_km"`
	DurationH   float64  `json:"duration_h"`
	Stops       []string `json:"stops"`
}

type CarrierPerformanceResponse struct {
	DeliveryRate float64 `json:"delivery_rate"`
}

type StatsResponse struct {
	TotalShipments int                                   `json:"total_shipments"`
	Delivered      int                                   `json:"delivered"`
	InException    int                                   `json:"in_exception"`
	OnTimeRatePct  float64                               `json:"on_time_rate_pct"`
	AvgTransitDays float64                               `json:"avg_transit_days"`
	ByCarrier      map[string]CarrierPerformanceResponse `json:"by_carrier"`
}
