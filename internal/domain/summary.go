package domain

// Counts for a batch of shipments grouped by carrier and priority.
// Shipments without an assigned carrier are excluded from ByCarrier;
// every shipment has a priority, so ByPriority covers them all.
type BatchSummary struct {
	TotalShipments int
	ByCarrier      map[string]int
	ByPriority     map[string]int
}

// Per-carrier delivery performance.
type CarrierPerformance struct {
	DeliveryRatePct float64
}

// Aggregate delivery performance statistics.
// OnTimeRatePct and AvgTransitDays use the ETA as a proxy for the
// actual completion time, since no delivery timestamp is recorded.
type DeliveryStats struct {
	TotalShipments int
	Delivered      int
	InException    int
	OnTimeRatePct  float64
	AvgTransitDays float64
	ByCarrier      map[string]CarrierPerformance
}
