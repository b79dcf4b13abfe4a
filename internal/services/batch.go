package services

import "logistics-planner/internal/domain"

// Summarize a batch of shipments by grouping counts.
//
// Callers resolve ids beforehand (missing ids are pre-filtered by the
// repository), so the input is the exact set being batched. Shipments
// without an assigned carrier are left out of the carrier grouping;
// every shipment carries a priority, so the priority grouping covers
// the whole batch.
func OptimizeBatch(shipments []*domain.Shipment) *domain.BatchSummary {
	byCarrier := make(map[string]int)
	for _, s := range shipments {
		if s.Carrier != nil {
			byCarrier[*s.Carrier]++
		}
	}

	byPriority := make(map[string]int)
	for _, s := range shipments {
		byPriority[s.Priority]++
	}

	return &domain.BatchSummary{
		TotalShipments: len(shipments),
		ByCarrier:      byCarrier,
		ByPriority:     byPriority,
	}
}
