package services

import (
	"math"
	"time"

	"logistics-planner/internal/domain"
)

// Compute delivery performance statistics over the given shipments.
//
// The ETA stands in for the actual completion time since no delivery
// timestamp is recorded: a delivered shipment counts as on time when
// its ETA has not yet passed at evaluation time. now is explicit so
// results are reproducible in tests.
func ComputeDeliveryStats(shipments []*domain.Shipment, now time.Time) *domain.DeliveryStats {
	var delivered, inException int
	var onTime, withETA int
	var transitDays []int

	for _, s := range shipments {
		switch s.Status {
		case domain.StatusDelivered:
			delivered++
			if s.ETA != nil {
				withETA++
				if !s.ETA.Before(now) {
					onTime++
				}
				transitDays = append(transitDays, wholeDays(s.ETA.Sub(s.CreatedAt)))
			}
		case domain.StatusException:
			inException++
		}
	}

	var onTimeRate float64
	if withETA > 0 {
		onTimeRate = float64(onTime) / float64(withETA) * 100
	}

	var avgTransitDays float64
	if len(transitDays) > 0 {
		sum := 0
		for _, d := range transitDays {
			sum += d
		}
		avgTransitDays = float64(sum) / float64(len(transitDays))
	}

	byCarrier := make(map[string]domain.CarrierPerformance)
	carrierTotals := make(map[string]int)
	carrierDelivered := make(map[string]int)
	for _, s := range shipments {
		if s.Carrier == nil {
			continue
		}
		carrierTotals[*s.Carrier]++
		if s.Status == domain.StatusDelivered {
			carrierDelivered[*s.Carrier]++
		}
	}
	for carrier, total := range carrierTotals {
		rate := float64(carrierDelivered[carrier]) / float64(total) * 100
		byCarrier[carrier] = domain.CarrierPerformance{DeliveryRatePct: round1(rate)}
	}

	return &domain.DeliveryStats{
		TotalShipments: len(shipments),
		Delivered:      delivered,
		InException:    inException,
		OnTimeRatePct:  round1(onTimeRate),
		AvgTransitDays: round1(avgTransitDays),
		ByCarrier:      byCarrier,
	}
}

// Truncate a duration to whole days, flooring toward negative infinity
// so a negative ETA offset shortens the average the same way the
// stored day counts do.
func wholeDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}
