package ports

import (
	"context"
	"logistics-planner/internal/domain"
)

// Optional filters applied conjunctively; an empty field is no constraint.
type ShipmentFilter struct {
	Status   string
	Priority string
}

// Port: a boundary for persisting and retrieving Shipment entities.
type ShipmentRepository interface {
	// Create a new shipment with status "pending" and return its id.
	// Fails with domain.InvalidArgumentError before any write when the
	// priority is outside the fixed set.
	Create(ctx context.Context, origin, destination string, weightKg float64, priority string) (string, error)

	// Assign a carrier, tracking id and an ETA of now + etaDays days,
	// unconditionally forcing status to "picked_up". Silently affects
	// zero rows when the id does not exist.
	AssignCarrier(ctx context.Context, id, carrier, trackingID string, etaDays int) error

	// Update only the status column. Silently affects zero rows when
	// the id does not exist.
	UpdateStatus(ctx context.Context, id, status string) error

	// Retrieve shipments matching the filter, most recently created first.
	List(ctx context.Context, filter ShipmentFilter) ([]*domain.Shipment, error)

	// Retrieve the subset of the requested ids that exist; missing ids
	// are skipped without error.
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Shipment, error)

	// Retrieve every stored shipment, unordered.
	GetAll(ctx context.Context) ([]*domain.Shipment, error)
}
