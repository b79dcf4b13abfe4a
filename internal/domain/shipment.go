package domain

import (
	"fmt"
	"slices"
	"time"
)

// Shipment statuses, priorities and carriers are closed sets fixed at
// compile time. They are validated on every mutating operation; there is
// no transition table, any valid status is reachable from any other.
var (
	Statuses   = []string{"pending", "picked_up", "in_transit", "out_for_delivery", "delivered", "exception"}
	Priorities = []string{"standard", "express", "overnight"}
	Carriers   = []string{"fedex", "ups", "usps", "dhl", "blackroad-express"}
)

const (
	StatusPending   = "pending"
	StatusPickedUp  = "picked_up"
	StatusDelivered = "delivered"
	StatusException = "exception"
)

// Represents a single tracked shipment.
// Carrier, TrackingID and ETA stay nil until a carrier is assigned.
// CreatedAt is set once at creation and never changes.
type Shipment struct {
	ID          string
	Origin      string
	Destination string
	WeightKg    float64
	Priority    string
	Status      string
	ETA         *time.Time
	Carrier     *string
	TrackingID  *string
	CreatedAt   time.Time
}

// Signals a value outside one of the fixed enumerations.
// Raised before any storage write occurs.
type InvalidArgumentError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %v", e.Field, e.Value, e.Allowed)
}

func ValidStatus(s string) bool   { return slices.Contains(Statuses, s) }
func ValidPriority(p string) bool { return slices.Contains(Priorities, p) }
func ValidCarrier(c string) bool  { return slices.Contains(Carriers, c) }

func CheckStatus(s string) error {
	if !ValidStatus(s) {
		return &InvalidArgumentError{Field: "status", Value: s, Allowed: Statuses}
	}
	return nil
}

func CheckPriority(p string) error {
	if !ValidPriority(p) {
		return &InvalidArgumentError{Field: "priority", Value: p, Allowed: Priorities}
	}
	return nil
}

func CheckCarrier(c string) error {
	if !ValidCarrier(c) {
		return &InvalidArgumentError{Field: "carrier", Value: c, Allowed: Carriers}
	}
	return nil
}
