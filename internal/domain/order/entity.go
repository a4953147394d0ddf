package order

import (
	"time"

	"github.com/google/uuid"

	"buildmat-dispatch/internal/dispatch/lifecycle"
	"buildmat-dispatch/internal/dispatch/recommendation"
)

// Order is a customer's delivery request. Status is the persisted
// OrderStatus; the driver-facing TripStatus is always derived on demand and
// never stored.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID

	// Assignment, set when the dispatcher matches the order.
	DriverID    *uuid.UUID
	TruckTypeID *uuid.UUID

	Status lifecycle.OrderStatus

	// Load description, the raw material for a MaterialRequirement.
	MaterialType          string
	EstimatedWeightTons   float64
	EstimatedVolumeM3     *float64
	LoadDescription       string
	RequiresCrane         bool
	RequiresHydraulicLift bool

	PickupAddress   string
	DeliveryAddress string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	MatchedAt   *time.Time
	DeliveredAt *time.Time
}

// Requirement assembles the engine's input from the order's load fields.
func (o *Order) Requirement() recommendation.MaterialRequirement {
	return recommendation.MaterialRequirement{
		MaterialType:          recommendation.ParseMaterialType(o.MaterialType),
		EstimatedWeightTons:   o.EstimatedWeightTons,
		EstimatedVolumeM3:     o.EstimatedVolumeM3,
		LoadDescription:       o.LoadDescription,
		RequiresCrane:         o.RequiresCrane,
		RequiresHydraulicLift: o.RequiresHydraulicLift,
	}
}
