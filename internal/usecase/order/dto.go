package order

import (
	"time"

	"github.com/google/uuid"

	"buildmat-dispatch/internal/dispatch/lifecycle"
	"buildmat-dispatch/internal/dispatch/recommendation"
	domainOrder "buildmat-dispatch/internal/domain/order"
)

type CreateOrderRequest struct {
	MaterialType          string   `json:"material_type" validate:"required"`
	EstimatedWeightTons   float64  `json:"estimated_weight_tons" validate:"required,gt=0"`
	EstimatedVolumeM3     *float64 `json:"estimated_volume_m3" validate:"omitempty,gt=0"`
	LoadDescription       string   `json:"load_description"`
	RequiresCrane         bool     `json:"requires_crane"`
	RequiresHydraulicLift bool     `json:"requires_hydraulic_lift"`
	PickupAddress         string   `json:"pickup_address" validate:"required"`
	DeliveryAddress       string   `json:"delivery_address" validate:"required"`
}

// RecommendationRequest describes a load to be matched against the catalog
// without creating an order, used by the quote flow.
type RecommendationRequest struct {
	MaterialType          string   `json:"material_type" validate:"required"`
	EstimatedWeightTons   float64  `json:"estimated_weight_tons" validate:"required,gt=0"`
	EstimatedVolumeM3     *float64 `json:"estimated_volume_m3" validate:"omitempty,gt=0"`
	LoadDescription       string   `json:"load_description"`
	RequiresCrane         bool     `json:"requires_crane"`
	RequiresHydraulicLift bool     `json:"requires_hydraulic_lift"`
}

// AdvanceTripRequest carries the fine-grained trip status the driver app is
// advancing from. TripStatus is optional; when absent or inconsistent with
// the persisted order status, the server falls back to the status it derives
// itself.
type AdvanceTripRequest struct {
	TripStatus string `json:"trip_status"`
}

type AssignDriverRequest struct {
	DriverID    uuid.UUID `json:"driver_id" validate:"required"`
	TruckTypeID uuid.UUID `json:"truck_type_id" validate:"required"`
}

type OrderResponse struct {
	ID                    uuid.UUID             `json:"id"`
	CustomerID            uuid.UUID             `json:"customer_id"`
	DriverID              *uuid.UUID            `json:"driver_id,omitempty"`
	TruckTypeID           *uuid.UUID            `json:"truck_type_id,omitempty"`
	Status                lifecycle.OrderStatus `json:"status"`
	MaterialType          string                `json:"material_type"`
	EstimatedWeightTons   float64               `json:"estimated_weight_tons"`
	EstimatedVolumeM3     *float64              `json:"estimated_volume_m3,omitempty"`
	LoadDescription       string                `json:"load_description"`
	RequiresCrane         bool                  `json:"requires_crane"`
	RequiresHydraulicLift bool                  `json:"requires_hydraulic_lift"`
	PickupAddress         string                `json:"pickup_address"`
	DeliveryAddress       string                `json:"delivery_address"`
	CreatedAt             time.Time             `json:"created_at"`
	MatchedAt             *time.Time            `json:"matched_at,omitempty"`
	DeliveredAt           *time.Time            `json:"delivered_at,omitempty"`
}

type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// TripViewResponse is the driver's live view of one order. TripStatus and
// the action fields are derived from the persisted order status on every
// read.
type TripViewResponse struct {
	OrderID         uuid.UUID             `json:"order_id"`
	OrderStatus     lifecycle.OrderStatus `json:"order_status"`
	TripStatus      lifecycle.TripStatus  `json:"trip_status"`
	ActionLabel     string                `json:"action_label"`
	NextTripStatus  *lifecycle.TripStatus `json:"next_trip_status,omitempty"`
	IsComplete      bool                  `json:"is_complete"`
	MaterialType    string                `json:"material_type"`
	PickupAddress   string                `json:"pickup_address"`
	DeliveryAddress string                `json:"delivery_address"`
}

// RecommendationResponse splits the scored catalog into the shortlist shown
// prominently and the remainder kept for the "see all" view.
type RecommendationResponse struct {
	TopMatches []recommendation.TruckRecommendation `json:"top_matches"`
	Others     []recommendation.TruckRecommendation `json:"others"`
	Advice     []string                             `json:"advice"`
}

func toOrderResponse(o *domainOrder.Order) OrderResponse {
	return OrderResponse{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		DriverID:              o.DriverID,
		TruckTypeID:           o.TruckTypeID,
		Status:                o.Status,
		MaterialType:          o.MaterialType,
		EstimatedWeightTons:   o.EstimatedWeightTons,
		EstimatedVolumeM3:     o.EstimatedVolumeM3,
		LoadDescription:       o.LoadDescription,
		RequiresCrane:         o.RequiresCrane,
		RequiresHydraulicLift: o.RequiresHydraulicLift,
		PickupAddress:         o.PickupAddress,
		DeliveryAddress:       o.DeliveryAddress,
		CreatedAt:             o.CreatedAt,
		MatchedAt:             o.MatchedAt,
		DeliveredAt:           o.DeliveredAt,
	}
}

func toTripView(o *domainOrder.Order, trip lifecycle.TripStatus) TripViewResponse {
	view := TripViewResponse{
		OrderID:         o.ID,
		OrderStatus:     o.Status,
		TripStatus:      trip,
		ActionLabel:     lifecycle.ActionLabel(trip),
		IsComplete:      trip == lifecycle.TripDelivered,
		MaterialType:    o.MaterialType,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
	}
	if next, ok := lifecycle.Next(trip); ok {
		view.NextTripStatus = &next
	}
	return view
}
