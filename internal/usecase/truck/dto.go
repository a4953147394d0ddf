package truck

import (
	"time"

	"github.com/google/uuid"

	"buildmat-dispatch/internal/dispatch/recommendation"
	domainTruck "buildmat-dispatch/internal/domain/truck"
)

type CreateTruckTypeRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description"`
	PayloadCapacityTons float64  `json:"payload_capacity_tons" validate:"required,gt=0"`
	VolumeCapacityM3    float64  `json:"volume_capacity_m3" validate:"required,gt=0"`
	SuitableMaterials   []string `json:"suitable_materials"`
	HasCrane            bool     `json:"has_crane"`
	HasHydraulicLift    bool     `json:"has_hydraulic_lift"`
	BaseRatePerKm       float64  `json:"base_rate_per_km" validate:"gte=0"`
	BaseRatePerHour     float64  `json:"base_rate_per_hour" validate:"gte=0"`
}

type UpdateTruckTypeRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description"`
	PayloadCapacityTons float64  `json:"payload_capacity_tons" validate:"required,gt=0"`
	VolumeCapacityM3    float64  `json:"volume_capacity_m3" validate:"required,gt=0"`
	SuitableMaterials   []string `json:"suitable_materials"`
	HasCrane            bool     `json:"has_crane"`
	HasHydraulicLift    bool     `json:"has_hydraulic_lift"`
	BaseRatePerKm       float64  `json:"base_rate_per_km" validate:"gte=0"`
	BaseRatePerHour     float64  `json:"base_rate_per_hour" validate:"gte=0"`
}

type TruckTypeResponse struct {
	ID                  uuid.UUID                   `json:"id"`
	Name                string                      `json:"name"`
	Description         string                      `json:"description"`
	PayloadCapacityTons float64                     `json:"payload_capacity_tons"`
	VolumeCapacityM3    float64                     `json:"volume_capacity_m3"`
	SuitableMaterials   []string                    `json:"suitable_materials"`
	Capabilities        recommendation.Capabilities `json:"capabilities"`
	BaseRatePerKm       float64                     `json:"base_rate_per_km"`
	BaseRatePerHour     float64                     `json:"base_rate_per_hour"`
	Active              bool                        `json:"active"`
	CreatedAt           time.Time                   `json:"created_at"`
}

func toTruckTypeResponse(t *domainTruck.TruckType) TruckTypeResponse {
	materials := t.SuitableMaterials
	if materials == nil {
		materials = []string{}
	}

	return TruckTypeResponse{
		ID:                  t.ID,
		Name:                t.Name,
		Description:         t.Description,
		PayloadCapacityTons: t.PayloadCapacityTons,
		VolumeCapacityM3:    t.VolumeCapacityM3,
		SuitableMaterials:   materials,
		Capabilities:        t.Capabilities,
		BaseRatePerKm:       t.BaseRatePerKm,
		BaseRatePerHour:     t.BaseRatePerHour,
		Active:              t.Active,
		CreatedAt:           t.CreatedAt,
	}
}
