package truck

import (
	"time"

	"github.com/google/uuid"

	"buildmat-dispatch/internal/dispatch/recommendation"
)

// TruckType is a catalog entry for a vehicle class the platform can
// dispatch. The recommendation engine consumes the read-only Catalog view;
// Active and the timestamps are catalog bookkeeping the engine never sees.
type TruckType struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	PayloadCapacityTons float64
	VolumeCapacityM3    float64
	SuitableMaterials   []string
	Capabilities        recommendation.Capabilities
	BaseRatePerKm       float64
	BaseRatePerHour     float64
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CatalogEntry converts the catalog record into the engine's input type.
func (t *TruckType) CatalogEntry() recommendation.TruckType {
	return recommendation.TruckType{
		ID:                  t.ID.String(),
		Name:                t.Name,
		Description:         t.Description,
		PayloadCapacityTons: t.PayloadCapacityTons,
		VolumeCapacityM3:    t.VolumeCapacityM3,
		SuitableMaterials:   t.SuitableMaterials,
		Capabilities:        t.Capabilities,
		BaseRatePerKm:       t.BaseRatePerKm,
		BaseRatePerHour:     t.BaseRatePerHour,
	}
}
