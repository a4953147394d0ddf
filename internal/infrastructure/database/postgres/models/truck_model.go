package models

import (
	"time"

	"github.com/google/uuid"
)

// TruckTypeModel is the database mapping for a truck catalog entry.
// SuitableMaterials is stored as a comma-separated list.
type TruckTypeModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description         string    `gorm:"type:text"`
	PayloadCapacityTons float64   `gorm:"type:double precision;not null"`
	VolumeCapacityM3    float64   `gorm:"type:double precision;not null"`
	SuitableMaterials   string    `gorm:"type:text"`
	HasCrane            bool      `gorm:"default:false;not null"`
	HasHydraulicLift    bool      `gorm:"default:false;not null"`
	BaseRatePerKm       float64   `gorm:"type:double precision;default:0"`
	BaseRatePerHour     float64   `gorm:"type:double precision;default:0"`
	Active              bool      `gorm:"default:true;not null;index"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (TruckTypeModel) TableName() string {
	return "truck_types"
}
