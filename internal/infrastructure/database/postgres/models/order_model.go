package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the database mapping for Order. Only the coarse order
// status is persisted; trip status is derived at read time.
type OrderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	TruckTypeID *uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"type:varchar(50);not null;default:'pending';index"`

	MaterialType          string   `gorm:"type:varchar(50);not null"`
	EstimatedWeightTons   float64  `gorm:"type:double precision;not null"`
	EstimatedVolumeM3     *float64 `gorm:"type:double precision"`
	LoadDescription       string   `gorm:"type:text"`
	RequiresCrane         bool     `gorm:"default:false;not null"`
	RequiresHydraulicLift bool     `gorm:"default:false;not null"`

	PickupAddress   string `gorm:"type:text;not null"`
	DeliveryAddress string `gorm:"type:text;not null"`

	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
	MatchedAt   *time.Time
	DeliveredAt *time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
