package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the database mapping for User.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	FullName       string    `gorm:"type:varchar(255);not null"`
	PhoneNumber    *string   `gorm:"type:varchar(20)"`
	Role           string    `gorm:"type:varchar(50);not null;default:'customer'"`
	IsActive       bool      `gorm:"default:true;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
