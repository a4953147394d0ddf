package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines user persistence operations.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
