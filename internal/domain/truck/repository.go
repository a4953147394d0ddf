package truck

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines truck catalog persistence operations.
type Repository interface {
	Create(ctx context.Context, t *TruckType) error
	GetByID(ctx context.Context, truckTypeID uuid.UUID) (*TruckType, error)
	Update(ctx context.Context, t *TruckType) error
	SetActive(ctx context.Context, truckTypeID uuid.UUID, active bool) error
	List(ctx context.Context) ([]*TruckType, error)
	// ListActive returns the catalog entries eligible for dispatch. The
	// availability filter lives here, outside the recommendation engine.
	ListActive(ctx context.Context) ([]*TruckType, error)
}
