package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"buildmat-dispatch/internal/dispatch/lifecycle"
)

// Filter narrows order listings.
type Filter struct {
	Status     *lifecycle.OrderStatus
	CustomerID *uuid.UUID
	DriverID   *uuid.UUID
	Page       int
	PageSize   int
}

// Repository defines order persistence operations.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status lifecycle.OrderStatus) error
	Assign(ctx context.Context, orderID, driverID, truckTypeID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Order, int64, error)
	// ExpirePending moves orders still pending since before cutoff to
	// expired, returning how many were swept.
	ExpirePending(ctx context.Context, cutoff time.Time) (int64, error)
}
