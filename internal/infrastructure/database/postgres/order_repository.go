package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"buildmat-dispatch/internal/dispatch/lifecycle"
	domainOrder "buildmat-dispatch/internal/domain/order"
	"buildmat-dispatch/internal/infrastructure/database/postgres/models"
)

// OrderRepository implements the order domain repository on Postgres.
type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) domainOrder.Repository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domainOrder.Order) error {
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
	o.UpdatedAt = time.Now()
	o.Status = lifecycle.OrderPending

	dbModel := toOrderModel(o)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.ID = dbModel.ID
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID uuid.UUID) (*domainOrder.Order, error) {
	var dbModel models.OrderModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", orderID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainOrder.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return toOrderEntity(&dbModel), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status lifecycle.OrderStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == lifecycle.OrderDelivered {
		updates["delivered_at"] = time.Now()
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainOrder.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Assign(ctx context.Context, orderID, driverID, truckTypeID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND driver_id IS NULL", orderID).
		Updates(map[string]interface{}{
			"driver_id":     driverID,
			"truck_type_id": truckTypeID,
			"status":        string(lifecycle.OrderMatched),
			"matched_at":    time.Now(),
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to assign order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the order does not exist or a driver got there first.
		var count int64
		r.db.DB.WithContext(ctx).
			Model(&models.OrderModel{}).
			Where("id = ?", orderID).
			Count(&count)
		if count == 0 {
			return domainOrder.ErrOrderNotFound
		}
		return domainOrder.ErrAlreadyAssigned
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context, filter *domainOrder.Filter) ([]*domainOrder.Order, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.OrderModel{})

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", string(*filter.Status))
		}
		if filter.CustomerID != nil {
			query = query.Where("customer_id = ?", *filter.CustomerID)
		}
		if filter.DriverID != nil {
			query = query.Where("driver_id = ?", *filter.DriverID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = query.Order("created_at desc")
	if filter != nil && filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var dbModels []models.OrderModel
	if err := query.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domainOrder.Order, 0, len(dbModels))
	for i := range dbModels {
		orders = append(orders, toOrderEntity(&dbModels[i]))
	}
	return orders, total, nil
}

func (r *OrderRepository) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status = ? AND created_at < ?", string(lifecycle.OrderPending), cutoff).
		Updates(map[string]interface{}{
			"status":     string(lifecycle.OrderExpired),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire pending orders: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toOrderModel(o *domainOrder.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		DriverID:              o.DriverID,
		TruckTypeID:           o.TruckTypeID,
		Status:                string(o.Status),
		MaterialType:          o.MaterialType,
		EstimatedWeightTons:   o.EstimatedWeightTons,
		EstimatedVolumeM3:     o.EstimatedVolumeM3,
		LoadDescription:       o.LoadDescription,
		RequiresCrane:         o.RequiresCrane,
		RequiresHydraulicLift: o.RequiresHydraulicLift,
		PickupAddress:         o.PickupAddress,
		DeliveryAddress:       o.DeliveryAddress,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
		MatchedAt:             o.MatchedAt,
		DeliveredAt:           o.DeliveredAt,
	}
}

func toOrderEntity(m *models.OrderModel) *domainOrder.Order {
	return &domainOrder.Order{
		ID:                    m.ID,
		CustomerID:            m.CustomerID,
		DriverID:              m.DriverID,
		TruckTypeID:           m.TruckTypeID,
		Status:                lifecycle.OrderStatus(m.Status),
		MaterialType:          m.MaterialType,
		EstimatedWeightTons:   m.EstimatedWeightTons,
		EstimatedVolumeM3:     m.EstimatedVolumeM3,
		LoadDescription:       m.LoadDescription,
		RequiresCrane:         m.RequiresCrane,
		RequiresHydraulicLift: m.RequiresHydraulicLift,
		PickupAddress:         m.PickupAddress,
		DeliveryAddress:       m.DeliveryAddress,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		MatchedAt:             m.MatchedAt,
		DeliveredAt:           m.DeliveredAt,
	}
}
