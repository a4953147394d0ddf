package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"buildmat-dispatch/internal/dispatch/recommendation"
	domainTruck "buildmat-dispatch/internal/domain/truck"
	"buildmat-dispatch/internal/infrastructure/database/postgres/models"
)

// TruckRepository implements the truck catalog repository on Postgres.
type TruckRepository struct {
	db *DB
}

func NewTruckRepository(db *DB) domainTruck.Repository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(ctx context.Context, t *domainTruck.TruckType) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	t.Active = true

	dbModel := toTruckModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainTruck.ErrTruckTypeAlreadyExists
		}
		return fmt.Errorf("failed to create truck type: %w", err)
	}

	t.ID = dbModel.ID
	return nil
}

func (r *TruckRepository) GetByID(ctx context.Context, truckTypeID uuid.UUID) (*domainTruck.TruckType, error) {
	var dbModel models.TruckTypeModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", truckTypeID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainTruck.ErrTruckTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get truck type: %w", err)
	}
	return toTruckEntity(&dbModel), nil
}

func (r *TruckRepository) Update(ctx context.Context, t *domainTruck.TruckType) error {
	t.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.TruckTypeModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":                  t.Name,
			"description":           t.Description,
			"payload_capacity_tons": t.PayloadCapacityTons,
			"volume_capacity_m3":    t.VolumeCapacityM3,
			"suitable_materials":    strings.Join(t.SuitableMaterials, ","),
			"has_crane":             t.Capabilities.Crane,
			"has_hydraulic_lift":    t.Capabilities.HydraulicLift,
			"base_rate_per_km":      t.BaseRatePerKm,
			"base_rate_per_hour":    t.BaseRatePerHour,
			"updated_at":            t.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update truck type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainTruck.ErrTruckTypeNotFound
	}
	return nil
}

func (r *TruckRepository) SetActive(ctx context.Context, truckTypeID uuid.UUID, active bool) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.TruckTypeModel{}).
		Where("id = ?", truckTypeID).
		Updates(map[string]interface{}{
			"active":     active,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set truck type active flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainTruck.ErrTruckTypeNotFound
	}
	return nil
}

func (r *TruckRepository) List(ctx context.Context) ([]*domainTruck.TruckType, error) {
	return r.list(ctx, false)
}

func (r *TruckRepository) ListActive(ctx context.Context) ([]*domainTruck.TruckType, error) {
	return r.list(ctx, true)
}

func (r *TruckRepository) list(ctx context.Context, activeOnly bool) ([]*domainTruck.TruckType, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.TruckTypeModel{}).Order("name asc")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var dbModels []models.TruckTypeModel
	if err := query.Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list truck types: %w", err)
	}

	trucks := make([]*domainTruck.TruckType, 0, len(dbModels))
	for i := range dbModels {
		trucks = append(trucks, toTruckEntity(&dbModels[i]))
	}
	return trucks, nil
}

func toTruckModel(t *domainTruck.TruckType) *models.TruckTypeModel {
	return &models.TruckTypeModel{
		ID:                  t.ID,
		Name:                t.Name,
		Description:         t.Description,
		PayloadCapacityTons: t.PayloadCapacityTons,
		VolumeCapacityM3:    t.VolumeCapacityM3,
		SuitableMaterials:   strings.Join(t.SuitableMaterials, ","),
		HasCrane:            t.Capabilities.Crane,
		HasHydraulicLift:    t.Capabilities.HydraulicLift,
		BaseRatePerKm:       t.BaseRatePerKm,
		BaseRatePerHour:     t.BaseRatePerHour,
		Active:              t.Active,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func toTruckEntity(m *models.TruckTypeModel) *domainTruck.TruckType {
	var materials []string
	if m.SuitableMaterials != "" {
		materials = strings.Split(m.SuitableMaterials, ",")
	}

	return &domainTruck.TruckType{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		PayloadCapacityTons: m.PayloadCapacityTons,
		VolumeCapacityM3:    m.VolumeCapacityM3,
		SuitableMaterials:   materials,
		Capabilities: recommendation.Capabilities{
			Crane:         m.HasCrane,
			HydraulicLift: m.HasHydraulicLift,
		},
		BaseRatePerKm:   m.BaseRatePerKm,
		BaseRatePerHour: m.BaseRatePerHour,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
