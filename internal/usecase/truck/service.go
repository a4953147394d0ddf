package truck

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buildmat-dispatch/internal/dispatch/recommendation"
	domainTruck "buildmat-dispatch/internal/domain/truck"
	"buildmat-dispatch/internal/logger"
	appErrors "buildmat-dispatch/pkg/errors"
	"buildmat-dispatch/pkg/utils"
)

// Service implements truck catalog use cases.
type Service struct {
	truckRepo domainTruck.Repository
}

func NewService(truckRepo domainTruck.Repository) *Service {
	return &Service{truckRepo: truckRepo}
}

func (s *Service) Create(ctx context.Context, req *CreateTruckTypeRequest) (*TruckTypeResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	t := &domainTruck.TruckType{
		Name:                utils.SanitizeString(req.Name),
		Description:         utils.SanitizeText(req.Description),
		PayloadCapacityTons: req.PayloadCapacityTons,
		VolumeCapacityM3:    req.VolumeCapacityM3,
		SuitableMaterials:   req.SuitableMaterials,
		Capabilities: recommendation.Capabilities{
			Crane:         req.HasCrane,
			HydraulicLift: req.HasHydraulicLift,
		},
		BaseRatePerKm:   req.BaseRatePerKm,
		BaseRatePerHour: req.BaseRatePerHour,
	}

	if err := s.truckRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("Truck type created",
		zap.String("truck_type_id", t.ID.String()),
		zap.String("name", t.Name),
	)

	resp := toTruckTypeResponse(t)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, truckTypeID uuid.UUID, req *UpdateTruckTypeRequest) (*TruckTypeResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	t, err := s.truckRepo.GetByID(ctx, truckTypeID)
	if err != nil {
		return nil, err
	}

	t.Name = utils.SanitizeString(req.Name)
	t.Description = utils.SanitizeText(req.Description)
	t.PayloadCapacityTons = req.PayloadCapacityTons
	t.VolumeCapacityM3 = req.VolumeCapacityM3
	t.SuitableMaterials = req.SuitableMaterials
	t.Capabilities = recommendation.Capabilities{
		Crane:         req.HasCrane,
		HydraulicLift: req.HasHydraulicLift,
	}
	t.BaseRatePerKm = req.BaseRatePerKm
	t.BaseRatePerHour = req.BaseRatePerHour

	if err := s.truckRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	resp := toTruckTypeResponse(t)
	return &resp, nil
}

func (s *Service) SetActive(ctx context.Context, truckTypeID uuid.UUID, active bool) error {
	return s.truckRepo.SetActive(ctx, truckTypeID, active)
}

func (s *Service) Get(ctx context.Context, truckTypeID uuid.UUID) (*TruckTypeResponse, error) {
	t, err := s.truckRepo.GetByID(ctx, truckTypeID)
	if err != nil {
		return nil, err
	}
	resp := toTruckTypeResponse(t)
	return &resp, nil
}

// List returns the full catalog, including deactivated entries.
func (s *Service) List(ctx context.Context) ([]TruckTypeResponse, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(trucks), nil
}

// ListActive returns the catalog entries eligible for dispatch.
func (s *Service) ListActive(ctx context.Context) ([]TruckTypeResponse, error) {
	trucks, err := s.truckRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(trucks), nil
}

func toResponses(trucks []*domainTruck.TruckType) []TruckTypeResponse {
	responses := make([]TruckTypeResponse, 0, len(trucks))
	for _, t := range trucks {
		responses = append(responses, toTruckTypeResponse(t))
	}
	return responses
}
