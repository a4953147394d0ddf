package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buildmat-dispatch/internal/config"
	"buildmat-dispatch/internal/dispatch/lifecycle"
	"buildmat-dispatch/internal/dispatch/recommendation"
	domainOrder "buildmat-dispatch/internal/domain/order"
	domainTruck "buildmat-dispatch/internal/domain/truck"
	domainUser "buildmat-dispatch/internal/domain/user"
	"buildmat-dispatch/internal/logger"
	"buildmat-dispatch/internal/notify"
	appErrors "buildmat-dispatch/pkg/errors"
	"buildmat-dispatch/pkg/utils"
)

// topMatchCount is how many recommendations the shortlist holds.
const topMatchCount = 3

// StatusNotifier broadcasts order status changes. A publish failure never
// fails the status change itself.
type StatusNotifier interface {
	PublishStatusChange(ev notify.StatusEvent) error
}

// Service implements order, dispatch and trip use cases.
type Service struct {
	orderRepo domainOrder.Repository
	truckRepo domainTruck.Repository
	engine    *recommendation.Engine
	notifier  StatusNotifier
	cfg       *config.Config
}

func NewService(
	orderRepo domainOrder.Repository,
	truckRepo domainTruck.Repository,
	engine *recommendation.Engine,
	notifier StatusNotifier,
	cfg *config.Config,
) *Service {
	if engine == nil {
		engine = recommendation.NewEngine(nil)
	}
	return &Service{
		orderRepo: orderRepo,
		truckRepo: truckRepo,
		engine:    engine,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *Service) CreateOrder(ctx context.Context, customerID uuid.UUID, req *CreateOrderRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	o := &domainOrder.Order{
		CustomerID:            customerID,
		MaterialType:          string(recommendation.ParseMaterialType(req.MaterialType)),
		EstimatedWeightTons:   req.EstimatedWeightTons,
		EstimatedVolumeM3:     req.EstimatedVolumeM3,
		LoadDescription:       utils.SanitizeText(req.LoadDescription),
		RequiresCrane:         req.RequiresCrane,
		RequiresHydraulicLift: req.RequiresHydraulicLift,
		PickupAddress:         utils.SanitizeString(req.PickupAddress),
		DeliveryAddress:       utils.SanitizeString(req.DeliveryAddress),
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	logger.Info("Order created",
		zap.String("order_id", o.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("material_type", o.MaterialType),
	)

	resp := toOrderResponse(o)
	return &resp, nil
}

// GetOrder returns one order, restricted to its customer, its assigned
// driver, or an admin.
func (s *Service) GetOrder(ctx context.Context, orderID, callerID uuid.UUID, role string) (*OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOrderAccess(o, callerID, role); err != nil {
		return nil, err
	}

	resp := toOrderResponse(o)
	return &resp, nil
}

// ListOrders returns the caller's orders. Customers and drivers are pinned
// to their own orders regardless of the filter they send; admins may filter
// freely.
func (s *Service) ListOrders(ctx context.Context, callerID uuid.UUID, role string, filter *domainOrder.Filter) (*OrderListResponse, error) {
	if filter == nil {
		filter = &domainOrder.Filter{}
	}
	switch domainUser.Role(role) {
	case domainUser.RoleCustomer:
		filter.CustomerID = &callerID
		filter.DriverID = nil
	case domainUser.RoleDriver:
		filter.DriverID = &callerID
		filter.CustomerID = nil
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return &OrderListResponse{
		Orders:   responses,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// CancelOrder lets the customer cancel before the load is picked up.
func (s *Service) CancelOrder(ctx context.Context, orderID, customerID uuid.UUID) error {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.CustomerID != customerID {
		return domainOrder.ErrNotOrderCustomer
	}
	if lifecycle.IsTerminal(o.Status) {
		return domainOrder.ErrOrderTerminal
	}
	if o.Status == lifecycle.OrderPickedUp || o.Status == lifecycle.OrderInTransit {
		return domainOrder.ErrOrderInProgress
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, lifecycle.OrderCancelled); err != nil {
		return err
	}
	s.publishChange(o.ID, o.Status, lifecycle.OrderCancelled, "customer")

	logger.Info("Order cancelled",
		zap.String("order_id", orderID.String()),
	)
	return nil
}

// Recommend scores the active catalog against an ad-hoc load description.
func (s *Service) Recommend(ctx context.Context, req *RecommendationRequest) (*RecommendationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	requirement := recommendation.MaterialRequirement{
		MaterialType:          recommendation.ParseMaterialType(req.MaterialType),
		EstimatedWeightTons:   req.EstimatedWeightTons,
		EstimatedVolumeM3:     req.EstimatedVolumeM3,
		LoadDescription:       req.LoadDescription,
		RequiresCrane:         req.RequiresCrane,
		RequiresHydraulicLift: req.RequiresHydraulicLift,
	}
	return s.recommend(ctx, requirement)
}

// RecommendForOrder scores the active catalog against an existing order,
// used by the dispatcher during assignment.
func (s *Service) RecommendForOrder(ctx context.Context, orderID uuid.UUID) (*RecommendationResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.recommend(ctx, o.Requirement())
}

func (s *Service) recommend(ctx context.Context, requirement recommendation.MaterialRequirement) (*RecommendationResponse, error) {
	trucks, err := s.truckRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]recommendation.TruckType, 0, len(trucks))
	for _, t := range trucks {
		catalog = append(catalog, t.CatalogEntry())
	}

	scored := s.engine.Recommend(requirement, catalog)

	split := topMatchCount
	if split > len(scored) {
		split = len(scored)
	}
	return &RecommendationResponse{
		TopMatches: scored[:split],
		Others:     scored[split:],
		Advice:     s.engine.MaterialAdvice(requirement.MaterialType),
	}, nil
}

// AssignDriver matches an order with a driver and a truck type.
func (s *Service) AssignDriver(ctx context.Context, orderID uuid.UUID, req *AssignDriverRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if lifecycle.IsTerminal(o.Status) {
		return nil, domainOrder.ErrOrderTerminal
	}

	t, err := s.truckRepo.GetByID(ctx, req.TruckTypeID)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, domainTruck.ErrTruckTypeInactive
	}

	if err := s.orderRepo.Assign(ctx, orderID, req.DriverID, req.TruckTypeID); err != nil {
		return nil, err
	}
	s.publishChange(orderID, o.Status, lifecycle.OrderMatched, "dispatcher")

	logger.Info("Order assigned",
		zap.String("order_id", orderID.String()),
		zap.String("driver_id", req.DriverID.String()),
		zap.String("truck_type", t.Name),
	)

	updated, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(updated)
	return &resp, nil
}

// DriverTripView returns the driver's live view of an assigned order.
func (s *Service) DriverTripView(ctx context.Context, orderID, driverID uuid.UUID) (*TripViewResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeDriver(o, driverID); err != nil {
		return nil, err
	}

	trip := lifecycle.ToTripStatus(normalizeStatus(o.Status))
	view := toTripView(o, trip)
	return &view, nil
}

// AdvanceTrip applies the driver's action button: take the trip status the
// app reports, step it forward, collapse it back onto the order status and
// persist that. The reported status is only trusted when it collapses onto
// the persisted order status; otherwise the server re-derives it, so a
// stale or drifted app cannot skip ahead.
func (s *Service) AdvanceTrip(ctx context.Context, orderID, driverID uuid.UUID, req *AdvanceTripRequest) (*TripViewResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeDriver(o, driverID); err != nil {
		return nil, err
	}
	if o.Status == lifecycle.OrderCancelled || o.Status == lifecycle.OrderExpired {
		return nil, domainOrder.ErrOrderTerminal
	}

	current := normalizeStatus(o.Status)
	trip := lifecycle.ToTripStatus(current)
	if req != nil && req.TripStatus != "" {
		if reported, ok := lifecycle.ParseTripStatus(req.TripStatus); ok && lifecycle.ToOrderStatus(reported) == current {
			trip = reported
		}
	}
	next, ok := lifecycle.Next(trip)
	if !ok {
		return nil, domainOrder.ErrTripComplete
	}

	newStatus := lifecycle.ToOrderStatus(next)
	if newStatus != current {
		if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
			return nil, err
		}
		s.publishChange(orderID, o.Status, newStatus, "driver")
	}
	o.Status = newStatus

	logger.Info("Trip advanced",
		zap.String("order_id", orderID.String()),
		zap.String("trip_status", string(next)),
		zap.String("order_status", string(newStatus)),
	)

	view := toTripView(o, next)
	return &view, nil
}

// StartExpirySweep runs the pending-order expiry job until ctx is
// cancelled.
func (s *Service) StartExpirySweep(ctx context.Context) {
	interval := s.cfg.Dispatch.SweepInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Order expiry sweep started",
		zap.Duration("interval", interval),
		zap.Duration("expiry", s.cfg.Dispatch.OrderExpiry()),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Order expiry sweep stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.cfg.Dispatch.OrderExpiry())
			swept, err := s.orderRepo.ExpirePending(ctx, cutoff)
			if err != nil {
				logger.Error("Order expiry sweep failed", zap.Error(err))
				continue
			}
			if swept > 0 {
				logger.Info("Expired stale pending orders", zap.Int64("count", swept))
			}
		}
	}
}

func (s *Service) publishChange(orderID uuid.UUID, previous, next lifecycle.OrderStatus, changedBy string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.PublishStatusChange(notify.StatusEvent{
		OrderID:        orderID,
		PreviousStatus: previous,
		NewStatus:      next,
		ChangedBy:      changedBy,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Warn("Failed to publish status change",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
	}
}

// normalizeStatus folds the legacy "accepted" value, still present on rows
// written by the old dispatcher, onto "matched" before the status reaches
// the trip mapping.
func normalizeStatus(s lifecycle.OrderStatus) lifecycle.OrderStatus {
	if s == "accepted" {
		return lifecycle.OrderMatched
	}
	return s
}

func authorizeOrderAccess(o *domainOrder.Order, callerID uuid.UUID, role string) error {
	switch domainUser.Role(role) {
	case domainUser.RoleAdmin:
		return nil
	case domainUser.RoleDriver:
		return authorizeDriver(o, callerID)
	default:
		if o.CustomerID != callerID {
			return domainOrder.ErrNotOrderCustomer
		}
		return nil
	}
}

func authorizeDriver(o *domainOrder.Order, driverID uuid.UUID) error {
	if o.DriverID == nil {
		return domainOrder.ErrOrderNotAssigned
	}
	if *o.DriverID != driverID {
		return domainOrder.ErrNotAssignedDriver
	}
	return nil
}
