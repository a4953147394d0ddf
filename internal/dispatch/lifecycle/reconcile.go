package lifecycle

import "go.uber.org/zap"

// The two mapping functions below are total: any input, including a value
// that drifted in the backend, coerces to a documented default instead of
// failing. The forward mapping is not injective (four trip statuses collapse
// onto in_transit), so ToTripStatus(ToOrderStatus(t)) is not guaranteed to
// return t. That information loss is current, intended behavior; see the
// round-trip test before changing either table.

// ToTripStatus derives the driver-facing trip status from the persisted
// order status, used when the driver opens the live-tracking view.
func ToTripStatus(s OrderStatus) TripStatus {
	switch s {
	case OrderMatched:
		return TripAssigned
	case OrderInTransit:
		return TripEnRoutePickup
	case OrderDelivered:
		return TripDelivered
	default:
		zap.L().Warn("unmapped order status, defaulting trip view to assigned",
			zap.String("order_status", string(s)),
		)
		return TripAssigned
	}
}

// ToOrderStatus collapses a trip status onto the coarse order status that
// gets persisted and shown to the customer.
func ToOrderStatus(t TripStatus) OrderStatus {
	switch t {
	case TripAssigned:
		return OrderMatched
	case TripEnRoutePickup, TripAtPickup, TripLoaded, TripEnRouteDelivery:
		return OrderInTransit
	case TripDelivered:
		return OrderDelivered
	default:
		zap.L().Warn("unmapped trip status, defaulting to matched",
			zap.String("trip_status", string(t)),
		)
		return OrderMatched
	}
}
