package lifecycle

// OrderStatus is the coarse, persisted status a customer sees. It is the
// single source of truth; TripStatus is always derived from it.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderMatched   OrderStatus = "matched"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	OrderExpired   OrderStatus = "expired"
)

// TripStatus is the fine-grained, display-only status the driver works
// through. It is never stored; the reconciler collapses it back onto
// OrderStatus before persistence.
type TripStatus string

const (
	TripAssigned        TripStatus = "assigned"
	TripEnRoutePickup   TripStatus = "en_route_pickup"
	TripAtPickup        TripStatus = "at_pickup"
	TripLoaded          TripStatus = "loaded"
	TripEnRouteDelivery TripStatus = "en_route_delivery"
	TripDelivered       TripStatus = "delivered"
)

// tripOrder is the linear driver progression. No branching and no
// cancellation path: cancellation is an OrderStatus the customer or
// dispatcher sets directly, bypassing TripStatus entirely.
var tripOrder = []TripStatus{
	TripAssigned,
	TripEnRoutePickup,
	TripAtPickup,
	TripLoaded,
	TripEnRouteDelivery,
	TripDelivered,
}

// ParseTripStatus maps a raw string onto the trip status set. Unlike the
// mapping functions it is strict, for callers that need to reject unknown
// values instead of coercing them.
func ParseTripStatus(s string) (TripStatus, bool) {
	for _, t := range tripOrder {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Next returns the trip status the driver's action button advances to.
// The second return is false once the trip is delivered.
func Next(t TripStatus) (TripStatus, bool) {
	for i, s := range tripOrder {
		if s == t && i+1 < len(tripOrder) {
			return tripOrder[i+1], true
		}
	}
	return TripDelivered, false
}

// ActionLabel is the text on the button the driver presses while in the
// given status.
func ActionLabel(t TripStatus) string {
	switch t {
	case TripAssigned:
		return "Start Trip"
	case TripEnRoutePickup:
		return "Arrived at Pickup"
	case TripAtPickup:
		return "Materials Loaded"
	case TripLoaded:
		return "En Route to Delivery"
	case TripEnRouteDelivery:
		return "Complete Delivery"
	case TripDelivered:
		return "Trip Completed"
	default:
		return "Start Trip"
	}
}

// IsTerminal reports whether an order status can no longer change.
func IsTerminal(s OrderStatus) bool {
	return s == OrderDelivered || s == OrderCancelled || s == OrderExpired
}
