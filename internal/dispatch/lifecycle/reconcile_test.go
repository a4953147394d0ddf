package lifecycle

import "testing"

func TestToTripStatusMapping(t *testing.T) {
	cases := []struct {
		order OrderStatus
		want  TripStatus
	}{
		{OrderMatched, TripAssigned},
		{OrderInTransit, TripEnRoutePickup},
		{OrderDelivered, TripDelivered},
		{OrderPending, TripAssigned},
		{OrderAssigned, TripAssigned},
		{OrderPickedUp, TripAssigned},
		{OrderCancelled, TripAssigned},
		{OrderExpired, TripAssigned},
		{OrderStatus("totally-bogus"), TripAssigned},
		{OrderStatus(""), TripAssigned},
	}

	for _, c := range cases {
		if got := ToTripStatus(c.order); got != c.want {
			t.Errorf("ToTripStatus(%q) = %q, want %q", c.order, got, c.want)
		}
	}
}

func TestToOrderStatusMapping(t *testing.T) {
	cases := []struct {
		trip TripStatus
		want OrderStatus
	}{
		{TripAssigned, OrderMatched},
		{TripEnRoutePickup, OrderInTransit},
		{TripAtPickup, OrderInTransit},
		{TripLoaded, OrderInTransit},
		{TripEnRouteDelivery, OrderInTransit},
		{TripDelivered, OrderDelivered},
		{TripStatus("totally-bogus"), OrderMatched},
		{TripStatus(""), OrderMatched},
	}

	for _, c := range cases {
		if got := ToOrderStatus(c.trip); got != c.want {
			t.Errorf("ToOrderStatus(%q) = %q, want %q", c.trip, got, c.want)
		}
	}
}

// The forward mapping collapses four trip statuses onto in_transit, so a
// driver who reaches at_pickup or loaded and reloads the screen is shown
// en_route_pickup again. These assertions document that loss; if either
// mapping table changes, they must be updated deliberately.
func TestRoundTripIsLossy(t *testing.T) {
	if got := ToTripStatus(ToOrderStatus(TripLoaded)); got != TripEnRoutePickup {
		t.Errorf("round trip of loaded = %q, want en_route_pickup (documented loss)", got)
	}
	if got := ToTripStatus(ToOrderStatus(TripAtPickup)); got != TripEnRoutePickup {
		t.Errorf("round trip of at_pickup = %q, want en_route_pickup (documented loss)", got)
	}

	// The full driver path: matched -> assigned, advance once,
	// persist, reload.
	trip := ToTripStatus(OrderMatched)
	if trip != TripAssigned {
		t.Fatalf("ToTripStatus(matched) = %q, want assigned", trip)
	}
	next, ok := Next(trip)
	if !ok || next != TripEnRoutePickup {
		t.Fatalf("Next(assigned) = %q, %v", next, ok)
	}
	persisted := ToOrderStatus(next)
	if persisted != OrderInTransit {
		t.Fatalf("ToOrderStatus(en_route_pickup) = %q, want in_transit", persisted)
	}
	if got := ToTripStatus(persisted); got != TripEnRoutePickup {
		t.Errorf("reload after advance = %q, want en_route_pickup", got)
	}
}

func TestRoundTripIdentityWhereItHolds(t *testing.T) {
	// assigned and delivered survive the round trip; only the in_transit
	// refinements do not.
	for _, trip := range []TripStatus{TripAssigned, TripDelivered} {
		if got := ToTripStatus(ToOrderStatus(trip)); got != trip {
			t.Errorf("round trip of %q = %q, want identity", trip, got)
		}
	}
}
