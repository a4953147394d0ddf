package lifecycle

import "testing"

func TestNextWalksLinearProgression(t *testing.T) {
	want := []TripStatus{
		TripEnRoutePickup,
		TripAtPickup,
		TripLoaded,
		TripEnRouteDelivery,
		TripDelivered,
	}

	current := TripAssigned
	for _, expected := range want {
		next, ok := Next(current)
		if !ok {
			t.Fatalf("Next(%q) reported terminal before delivered", current)
		}
		if next != expected {
			t.Fatalf("Next(%q) = %q, want %q", current, next, expected)
		}
		current = next
	}

	if _, ok := Next(TripDelivered); ok {
		t.Error("Next(delivered) must report the trip is complete")
	}
}

func TestNextUnknownStatusIsTerminal(t *testing.T) {
	if _, ok := Next(TripStatus("bogus")); ok {
		t.Error("unknown trip status must not advance")
	}
}

func TestParseTripStatus(t *testing.T) {
	for _, s := range []TripStatus{TripAssigned, TripEnRoutePickup, TripAtPickup, TripLoaded, TripEnRouteDelivery, TripDelivered} {
		got, ok := ParseTripStatus(string(s))
		if !ok || got != s {
			t.Errorf("ParseTripStatus(%q) = %q, %t, want %q, true", s, got, ok, s)
		}
	}

	for _, raw := range []string{"", "bogus", "ASSIGNED", "matched"} {
		if _, ok := ParseTripStatus(raw); ok {
			t.Errorf("ParseTripStatus(%q) accepted an unknown value", raw)
		}
	}
}

func TestActionLabels(t *testing.T) {
	cases := []struct {
		trip TripStatus
		want string
	}{
		{TripAssigned, "Start Trip"},
		{TripEnRoutePickup, "Arrived at Pickup"},
		{TripAtPickup, "Materials Loaded"},
		{TripLoaded, "En Route to Delivery"},
		{TripEnRouteDelivery, "Complete Delivery"},
		{TripDelivered, "Trip Completed"},
		{TripStatus("bogus"), "Start Trip"},
	}

	for _, c := range cases {
		if got := ActionLabel(c.trip); got != c.want {
			t.Errorf("ActionLabel(%q) = %q, want %q", c.trip, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []OrderStatus{OrderDelivered, OrderCancelled, OrderExpired}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%q) = false, want true", s)
		}
	}

	open := []OrderStatus{OrderPending, OrderAssigned, OrderMatched, OrderPickedUp, OrderInTransit}
	for _, s := range open {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%q) = true, want false", s)
		}
	}
}
