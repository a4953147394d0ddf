package recommendation

import "testing"

func TestEstimateVolume(t *testing.T) {
	engine := NewEngine(nil)

	if got := engine.EstimateVolume(MaterialSteel, 10); got != 2.0 {
		t.Errorf("EstimateVolume(steel, 10) = %v, want 2.0", got)
	}
	if got := engine.EstimateVolume(MaterialSand, 1); got != 0.6 {
		t.Errorf("EstimateVolume(sand, 1) = %v, want 0.6", got)
	}
	// Unknown materials use the "other" multiplier.
	if got := engine.EstimateVolume(MaterialType("unobtainium"), 4); got != 2.0 {
		t.Errorf("EstimateVolume(unknown, 4) = %v, want 2.0", got)
	}
}

func TestQuickRecommendation(t *testing.T) {
	engine := NewEngine(nil)

	names := engine.QuickRecommendation(MaterialSand)
	if len(names) == 0 {
		t.Fatal("expected preferred truck names for sand")
	}
	if names[0] != "Dump Truck" {
		t.Errorf("first preference = %q, want Dump Truck", names[0])
	}

	// Mutating the returned slice must not leak into the table.
	names[0] = "clobbered"
	if engine.QuickRecommendation(MaterialSand)[0] != "Dump Truck" {
		t.Error("QuickRecommendation must return a copy")
	}
}

func TestMaterialAdvice(t *testing.T) {
	engine := NewEngine(nil)

	if advice := engine.MaterialAdvice(MaterialConcrete); len(advice) == 0 {
		t.Error("expected concrete-specific advice")
	}

	generic := engine.MaterialAdvice(MaterialType("unobtainium"))
	if len(generic) == 0 {
		t.Fatal("unknown materials must get generic advice")
	}
	if generic[0] != genericAdvice[0] {
		t.Errorf("unknown material advice = %q, want generic fallback", generic[0])
	}
}
