package recommendation

import (
	"reflect"
	"strings"
	"testing"
)

func testTrucks() []TruckType {
	return []TruckType{
		{
			ID:                  "dump-5t",
			Name:                "Dump Truck",
			PayloadCapacityTons: 5,
			VolumeCapacityM3:    6,
		},
		{
			ID:                  "flatbed-10t",
			Name:                "Flatbed Truck",
			PayloadCapacityTons: 10,
			VolumeCapacityM3:    12,
		},
		{
			ID:                  "mini-2t",
			Name:                "Mini Truck",
			PayloadCapacityTons: 2,
			VolumeCapacityM3:    4,
		},
		{
			ID:                  "lowboy-10t",
			Name:                "Lowboy Trailer",
			PayloadCapacityTons: 10,
			VolumeCapacityM3:    20,
			Capabilities:        Capabilities{Crane: true, HydraulicLift: true},
		},
	}
}

func TestRecommendSortedAndBounded(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{
		MaterialType:        MaterialSand,
		EstimatedWeightTons: 4,
	}

	recs := engine.Recommend(req, testTrucks())
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}

	for i, rec := range recs {
		if rec.Score < 0 || rec.Score > 100 {
			t.Errorf("score out of bounds for %s: %d", rec.TruckType.Name, rec.Score)
		}
		if i > 0 && recs[i-1].Score < rec.Score {
			t.Errorf("results not sorted descending at index %d: %d < %d",
				i, recs[i-1].Score, rec.Score)
		}
	}

	if recs[0].TruckType.Name != "Dump Truck" {
		t.Errorf("expected Dump Truck ranked first, got %s", recs[0].TruckType.Name)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{
		MaterialType:          MaterialHeavyMachinery,
		EstimatedWeightTons:   6,
		RequiresCrane:         true,
		RequiresHydraulicLift: true,
	}

	first := engine.Recommend(req, testTrucks())
	second := engine.Recommend(req, testTrucks())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different outputs")
	}
}

func TestWeightHardGate(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{
		MaterialType:        MaterialHeavyMachinery,
		EstimatedWeightTons: 6,
	}
	truck := TruckType{
		ID:                  "box-5t",
		Name:                "Box Truck",
		PayloadCapacityTons: 5,
		VolumeCapacityM3:    10,
	}

	recs := engine.Recommend(req, []TruckType{truck})
	if len(recs) != 1 {
		t.Fatalf("disqualified truck must still be returned, got %d results", len(recs))
	}

	rec := recs[0]
	if rec.Score != 0 {
		t.Errorf("over-capacity truck score = %d, want 0", rec.Score)
	}
	if len(rec.Warnings) == 0 {
		t.Fatal("over-capacity truck must carry a warning")
	}

	found := false
	for _, w := range rec.Warnings {
		if strings.Contains(w, "Exceeds weight capacity by 1.0 tons") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing overage warning, got %v", rec.Warnings)
	}
	if rec.IsRecommended {
		t.Error("over-capacity truck must not be recommended")
	}
	if rec.CapacityUtilization.WeightPct <= 100 {
		t.Errorf("weight utilization should signal overflow, got %.1f",
			rec.CapacityUtilization.WeightPct)
	}
}

func TestVolumeFallbackFromWeight(t *testing.T) {
	engine := NewEngine(nil)

	// Steel multiplier is 0.2: 10 tons estimates to 2.0 m3.
	req := MaterialRequirement{
		MaterialType:        MaterialSteel,
		EstimatedWeightTons: 10,
	}
	truck := TruckType{
		ID:                  "flatbed-20t",
		Name:                "Flatbed Truck",
		PayloadCapacityTons: 20,
		VolumeCapacityM3:    10,
		Capabilities:        Capabilities{Crane: true},
	}

	recs := engine.Recommend(req, []TruckType{truck})
	if got := recs[0].CapacityUtilization.VolumePct; got != 20 {
		t.Errorf("volume utilization = %.1f, want 20 (2.0 m3 of 10 m3)", got)
	}
}

func TestExplicitVolumeOverridesEstimate(t *testing.T) {
	engine := NewEngine(nil)

	vol := 8.0
	req := MaterialRequirement{
		MaterialType:        MaterialSteel,
		EstimatedWeightTons: 10,
		EstimatedVolumeM3:   &vol,
	}
	truck := TruckType{
		ID:                  "flatbed-20t",
		Name:                "Flatbed Truck",
		PayloadCapacityTons: 20,
		VolumeCapacityM3:    10,
	}

	recs := engine.Recommend(req, []TruckType{truck})
	if got := recs[0].CapacityUtilization.VolumePct; got != 80 {
		t.Errorf("volume utilization = %.1f, want 80", got)
	}
}

func TestSandVolumeScenario(t *testing.T) {
	engine := NewEngine(nil)

	// 1 ton of sand with no measured volume estimates to 0.6 m3, well
	// inside an 8 m3 bed, so the full volume points apply.
	req := MaterialRequirement{
		MaterialType:        MaterialSand,
		EstimatedWeightTons: 1,
	}
	truck := TruckType{
		ID:                  "dump-8m3",
		Name:                "Dump Truck",
		PayloadCapacityTons: 3,
		VolumeCapacityM3:    8,
	}

	rec := engine.Recommend(req, []TruckType{truck})[0]
	if got := rec.CapacityUtilization.VolumePct; got != 7.5 {
		t.Errorf("volume utilization = %.2f, want 7.5 (0.6 m3 of 8 m3)", got)
	}

	found := false
	for _, r := range rec.Reasons {
		if strings.Contains(r, "Good volume fit") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a volume fit reason, got %v", rec.Reasons)
	}
}

func TestRecommendedInvariant(t *testing.T) {
	engine := NewEngine(nil)

	requirements := []MaterialRequirement{
		{MaterialType: MaterialSand, EstimatedWeightTons: 4},
		{MaterialType: MaterialSteel, EstimatedWeightTons: 8, RequiresCrane: true},
		{MaterialType: MaterialHeavyMachinery, EstimatedWeightTons: 6,
			RequiresCrane: true, RequiresHydraulicLift: true},
		{MaterialType: MaterialOther, EstimatedWeightTons: 0.3},
	}

	for _, req := range requirements {
		for _, rec := range engine.Recommend(req, testTrucks()) {
			want := rec.Score >= 70 && len(rec.Warnings) == 0
			if rec.IsRecommended != want {
				t.Errorf("%s/%s: IsRecommended = %v with score %d and %d warnings",
					req.MaterialType, rec.TruckType.Name,
					rec.IsRecommended, rec.Score, len(rec.Warnings))
			}
		}
	}
}

func TestPerfectMatchScoresFull(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{
		MaterialType:          MaterialHeavyMachinery,
		EstimatedWeightTons:   6,
		RequiresCrane:         true,
		RequiresHydraulicLift: true,
	}
	lowboy := TruckType{
		ID:                  "lowboy-10t",
		Name:                "Lowboy Trailer",
		PayloadCapacityTons: 10,
		VolumeCapacityM3:    20,
		Capabilities:        Capabilities{Crane: true, HydraulicLift: true},
	}

	rec := engine.Recommend(req, []TruckType{lowboy})[0]
	if rec.Score != 100 {
		t.Errorf("score = %d, want 100", rec.Score)
	}
	if !rec.IsRecommended {
		t.Error("perfect match must be recommended")
	}
}

func TestMissingEquipmentPenalty(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{
		MaterialType:        MaterialSteel,
		EstimatedWeightTons: 4,
		RequiresCrane:       true,
	}
	plain := TruckType{
		ID:                  "flatbed-10t",
		Name:                "Flatbed Truck",
		PayloadCapacityTons: 10,
		VolumeCapacityM3:    12,
	}

	rec := engine.Recommend(req, []TruckType{plain})[0]
	found := false
	for _, w := range rec.Warnings {
		if strings.Contains(w, "crane") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-crane warning, got %v", rec.Warnings)
	}
	if rec.IsRecommended {
		t.Error("truck missing required equipment must not be recommended")
	}
}

func TestSmallerTruckAdvisoryDoesNotScore(t *testing.T) {
	profiles := ProfileTable{
		MaterialOther: {
			PreferredTruckNames:     []string{"Flatbed Truck"},
			MinViableCapacityTons:   2,
			VolumeDensityMultiplier: 0.5,
		},
	}
	engine := NewEngine(profiles)

	req := MaterialRequirement{MaterialType: MaterialOther, EstimatedWeightTons: 1}
	big := TruckType{
		ID:                  "flatbed-10t",
		Name:                "Flatbed Truck",
		PayloadCapacityTons: 10,
		VolumeCapacityM3:    12,
	}
	small := TruckType{
		ID:                  "flatbed-4t",
		Name:                "Flatbed Truck",
		PayloadCapacityTons: 4,
		VolumeCapacityM3:    6,
	}

	recs := engine.Recommend(req, []TruckType{big, small})

	var bigRec, smallRec TruckRecommendation
	for _, rec := range recs {
		if rec.TruckType.ID == "flatbed-10t" {
			bigRec = rec
		} else {
			smallRec = rec
		}
	}

	advisory := false
	for _, w := range bigRec.Warnings {
		if strings.Contains(w, "smaller truck") {
			advisory = true
		}
	}
	if !advisory {
		t.Errorf("expected smaller-truck advisory on the 10t flatbed, got %v", bigRec.Warnings)
	}
	for _, w := range smallRec.Warnings {
		if strings.Contains(w, "smaller truck") {
			t.Errorf("4t flatbed should not carry the advisory: %v", smallRec.Warnings)
		}
	}

	// Identical scoring rules apart from the advisory and the efficiency
	// tier: the advisory itself must contribute no delta, which shows up
	// as the big truck losing only through other rules.
	if bigRec.Score > smallRec.Score {
		t.Errorf("oversized truck outranked the right-sized one: %d > %d",
			bigRec.Score, smallRec.Score)
	}
}

func TestUnknownMaterialFallsBackToOther(t *testing.T) {
	engine := NewEngine(nil)

	if got := ParseMaterialType("plutonium"); got != MaterialOther {
		t.Fatalf("ParseMaterialType(plutonium) = %s, want other", got)
	}

	req := MaterialRequirement{
		MaterialType:        ParseMaterialType("plutonium"),
		EstimatedWeightTons: 2,
	}
	recs := engine.Recommend(req, testTrucks())
	if len(recs) != 4 {
		t.Fatalf("unknown material must still rank every candidate, got %d", len(recs))
	}
}

func TestEmptyCatalogYieldsEmptyResult(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{MaterialType: MaterialSand, EstimatedWeightTons: 1}

	recs := engine.Recommend(req, nil)
	if recs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestTiesKeepInputOrder(t *testing.T) {
	engine := NewEngine(nil)
	req := MaterialRequirement{MaterialType: MaterialSand, EstimatedWeightTons: 4}

	// Two identical trucks necessarily tie; stable sort keeps their order.
	a := TruckType{ID: "first", Name: "Dump Truck", PayloadCapacityTons: 5, VolumeCapacityM3: 6}
	b := TruckType{ID: "second", Name: "Dump Truck", PayloadCapacityTons: 5, VolumeCapacityM3: 6}

	recs := engine.Recommend(req, []TruckType{a, b})
	if recs[0].TruckType.ID != "first" || recs[1].TruckType.ID != "second" {
		t.Errorf("tie order changed: got %s, %s", recs[0].TruckType.ID, recs[1].TruckType.ID)
	}
}
