package recommendation

// MaterialType is the closed set of material categories the platform knows
// how to match against the truck catalog. Unknown inputs degrade to
// MaterialOther instead of failing.
type MaterialType string

const (
	MaterialSand           MaterialType = "sand"
	MaterialGravel         MaterialType = "gravel"
	MaterialCement         MaterialType = "cement"
	MaterialBricks         MaterialType = "bricks"
	MaterialSteel          MaterialType = "steel"
	MaterialTimber         MaterialType = "timber"
	MaterialConcrete       MaterialType = "concrete"
	MaterialHeavyMachinery MaterialType = "heavy_machinery"
	MaterialOther          MaterialType = "other"
)

// ParseMaterialType maps a raw string onto the closed material set.
func ParseMaterialType(s string) MaterialType {
	switch MaterialType(s) {
	case MaterialSand, MaterialGravel, MaterialCement, MaterialBricks,
		MaterialSteel, MaterialTimber, MaterialConcrete, MaterialHeavyMachinery:
		return MaterialType(s)
	default:
		return MaterialOther
	}
}

// Capabilities describes the special equipment mounted on a truck type.
// Matching is done against these flags, not against the truck name.
type Capabilities struct {
	Crane         bool `json:"crane"`
	HydraulicLift bool `json:"hydraulic_lift"`
}

// TruckType is a read-only catalog entry. The catalog collaborator owns its
// lifecycle; the engine only scores it.
type TruckType struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	PayloadCapacityTons float64      `json:"payload_capacity_tons"`
	VolumeCapacityM3    float64      `json:"volume_capacity_m3"`
	SuitableMaterials   []string     `json:"suitable_materials"`
	Capabilities        Capabilities `json:"capabilities"`
	BaseRatePerKm       float64      `json:"base_rate_per_km"`
	BaseRatePerHour     float64      `json:"base_rate_per_hour"`
}

// MaterialRequirement describes one load to be moved. Built fresh per
// request and never persisted by the engine.
type MaterialRequirement struct {
	MaterialType          MaterialType `json:"material_type"`
	EstimatedWeightTons   float64      `json:"estimated_weight_tons"`
	EstimatedVolumeM3     *float64     `json:"estimated_volume_m3,omitempty"`
	LoadDescription       string       `json:"load_description"`
	RequiresCrane         bool         `json:"requires_crane"`
	RequiresHydraulicLift bool         `json:"requires_hydraulic_lift"`
}

// MaterialProfile holds the static per-material matching knowledge.
type MaterialProfile struct {
	PreferredTruckNames     []string
	MinViableCapacityTons   float64
	RequiresCrane           bool
	RequiresHydraulicLift   bool
	VolumeDensityMultiplier float64
}

// CapacityUtilization reports how much of the truck's rated capacity the
// load would use. Values above 100 signal overflow and are not clamped.
type CapacityUtilization struct {
	WeightPct float64 `json:"weight_pct"`
	VolumePct float64 `json:"volume_pct"`
}

// TruckRecommendation is one scored candidate. A truck that fails every rule
// still appears with Score 0 so callers can see "zero viable trucks"
// explicitly instead of inferring it from a shorter list.
type TruckRecommendation struct {
	TruckType           TruckType           `json:"truck_type"`
	Score               int                 `json:"score"`
	Reasons             []string            `json:"reasons"`
	Warnings            []string            `json:"warnings"`
	IsRecommended       bool                `json:"is_recommended"`
	CapacityUtilization CapacityUtilization `json:"capacity_utilization"`
}
