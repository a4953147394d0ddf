package recommendation

// EstimateVolume derives a load volume from its weight using the material's
// density multiplier. Used when the caller cannot measure volume directly.
func (e *Engine) EstimateVolume(mt MaterialType, weightTons float64) float64 {
	return weightTons * e.profiles.Resolve(mt).VolumeDensityMultiplier
}

// QuickRecommendation returns the preferred truck names for a material, in
// preference order, without scoring a catalog.
func (e *Engine) QuickRecommendation(mt MaterialType) []string {
	preferred := e.profiles.Resolve(mt).PreferredTruckNames
	out := make([]string, len(preferred))
	copy(out, preferred)
	return out
}

var materialAdvice = map[MaterialType][]string{
	MaterialSand: {
		"Cover the load to prevent spillage in transit",
		"Account for moisture: wet sand weighs up to 20% more",
	},
	MaterialGravel: {
		"Cover the load to prevent spillage in transit",
		"Use a tipper body for faster unloading",
	},
	MaterialCement: {
		"Keep bags dry, cement sets on contact with moisture",
		"Stack pallets no more than two high",
	},
	MaterialBricks: {
		"Palletized bricks need a crane or forklift at both ends",
		"Distribute pallets evenly over the bed",
	},
	MaterialSteel: {
		"Secure long sections with rated chains, not straps",
		"Flag overhanging lengths per local transport rules",
	},
	MaterialTimber: {
		"Strap bundles at both ends and mid-span",
		"Protect finished lumber from rain during transit",
	},
	MaterialConcrete: {
		"Ready-mix must be poured within 90 minutes of batching",
		"Confirm site access for the mixer before dispatch",
	},
	MaterialHeavyMachinery: {
		"Check route for low bridges and weight-limited roads",
		"Machinery must be chained at four points minimum",
	},
}

var genericAdvice = []string{
	"Verify the weight estimate before booking",
	"Confirm loading and unloading equipment at both sites",
}

// MaterialAdvice returns static handling guidance for a material. Unknown
// materials get the generic checklist.
func (e *Engine) MaterialAdvice(mt MaterialType) []string {
	advice, ok := materialAdvice[mt]
	if !ok {
		advice = genericAdvice
	}
	out := make([]string, len(advice))
	copy(out, advice)
	return out
}
