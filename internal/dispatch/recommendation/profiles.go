package recommendation

// ProfileTable is the injected material knowledge base. It is treated as
// immutable after construction; tests substitute their own fixtures instead
// of mutating process-wide state.
type ProfileTable map[MaterialType]MaterialProfile

// Resolve returns the profile for a material type, falling back to the
// "other" entry for anything the table does not know.
func (t ProfileTable) Resolve(mt MaterialType) MaterialProfile {
	if p, ok := t[mt]; ok {
		return p
	}
	return t[MaterialOther]
}

// DefaultProfiles returns the built-in material knowledge used in
// production. Volume multipliers are rough bulk-density inverses
// (volume m3 per ton of material).
func DefaultProfiles() ProfileTable {
	return ProfileTable{
		MaterialSand: {
			PreferredTruckNames:     []string{"Dump Truck", "Tipper Truck"},
			MinViableCapacityTons:   1,
			VolumeDensityMultiplier: 0.6,
		},
		MaterialGravel: {
			PreferredTruckNames:     []string{"Dump Truck", "Tipper Truck"},
			MinViableCapacityTons:   1,
			VolumeDensityMultiplier: 0.55,
		},
		MaterialCement: {
			PreferredTruckNames:     []string{"Box Truck", "Flatbed Truck"},
			MinViableCapacityTons:   0.5,
			VolumeDensityMultiplier: 0.7,
		},
		MaterialBricks: {
			PreferredTruckNames:     []string{"Flatbed Truck", "Crane Truck"},
			MinViableCapacityTons:   1,
			RequiresCrane:           true,
			VolumeDensityMultiplier: 0.45,
		},
		MaterialSteel: {
			PreferredTruckNames:     []string{"Flatbed Truck", "Crane Truck"},
			MinViableCapacityTons:   2,
			RequiresCrane:           true,
			VolumeDensityMultiplier: 0.2,
		},
		MaterialTimber: {
			PreferredTruckNames:     []string{"Flatbed Truck", "Stake Truck"},
			MinViableCapacityTons:   0.5,
			VolumeDensityMultiplier: 0.9,
		},
		MaterialConcrete: {
			PreferredTruckNames:     []string{"Concrete Mixer"},
			MinViableCapacityTons:   2,
			VolumeDensityMultiplier: 0.45,
		},
		MaterialHeavyMachinery: {
			PreferredTruckNames:     []string{"Lowboy Trailer", "Crane Truck"},
			MinViableCapacityTons:   3,
			RequiresCrane:           true,
			RequiresHydraulicLift:   true,
			VolumeDensityMultiplier: 0.5,
		},
		MaterialOther: {
			PreferredTruckNames:     []string{"Flatbed Truck", "Box Truck"},
			MinViableCapacityTons:   0.5,
			VolumeDensityMultiplier: 0.5,
		},
	}
}
