package recommendation

import "fmt"

// ruleInput is the precomputed view of one candidate that every scoring
// rule receives. Utilization percentages are derived once so the rules stay
// independent of each other.
type ruleInput struct {
	req       MaterialRequirement
	truck     TruckType
	profile   MaterialProfile
	weightPct float64
	volumePct float64
}

// ruleOutcome is the structured result of a single rule. reset zeroes the
// accumulated score and pins it there; only the weight gate uses it.
type ruleOutcome struct {
	delta    int
	reset    bool
	reasons  []string
	warnings []string
}

type scoringRule func(in ruleInput) ruleOutcome

// scoringRules returns the ordered rule chain. Order matters: the weight
// gate must run before any rule whose points it is allowed to erase, and the
// advisory rule is last because it never scores.
func scoringRules() []scoringRule {
	return []scoringRule{
		materialFitRule,
		weightCapacityRule,
		volumeCapacityRule,
		specialEquipmentRule,
		efficiencyRule,
		smallerTruckAdvisory,
	}
}

// materialFitRule awards 30 points for a preferred truck name, 10 for a
// generic carrier.
func materialFitRule(in ruleInput) ruleOutcome {
	for _, name := range in.profile.PreferredTruckNames {
		if in.truck.Name == name {
			return ruleOutcome{
				delta:   30,
				reasons: []string{fmt.Sprintf("Specialized for %s loads", in.req.MaterialType)},
			}
		}
	}
	return ruleOutcome{
		delta:   10,
		reasons: []string{fmt.Sprintf("Can handle %s but is not specialized for it", in.req.MaterialType)},
	}
}

// weightCapacityRule is the hard gate: a load heavier than the rated payload
// disqualifies the truck outright.
func weightCapacityRule(in ruleInput) ruleOutcome {
	if in.req.EstimatedWeightTons > in.truck.PayloadCapacityTons {
		over := in.req.EstimatedWeightTons - in.truck.PayloadCapacityTons
		return ruleOutcome{
			reset:    true,
			warnings: []string{fmt.Sprintf("Exceeds weight capacity by %.1f tons", over)},
		}
	}
	if in.weightPct <= 80 {
		return ruleOutcome{
			delta:   25,
			reasons: []string{fmt.Sprintf("Good weight fit (%.0f%% of payload capacity)", in.weightPct)},
		}
	}
	return ruleOutcome{
		delta:    15,
		warnings: []string{fmt.Sprintf("High weight utilization (%.0f%% of payload capacity)", in.weightPct)},
	}
}

// volumeCapacityRule penalizes volume overflow softly, unlike the weight
// gate: bulky-but-light loads can sometimes be strapped above the bed.
func volumeCapacityRule(in ruleInput) ruleOutcome {
	if in.volumePct > 100 {
		return ruleOutcome{
			delta:    -10,
			warnings: []string{fmt.Sprintf("Exceeds volume capacity (%.0f%% of cargo space)", in.volumePct)},
		}
	}
	if in.volumePct <= 80 {
		return ruleOutcome{
			delta:   20,
			reasons: []string{fmt.Sprintf("Good volume fit (%.0f%% of cargo space)", in.volumePct)},
		}
	}
	return ruleOutcome{
		delta:    10,
		warnings: []string{fmt.Sprintf("High volume utilization (%.0f%% of cargo space)", in.volumePct)},
	}
}

// specialEquipmentRule matches required handling equipment against the
// truck's capability flags. A load with no special needs earns a small bonus
// for keeping the job simple.
func specialEquipmentRule(in ruleInput) ruleOutcome {
	if !in.req.RequiresCrane && !in.req.RequiresHydraulicLift {
		return ruleOutcome{delta: 5}
	}

	missing := []string{}
	if in.req.RequiresCrane && !in.truck.Capabilities.Crane {
		missing = append(missing, "crane")
	}
	if in.req.RequiresHydraulicLift && !in.truck.Capabilities.HydraulicLift {
		missing = append(missing, "hydraulic lift")
	}
	if len(missing) > 0 {
		out := ruleOutcome{delta: -20}
		for _, m := range missing {
			out.warnings = append(out.warnings, fmt.Sprintf("Required equipment not available: %s", m))
		}
		return out
	}
	return ruleOutcome{
		delta:   15,
		reasons: []string{"Equipped for the required special handling"},
	}
}

// efficiencyRule rewards trucks that would run in their economical band.
// It keys off whichever dimension is tighter.
func efficiencyRule(in ruleInput) ruleOutcome {
	peak := in.weightPct
	if in.volumePct > peak {
		peak = in.volumePct
	}

	switch {
	case peak >= 60 && peak <= 80:
		return ruleOutcome{
			delta:   10,
			reasons: []string{fmt.Sprintf("Ideal capacity utilization (%.0f%%), cost-effective choice", peak)},
		}
	case peak >= 40 && peak <= 90:
		return ruleOutcome{delta: 7}
	case peak >= 20 && peak <= 95:
		return ruleOutcome{delta: 4}
	case peak < 20:
		return ruleOutcome{
			delta:   1,
			reasons: []string{fmt.Sprintf("Truck is likely oversized for this load (%.0f%% utilization)", peak)},
		}
	default:
		return ruleOutcome{delta: 1}
	}
}

// smallerTruckAdvisory suggests downsizing when the load sits far below the
// vehicle class. It never changes the score.
func smallerTruckAdvisory(in ruleInput) ruleOutcome {
	if in.req.EstimatedWeightTons < in.profile.MinViableCapacityTons &&
		in.truck.PayloadCapacityTons > in.profile.MinViableCapacityTons*2 {
		return ruleOutcome{
			warnings: []string{"Consider a smaller truck for this load"},
		}
	}
	return ruleOutcome{}
}
