package recommendation

import "sort"

// Engine ranks candidate truck types for a material requirement. It holds no
// mutable state and performs no I/O: identical inputs always produce
// identical outputs, and concurrent use needs no locking.
type Engine struct {
	profiles ProfileTable
}

// NewEngine builds an engine around the given profile table. A nil table
// falls back to the built-in defaults.
func NewEngine(profiles ProfileTable) *Engine {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return &Engine{profiles: profiles}
}

// Recommend scores every candidate independently and returns them sorted by
// score descending. Ties keep their input order. Disqualified trucks are
// returned with score 0, never dropped; an empty candidate list yields an
// empty result.
func (e *Engine) Recommend(req MaterialRequirement, trucks []TruckType) []TruckRecommendation {
	recs := make([]TruckRecommendation, 0, len(trucks))
	for _, truck := range trucks {
		recs = append(recs, e.scoreTruck(req, truck))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

func (e *Engine) scoreTruck(req MaterialRequirement, truck TruckType) TruckRecommendation {
	profile := e.profiles.Resolve(req.MaterialType)

	volume := req.EstimatedWeightTons * profile.VolumeDensityMultiplier
	if req.EstimatedVolumeM3 != nil {
		volume = *req.EstimatedVolumeM3
	}

	in := ruleInput{
		req:       req,
		truck:     truck,
		profile:   profile,
		weightPct: req.EstimatedWeightTons / truck.PayloadCapacityTons * 100,
		volumePct: volume / truck.VolumeCapacityM3 * 100,
	}

	score := 0
	eliminated := false
	reasons := []string{}
	warnings := []string{}

	for _, rule := range scoringRules() {
		out := rule(in)
		reasons = append(reasons, out.reasons...)
		warnings = append(warnings, out.warnings...)

		if out.reset {
			score = 0
			eliminated = true
			continue
		}
		if eliminated {
			// A hard-gated truck stays at zero no matter what the
			// remaining rules would have awarded.
			continue
		}
		score += out.delta
		if score < 0 {
			score = 0
		}
	}
	if score > 100 {
		score = 100
	}

	return TruckRecommendation{
		TruckType:     truck,
		Score:         score,
		Reasons:       reasons,
		Warnings:      warnings,
		IsRecommended: score >= 70 && len(warnings) == 0,
		CapacityUtilization: CapacityUtilization{
			WeightPct: in.weightPct,
			VolumePct: in.volumePct,
		},
	}
}
