package engine

import (
	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

// RoomContext carries the geometry and, optionally, an explicit list of
// noise-exposed wall identifiers. When Surfaces is empty the exposed walls
// are derived from the profile's direction values.
type RoomContext struct {
	Dimensions domain.RoomDimensions `json:"dimensions"`
	Surfaces   []string              `json:"surfaces,omitempty"`
	Blockages  []domain.Blockage     `json:"blockages,omitempty"`
	// Priority overrides the derived priority band: "high", "medium" or "low".
	Priority string `json:"priority,omitempty"`
}

// Headroom below which a ceiling build-down is not offered.
const minCeilingHeadroomM = 2.0

type tierWeights struct {
	premium  float64
	standard float64
}

var (
	directWeights   = tierWeights{premium: 0.7, standard: 0.3}
	highWeights     = tierWeights{premium: 0.6, standard: 0.4}
	mediumWeights   = tierWeights{premium: 0.5, standard: 0.5}
	lowWeights      = tierWeights{premium: 0.35, standard: 0.65}
	floorAssessment = domain.CustomAssessment{
		Message: "Floor treatment requires a custom on-site assessment of the existing structure.",
		Contact: "Contact our estimation team at quotes@soundproof-estimator.example to book a survey.",
	}
)

// overallPriority folds the noise-type priority table and the reported
// intensity into a high/medium/low band that drives tier selection for
// surfaces not directly on the noise path.
func overallPriority(p domain.NoiseProfile) tierWeights {
	tr := traitsFor(p.Type)
	combined := (float64(tr.Priority) + float64(p.Intensity)) / 2
	switch {
	case combined >= 4.5:
		return highWeights
	case combined >= 3.0:
		return mediumWeights
	default:
		return lowWeights
	}
}

// intensityIndex maps intensity 1–5 onto the candidates of one tier, ordered
// weakest to strongest. Intentionally a deterministic index rather than
// argmax: tier progression follows reported severity, and the attached score
// stays independently reproducible.
func intensityIndex(intensity, n int) int {
	idx := int(float64(intensity) / 3.34)
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Recommend selects a treatment per exposed surface, with an explainable
// score attached to each. Missing type or direction yields an
// "insufficient input" result rather than an error: the caller is expected
// to collect more input and retry.
func (e *Engine) Recommend(p domain.NoiseProfile, room RoomContext) domain.Recommendation {
	var missing []string
	if p.Type == "" {
		missing = append(missing, "type")
	}
	if len(p.Direction) == 0 {
		missing = append(missing, "direction")
	}
	if len(missing) > 0 {
		return domain.Recommendation{Status: "insufficient_input", MissingFields: missing}
	}

	cycle := e.newCycle(p)
	exp := Exposure(p)

	walls := room.Surfaces
	if len(walls) == 0 {
		walls = exp.Walls
	}

	direct := make(map[string]bool, len(p.Direction))
	for _, d := range p.Direction {
		direct[string(d)] = true
	}

	contextual := overallPriority(p)
	switch room.Priority {
	case "high":
		contextual = highWeights
	case "medium":
		contextual = mediumWeights
	case "low":
		contextual = lowWeights
	}

	rec := domain.Recommendation{Status: "ok"}
	for _, wall := range walls {
		w := contextual
		if direct[wall] {
			w = directWeights
		}
		if sol, ok := e.selectFor(cycle, p, domain.SurfaceWall, wall, w, room); ok {
			rec.Walls = append(rec.Walls, sol)
		}
	}

	if exp.Ceiling {
		if sol, ok := e.selectFor(cycle, p, domain.SurfaceCeiling, "ceiling", contextual, room); ok {
			rec.Ceiling = &sol
		}
	}

	if exp.Floor {
		if sol, ok := e.selectFor(cycle, p, domain.SurfaceFloor, "floor", contextual, room); ok {
			rec.Floor = &domain.FloorResult{Solution: &sol}
		} else {
			assessment := floorAssessment
			rec.Floor = &domain.FloorResult{CustomAssessment: &assessment}
		}
	}

	return rec
}

// selectFor picks the tier by comparing the weighted scores of each tier's
// intensity-indexed candidate, then returns that candidate scored and
// explained. ok is false when the catalog has no candidates for the class.
func (e *Engine) selectFor(cycle *scoreCycle, p domain.NoiseProfile, class domain.SurfaceClass, surface string, w tierWeights, room RoomContext) (domain.ScoredSolution, bool) {
	std := e.catalog.ByClassTier(class, domain.TierStandard)
	prem := e.catalog.ByClassTier(class, domain.TierPremium)
	if len(std) == 0 && len(prem) == 0 {
		return domain.ScoredSolution{}, false
	}

	// Headroom filtering; if nothing at all survives, a tight recommendation
	// beats none and the unfiltered lists are kept.
	fs := e.feasible(std, class, room)
	fp := e.feasible(prem, class, room)
	if len(fs) > 0 || len(fp) > 0 {
		std, prem = fs, fp
	}

	var chosen domain.Treatment
	switch {
	case len(prem) == 0:
		chosen = std[intensityIndex(p.Intensity, len(std))]
	case len(std) == 0:
		chosen = prem[intensityIndex(p.Intensity, len(prem))]
	default:
		sc := std[intensityIndex(p.Intensity, len(std))]
		pc := prem[intensityIndex(p.Intensity, len(prem))]
		ss := cycle.score(sc, p)
		ps := cycle.score(pc, p)
		switch {
		case w.premium*ps.Overall > w.standard*ss.Overall:
			chosen = pc
		case w.premium*ps.Overall < w.standard*ss.Overall:
			chosen = sc
		default:
			chosen = betterOf(pc, sc, ps, ss)
		}
	}

	score := cycle.score(chosen, p)
	return domain.ScoredSolution{
		TreatmentKey: chosen.Key,
		Surface:      surface,
		Tier:         chosen.Tier,
		Score:        score,
		Reasoning:    buildReasoning(chosen, p),
	}, true
}

// feasible drops ceiling candidates whose build thickness would leave less
// than the minimum headroom.
func (e *Engine) feasible(list []domain.Treatment, class domain.SurfaceClass, room RoomContext) []domain.Treatment {
	if class != domain.SurfaceCeiling || room.Dimensions.Height <= 0 {
		return list
	}
	var out []domain.Treatment
	for _, t := range list {
		if room.Dimensions.Height-t.ThicknessM >= minCeilingHeadroomM {
			out = append(out, t)
		}
	}
	return out
}
