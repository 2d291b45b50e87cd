package engine

import (
	"math"

	"github.com/mkravtsov/soundproof-estimator/internal/catalog"
	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

// Engine scores treatments against noise profiles, assembles per-surface
// recommendations, and prices selected treatments against real geometry.
// It is safe for repeated synchronous use; the catalog is read-only.
type Engine struct {
	catalog   *catalog.Catalog
	weights   Weights
	laborRate float64
}

// DefaultLaborRate is charged per labor unit when a treatment carries no rate.
const DefaultLaborRate = 150.0

func NewEngine(cat *catalog.Catalog, w Weights, laborRate float64) *Engine {
	if laborRate <= 0 {
		laborRate = DefaultLaborRate
	}
	return &Engine{catalog: cat, weights: w, laborRate: laborRate}
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Frequency bands used for the frequency-match component.
var bands = [3][2]float64{
	{20, 250},     // low
	{250, 2000},   // mid
	{2000, 20000}, // high
}

const (
	ambientTargetDB  = 35
	reductionEpsilon = 1e-6
	airborneCapDB    = 70
)

// Score computes the effectiveness of one treatment against one profile.
// Pure and deterministic: identical inputs yield identical output.
func (e *Engine) Score(t domain.Treatment, p domain.NoiseProfile) domain.Score {
	tr := traitsFor(p.Type)

	freq := frequencyMatch(t, tr)

	required := tr.TypicalDB*(float64(p.Intensity)/3) - ambientTargetDB
	if required < reductionEpsilon {
		required = reductionEpsilon
	}
	reduction := clamp01(t.SoundReductionDB / required)

	impact := 1.0
	if tr.Impact {
		impact = clamp01(t.ImpactResistance * tr.ImpactWeight)
	}

	airborne := 1.0
	if tr.Airborne {
		airborne = clamp01((t.SoundReductionDB / airborneCapDB) * tr.AirborneWeight)
	}

	overall := clamp01(e.weights.FrequencyMatch*freq +
		e.weights.SoundReduction*reduction +
		e.weights.ImpactResistance*impact +
		e.weights.AirborneReduction*airborne)

	return domain.Score{
		Overall:           overall,
		FrequencyMatch:    freq,
		SoundReduction:    reduction,
		ImpactResistance:  impact,
		AirborneReduction: airborne,
	}
}

// frequencyMatch weighs the overlap of the treatment's effective range with
// the noise's range inside each band by the noise type's band weights.
func frequencyMatch(t domain.Treatment, tr noiseTraits) float64 {
	var total float64
	for i, band := range bands {
		lo := math.Max(math.Max(t.FrequencyMinHz, tr.FreqMinHz), band[0])
		hi := math.Min(math.Min(t.FrequencyMaxHz, tr.FreqMaxHz), band[1])
		overlap := hi - lo
		if overlap < 0 {
			overlap = 0
		}
		width := band[1] - band[0]
		total += tr.BandWeights[i] * clamp01(math.Min(overlap, width)/width)
	}
	return clamp01(total)
}

// scoreCycle memoizes scores for the lifetime of one recommendation cycle,
// keyed by treatment key and profile fingerprint. A fresh cycle is created
// per Recommend call, so dimension, profile, or catalog changes can never be
// served stale results.
type scoreCycle struct {
	engine *Engine
	fp     string
	cache  map[string]domain.Score
}

func (e *Engine) newCycle(p domain.NoiseProfile) *scoreCycle {
	return &scoreCycle{
		engine: e,
		fp:     profileFingerprint(p),
		cache:  make(map[string]domain.Score),
	}
}

func (c *scoreCycle) score(t domain.Treatment, p domain.NoiseProfile) domain.Score {
	key := t.Key + "\x00" + c.fp
	if s, ok := c.cache[key]; ok {
		return s
	}
	s := c.engine.Score(t, p)
	c.cache[key] = s
	return s
}

// betterOf breaks ties between two equally scored treatments: higher sound
// reduction first, then the lexicographically smaller key.
func betterOf(a, b domain.Treatment, sa, sb domain.Score) domain.Treatment {
	if sa.Overall != sb.Overall {
		if sa.Overall > sb.Overall {
			return a
		}
		return b
	}
	if a.SoundReductionDB != b.SoundReductionDB {
		if a.SoundReductionDB > b.SoundReductionDB {
			return a
		}
		return b
	}
	if a.Key < b.Key {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
