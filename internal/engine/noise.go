package engine

import (
	"sort"
	"strings"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

// noiseTraits describes the acoustic character of one noise type: how loud it
// typically is, which frequencies it occupies, whether it has impact or
// airborne components, and how much energy falls into the low/mid/high bands.
type noiseTraits struct {
	TypicalDB      float64
	FreqMinHz      float64
	FreqMaxHz      float64
	Impact         bool
	Airborne       bool
	ImpactWeight   float64
	AirborneWeight float64
	// BandWeights are low/mid/high shares and sum to 1.
	BandWeights [3]float64
	Priority    int
}

var noiseTable = map[domain.NoiseType]noiseTraits{
	domain.NoiseSpeech: {
		TypicalDB: 60, FreqMinHz: 100, FreqMaxHz: 8000,
		Airborne: true, AirborneWeight: 1.0,
		BandWeights: [3]float64{0.1, 0.7, 0.2},
		Priority:    3,
	},
	domain.NoiseMusic: {
		TypicalDB: 85, FreqMinHz: 40, FreqMaxHz: 15000,
		Airborne: true, AirborneWeight: 1.0, Impact: true, ImpactWeight: 0.6,
		BandWeights: [3]float64{0.45, 0.35, 0.2},
		Priority:    5,
	},
	domain.NoiseTV: {
		TypicalDB: 65, FreqMinHz: 80, FreqMaxHz: 10000,
		Airborne: true, AirborneWeight: 1.0,
		BandWeights: [3]float64{0.2, 0.6, 0.2},
		Priority:    3,
	},
	domain.NoiseTraffic: {
		TypicalDB: 75, FreqMinHz: 50, FreqMaxHz: 3000,
		Airborne: true, AirborneWeight: 0.9, Impact: true, ImpactWeight: 0.4,
		BandWeights: [3]float64{0.5, 0.4, 0.1},
		Priority:    4,
	},
	domain.NoiseAircraft: {
		TypicalDB: 90, FreqMinHz: 60, FreqMaxHz: 6000,
		Airborne: true, AirborneWeight: 1.0,
		BandWeights: [3]float64{0.4, 0.45, 0.15},
		Priority:    5,
	},
	domain.NoiseFootsteps: {
		TypicalDB: 70, FreqMinHz: 40, FreqMaxHz: 2000,
		Impact: true, ImpactWeight: 1.0, Airborne: true, AirborneWeight: 0.3,
		BandWeights: [3]float64{0.6, 0.35, 0.05},
		Priority:    4,
	},
	domain.NoiseMachinery: {
		TypicalDB: 88, FreqMinHz: 30, FreqMaxHz: 4000,
		Impact: true, ImpactWeight: 0.8, Airborne: true, AirborneWeight: 0.8,
		BandWeights: [3]float64{0.55, 0.35, 0.1},
		Priority:    5,
	},
}

// traitsFor returns the characteristics for a noise type; unknown types fall
// back to speech.
func traitsFor(t domain.NoiseType) noiseTraits {
	if tr, ok := noiseTable[t]; ok {
		return tr
	}
	return noiseTable[domain.NoiseSpeech]
}

const (
	MinIntensity = 1
	MaxIntensity = 5
)

// RawNoiseInput is the untyped form payload before normalization.
type RawNoiseInput struct {
	Type      string   `json:"type"`
	Intensity *float64 `json:"intensity"`
	// Scale names the intensity scale of the input: "1-5" (default) or "0-10".
	Scale     string   `json:"scale,omitempty"`
	TimeOfDay []string `json:"time_of_day,omitempty"`
	Direction []string `json:"direction,omitempty"`
}

// NormalizeProfile validates raw noise input and produces the canonical
// immutable NoiseProfile. Intensity is carried on a 1–5 integer scale;
// 0–10 inputs are converted at this boundary and borderline float values
// are clamped rather than rejected.
func NormalizeProfile(raw RawNoiseInput) (domain.NoiseProfile, error) {
	if strings.TrimSpace(raw.Type) == "" {
		return domain.NoiseProfile{}, &domain.ValidationError{Field: "type", Reason: "noise type is required"}
	}
	if raw.Intensity == nil {
		return domain.NoiseProfile{}, &domain.ValidationError{Field: "intensity", Reason: "intensity is required"}
	}

	v := *raw.Intensity
	switch raw.Scale {
	case "", "1-5":
		// Borderline floats (0.5..5.5) are clamped, anything further is rejected.
		if v < MinIntensity-0.5 || v > MaxIntensity+0.5 {
			return domain.NoiseProfile{}, &domain.ValidationError{
				Field: "intensity", Reason: "outside 1-5 range",
			}
		}
	case "0-10":
		if v < 0 || v > 10 {
			return domain.NoiseProfile{}, &domain.ValidationError{
				Field: "intensity", Reason: "out of range for 0-10 scale",
			}
		}
		v = v / 2
	default:
		return domain.NoiseProfile{}, &domain.ValidationError{
			Field: "scale", Reason: "unknown intensity scale " + raw.Scale,
		}
	}

	intensity := int(v + 0.5)
	if intensity < MinIntensity {
		intensity = MinIntensity
	}
	if intensity > MaxIntensity {
		intensity = MaxIntensity
	}

	dirs := make([]domain.Direction, 0, len(raw.Direction))
	for _, d := range raw.Direction {
		dirs = append(dirs, domain.Direction(strings.ToLower(strings.TrimSpace(d))))
	}

	tod := make([]string, 0, len(raw.TimeOfDay))
	for _, t := range raw.TimeOfDay {
		tod = append(tod, strings.ToLower(strings.TrimSpace(t)))
	}

	return domain.NoiseProfile{
		Type:      domain.NoiseType(strings.ToLower(strings.TrimSpace(raw.Type))),
		Intensity: intensity,
		TimeOfDay: tod,
		Direction: dirs,
	}, nil
}

// profileFingerprint serializes the scoring-relevant fields of a profile into
// a stable cache key. Directions are sorted so ordering does not split cache
// entries; scoring itself ignores direction order.
func profileFingerprint(p domain.NoiseProfile) string {
	dirs := make([]string, len(p.Direction))
	for i, d := range p.Direction {
		dirs[i] = string(d)
	}
	sort.Strings(dirs)
	var b strings.Builder
	b.WriteString(string(p.Type))
	b.WriteByte('|')
	b.WriteByte(byte('0' + p.Intensity))
	b.WriteByte('|')
	b.WriteString(strings.Join(dirs, ","))
	return b.String()
}
