package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Weights defines the share of each scoring component in the overall score.
// They must sum to 1.
type Weights struct {
	FrequencyMatch    float64 `json:"frequency_match"`
	SoundReduction    float64 `json:"sound_reduction"`
	ImpactResistance  float64 `json:"impact_resistance"`
	AirborneReduction float64 `json:"airborne_reduction"`
}

// DefaultWeights returns the production weighting.
func DefaultWeights() Weights {
	return Weights{
		FrequencyMatch:    0.35,
		SoundReduction:    0.35,
		ImpactResistance:  0.15,
		AirborneReduction: 0.15,
	}
}

func (w Weights) sum() float64 {
	return w.FrequencyMatch + w.SoundReduction + w.ImpactResistance + w.AirborneReduction
}

// Validate checks that weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.FrequencyMatch, w.SoundReduction, w.ImpactResistance, w.AirborneReduction} {
		if v < 0 {
			return fmt.Errorf("negative score weight: %f", v)
		}
	}
	if math.Abs(w.sum()-1.0) > 0.001 {
		return fmt.Errorf("score weights sum to %.4f, must sum to 1.0", w.sum())
	}
	return nil
}

// LoadWeightsFromFile loads weights from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return DefaultWeights(), fmt.Errorf("validate weights: %w", err)
	}
	return w, nil
}
