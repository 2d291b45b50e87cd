package engine

import (
	"fmt"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

// buildReasoning produces the ordered, deterministic explanation attached to
// a scored solution: noise-type fit, intensity sizing, measured performance,
// installation facts, then any catalog notes. Pure function of its inputs.
func buildReasoning(t domain.Treatment, p domain.NoiseProfile) []string {
	out := make([]string, 0, 4+len(t.Notes))
	out = append(out, typeReason(t, p.Type))
	out = append(out, intensityReason(p.Intensity))
	out = append(out, fmt.Sprintf("Delivers %.0f dB reduction (STC %d) across %.0fHz-%.0fHz.",
		t.SoundReductionDB, t.STCRating, t.FrequencyMinHz, t.FrequencyMaxHz))
	out = append(out, fmt.Sprintf("Installation around %s; %s maintenance.",
		formatDays(t.InstallationDays), t.MaintenanceLevel))
	out = append(out, t.Notes...)
	return out
}

func typeReason(t domain.Treatment, nt domain.NoiseType) string {
	switch nt {
	case domain.NoiseMusic:
		return fmt.Sprintf("Optimized for musical frequencies (%.0fHz-%.0fHz).", t.FrequencyMinHz, t.FrequencyMaxHz)
	case domain.NoiseSpeech:
		return "Tuned to the mid-range band where voices carry."
	case domain.NoiseTV:
		return "Covers the broad mid-range spectrum of television audio."
	case domain.NoiseTraffic:
		return "Targets the low-frequency rumble of road traffic."
	case domain.NoiseAircraft:
		return "Rated for high-level broadband aircraft noise."
	case domain.NoiseFootsteps:
		return "Impact-rated construction for footstep and structure-borne noise."
	case domain.NoiseMachinery:
		return "Built for sustained machinery noise with heavy low-frequency content."
	default:
		return "General-purpose build against airborne noise."
	}
}

func intensityReason(intensity int) string {
	switch {
	case intensity >= 4:
		return fmt.Sprintf("Sized for severe reported noise (level %d of 5).", intensity)
	case intensity == 3:
		return fmt.Sprintf("Sized for moderate reported noise (level %d of 5).", intensity)
	default:
		return fmt.Sprintf("Sized for light reported noise (level %d of 5).", intensity)
	}
}

func formatDays(d float64) string {
	if d == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%g days", d)
}
