package engine

import (
	"errors"
	"testing"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestNormalizeProfile_RequiredFields(t *testing.T) {
	t.Parallel()

	_, err := NormalizeProfile(RawNoiseInput{Intensity: fptr(3)})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "type" {
		t.Errorf("missing type: got %v, want ValidationError on type", err)
	}

	_, err = NormalizeProfile(RawNoiseInput{Type: "music"})
	if !errors.As(err, &ve) || ve.Field != "intensity" {
		t.Errorf("missing intensity: got %v, want ValidationError on intensity", err)
	}
}

func TestNormalizeProfile_IntensityClamping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    float64
		scale string
		want  int
	}{
		{3, "", 3},
		{4.7, "", 5},
		{0.6, "", 1},
		{5.4, "1-5", 5},
		{8, "0-10", 4},
		{10, "0-10", 5},
		{0, "0-10", 1},
	}
	for _, c := range cases {
		p, err := NormalizeProfile(RawNoiseInput{Type: "music", Intensity: fptr(c.in), Scale: c.scale})
		if err != nil {
			t.Fatalf("intensity %g scale %q: %v", c.in, c.scale, err)
		}
		if p.Intensity != c.want {
			t.Errorf("intensity %g scale %q = %d, want %d", c.in, c.scale, p.Intensity, c.want)
		}
	}
}

func TestNormalizeProfile_RejectsFarOutOfRange(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, 7, 42} {
		if _, err := NormalizeProfile(RawNoiseInput{Type: "music", Intensity: fptr(v)}); err == nil {
			t.Errorf("intensity %g on 1-5 scale should be rejected", v)
		}
	}
	if _, err := NormalizeProfile(RawNoiseInput{Type: "music", Intensity: fptr(11), Scale: "0-10"}); err == nil {
		t.Error("intensity 11 on 0-10 scale should be rejected")
	}
	if _, err := NormalizeProfile(RawNoiseInput{Type: "music", Intensity: fptr(3), Scale: "percent"}); err == nil {
		t.Error("unknown scale should be rejected")
	}
}

func TestNormalizeProfile_DefaultsAndCasing(t *testing.T) {
	t.Parallel()

	p, err := NormalizeProfile(RawNoiseInput{
		Type:      "  Music ",
		Intensity: fptr(4),
		Direction: []string{"North", " ABOVE "},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Type != domain.NoiseMusic {
		t.Errorf("type = %q, want music", p.Type)
	}
	if len(p.Direction) != 2 || p.Direction[0] != domain.DirNorth || p.Direction[1] != domain.DirAbove {
		t.Errorf("direction = %v, want [north above]", p.Direction)
	}
	if len(p.TimeOfDay) != 0 {
		t.Errorf("time of day should default empty, got %v", p.TimeOfDay)
	}
}

func TestProfileFingerprint_StableUnderDirectionOrder(t *testing.T) {
	t.Parallel()

	a := domain.NoiseProfile{Type: domain.NoiseMusic, Intensity: 4,
		Direction: []domain.Direction{domain.DirNorth, domain.DirAbove}}
	b := domain.NoiseProfile{Type: domain.NoiseMusic, Intensity: 4,
		Direction: []domain.Direction{domain.DirAbove, domain.DirNorth}}

	if profileFingerprint(a) != profileFingerprint(b) {
		t.Error("fingerprint should not depend on direction order")
	}

	c := b
	c.Intensity = 5
	if profileFingerprint(b) == profileFingerprint(c) {
		t.Error("fingerprint should change with intensity")
	}
}
