package engine

import (
	"reflect"
	"testing"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

func TestRecommend_InsufficientInput(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	room := RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.5}}

	rec := e.Recommend(domain.NoiseProfile{Intensity: 3}, room)
	if rec.Status != "insufficient_input" {
		t.Fatalf("status = %q, want insufficient_input", rec.Status)
	}
	if len(rec.MissingFields) != 2 {
		t.Errorf("missing fields = %v, want [type direction]", rec.MissingFields)
	}
}

func TestRecommend_MusicDirectWallPrefersPremium(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	p := domain.NoiseProfile{Type: domain.NoiseMusic, Intensity: 5, Direction: []domain.Direction{domain.DirNorth}}
	room := RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.5}}

	rec := e.Recommend(p, room)
	if rec.Status != "ok" {
		t.Fatalf("status = %q, want ok", rec.Status)
	}
	if len(rec.Walls) != 1 {
		t.Fatalf("walls = %d, want 1", len(rec.Walls))
	}

	wall := rec.Walls[0]
	if wall.Surface != "north" {
		t.Errorf("surface = %q, want north", wall.Surface)
	}
	if wall.Tier != domain.TierPremium {
		t.Errorf("tier = %q, want premium (direct-path bias)", wall.Tier)
	}
	if wall.Score.Overall < 0 || wall.Score.Overall > 1 {
		t.Errorf("overall = %g, want within [0,1]", wall.Score.Overall)
	}
	if len(wall.Reasoning) < 3 {
		t.Errorf("reasoning has %d entries, want >= 3", len(wall.Reasoning))
	}

	// Intensity 5 indexes the strongest premium candidate.
	if wall.TreatmentKey != "PremiumWallPro25" {
		t.Errorf("treatment = %q, want PremiumWallPro25", wall.TreatmentKey)
	}
}

func TestRecommend_FloorWithoutCatalogEntriesIsCustomAssessment(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	p := domain.NoiseProfile{Type: domain.NoiseFootsteps, Intensity: 4, Direction: []domain.Direction{domain.DirBelow}}
	room := RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.5}}

	rec := e.Recommend(p, room)
	if rec.Status != "ok" {
		t.Fatalf("status = %q, want ok", rec.Status)
	}
	if rec.Floor == nil {
		t.Fatal("floor result is nil, want custom assessment")
	}
	if rec.Floor.Solution != nil {
		t.Errorf("floor solution = %+v, want nil", rec.Floor.Solution)
	}
	if rec.Floor.CustomAssessment == nil || rec.Floor.CustomAssessment.Contact == "" {
		t.Error("floor custom assessment must carry contact info")
	}
}

func TestRecommend_CeilingSelectedWhenAbove(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	p := domain.NoiseProfile{Type: domain.NoiseFootsteps, Intensity: 4, Direction: []domain.Direction{domain.DirAbove}}
	room := RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.6}}

	rec := e.Recommend(p, room)
	if rec.Ceiling == nil {
		t.Fatal("ceiling is nil, want a solution")
	}
	tr := mustGet(t, e, rec.Ceiling.TreatmentKey)
	if tr.SurfaceClass != domain.SurfaceCeiling {
		t.Errorf("selected %q is not a ceiling treatment", rec.Ceiling.TreatmentKey)
	}
	if len(rec.Walls) != 0 {
		t.Errorf("walls = %v, want none for purely overhead noise", rec.Walls)
	}
}

func TestRecommend_CeilingHeadroomFiltersThickBuilds(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	p := domain.NoiseProfile{Type: domain.NoiseFootsteps, Intensity: 5, Direction: []domain.Direction{domain.DirAbove}}
	// 2.1m ceiling: premium builds (>= 0.14m) would drop below 2.0m headroom.
	room := RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.1}}

	rec := e.Recommend(p, room)
	if rec.Ceiling == nil {
		t.Fatal("ceiling is nil, want a solution")
	}
	tr := mustGet(t, e, rec.Ceiling.TreatmentKey)
	if room.Dimensions.Height-tr.ThicknessM < minCeilingHeadroomM {
		t.Errorf("selected %q leaves %.2fm headroom, want >= %.1fm",
			tr.Key, room.Dimensions.Height-tr.ThicknessM, minCeilingHeadroomM)
	}
}

func TestRecommend_ExplicitSurfacesOverrideDerivedWalls(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	p := domain.NoiseProfile{Type: domain.NoiseTraffic, Intensity: 3, Direction: []domain.Direction{domain.DirNorth}}
	room := RoomContext{
		Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.5},
		Surfaces:   []string{"north", "east"},
	}

	rec := e.Recommend(p, room)
	if len(rec.Walls) != 2 {
		t.Fatalf("walls = %d, want 2", len(rec.Walls))
	}
	if rec.Walls[0].Surface != "north" || rec.Walls[1].Surface != "east" {
		t.Errorf("wall order = %v, want [north east]", []string{rec.Walls[0].Surface, rec.Walls[1].Surface})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	p := domain.NoiseProfile{Type: domain.NoiseMachinery, Intensity: 4,
		Direction: []domain.Direction{domain.DirNorth, domain.DirAbove}}
	room := RoomContext{Dimensions: domain.RoomDimensions{Length: 6, Width: 4, Height: 2.7}}

	a := e.Recommend(p, room)
	b := e.Recommend(p, room)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different recommendations")
	}
}

func TestIntensityIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		intensity, n, want int
	}{
		{1, 2, 0},
		{3, 2, 0},
		{4, 2, 1},
		{5, 2, 1},
		{5, 1, 0},
		{5, 3, 1},
	}
	for _, c := range cases {
		if got := intensityIndex(c.intensity, c.n); got != c.want {
			t.Errorf("intensityIndex(%d, %d) = %d, want %d", c.intensity, c.n, got, c.want)
		}
	}
}
