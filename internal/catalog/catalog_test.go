package catalog

import (
	"errors"
	"testing"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

func TestDefaults_PassSelfConsistency(t *testing.T) {
	t.Parallel()

	cat, err := New(BuiltinVersion, Defaults())
	if err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if cat.Len() < 2 {
		t.Fatalf("default catalog has %d treatments, want >= 2", cat.Len())
	}

	// Every treatment's declared total must equal the recomputed material sum.
	for _, tr := range cat.All() {
		var sum float64
		for _, m := range tr.Materials {
			sum += m.UnitCost
		}
		if diff := sum - tr.TotalUnitCost; diff > 0.005 || diff < -0.005 {
			t.Errorf("%s: total %g, material sum %g", tr.Key, tr.TotalUnitCost, sum)
		}
	}
}

func TestNew_RejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	items := Defaults()
	items = append(items, items[0])
	if _, err := New("test", items); err == nil {
		t.Error("duplicate key should be rejected")
	}
}

func TestNew_RejectsInconsistentTotal(t *testing.T) {
	t.Parallel()

	items := Defaults()
	items[0].TotalUnitCost += 5
	if _, err := New("test", items); err == nil {
		t.Error("total/material mismatch should be rejected")
	}
}

func TestGet_UnknownKey(t *testing.T) {
	t.Parallel()

	cat, err := New(BuiltinVersion, Defaults())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	_, err = cat.Get("NoSuchSystem")
	var le *domain.LookupError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want LookupError", err)
	}
}

func TestByClassTier_OrderedByReduction(t *testing.T) {
	t.Parallel()

	cat, err := New(BuiltinVersion, Defaults())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	for _, class := range []domain.SurfaceClass{domain.SurfaceWall, domain.SurfaceCeiling} {
		for _, tier := range []domain.Tier{domain.TierStandard, domain.TierPremium} {
			list := cat.ByClassTier(class, tier)
			if len(list) == 0 {
				t.Errorf("no %s/%s candidates in defaults", class, tier)
				continue
			}
			for i := 1; i < len(list); i++ {
				if list[i].SoundReductionDB < list[i-1].SoundReductionDB {
					t.Errorf("%s/%s not ordered weakest first: %v before %v",
						class, tier, list[i-1].Key, list[i].Key)
				}
			}
		}
	}
}

func TestHasClass_FloorAbsentFromDefaults(t *testing.T) {
	t.Parallel()

	cat, err := New(BuiltinVersion, Defaults())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if cat.HasClass(domain.SurfaceFloor) {
		t.Error("defaults should not define floor treatments")
	}
	if !cat.HasClass(domain.SurfaceWall) || !cat.HasClass(domain.SurfaceCeiling) {
		t.Error("defaults must cover walls and ceilings")
	}
}
