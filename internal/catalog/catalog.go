// Package catalog holds the treatment catalog: a single keyed mapping from
// treatment key to Treatment, immutable after load.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

type Catalog struct {
	treatments map[string]domain.Treatment
	version    string
}

// New builds a catalog from a treatment list. Duplicate keys are rejected.
func New(version string, items []domain.Treatment) (*Catalog, error) {
	m := make(map[string]domain.Treatment, len(items))
	for _, t := range items {
		if t.Key == "" {
			return nil, fmt.Errorf("treatment with empty key (%q)", t.Name)
		}
		if _, dup := m[t.Key]; dup {
			return nil, fmt.Errorf("duplicate treatment key %q", t.Key)
		}
		m[t.Key] = t
	}
	c := &Catalog{treatments: m, version: version}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Version() string { return c.version }

func (c *Catalog) Len() int { return len(c.treatments) }

// Get returns the treatment for key, or a LookupError if the key is unknown.
func (c *Catalog) Get(key string) (domain.Treatment, error) {
	t, ok := c.treatments[key]
	if !ok {
		return domain.Treatment{}, &domain.LookupError{Kind: "treatment", Key: key}
	}
	return t, nil
}

// All returns every treatment sorted by key.
func (c *Catalog) All() []domain.Treatment {
	out := make([]domain.Treatment, 0, len(c.treatments))
	for _, t := range c.treatments {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ByClassTier returns the candidates for one surface class and tier, ordered
// weakest to strongest by sound reduction so intensity can index into them.
func (c *Catalog) ByClassTier(class domain.SurfaceClass, tier domain.Tier) []domain.Treatment {
	var out []domain.Treatment
	for _, t := range c.treatments {
		if t.SurfaceClass == class && t.Tier == tier {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SoundReductionDB != out[j].SoundReductionDB {
			return out[i].SoundReductionDB < out[j].SoundReductionDB
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// HasClass reports whether any treatment covers the surface class.
func (c *Catalog) HasClass(class domain.SurfaceClass) bool {
	for _, t := range c.treatments {
		if t.SurfaceClass == class {
			return true
		}
	}
	return false
}

const costTolerance = 0.005

// Validate runs the self-consistency checks: total unit cost must equal the
// recomputed material sum, frequency ranges must be sane, and enums known.
func (c *Catalog) Validate() error {
	for key, t := range c.treatments {
		switch t.SurfaceClass {
		case domain.SurfaceWall, domain.SurfaceCeiling, domain.SurfaceFloor:
		default:
			return fmt.Errorf("treatment %q: unknown surface class %q", key, t.SurfaceClass)
		}
		switch t.Tier {
		case domain.TierStandard, domain.TierPremium:
		default:
			return fmt.Errorf("treatment %q: unknown tier %q", key, t.Tier)
		}
		if t.FrequencyMinHz <= 0 || t.FrequencyMaxHz <= t.FrequencyMinHz {
			return fmt.Errorf("treatment %q: bad frequency range [%g, %g]", key, t.FrequencyMinHz, t.FrequencyMaxHz)
		}
		if t.SoundReductionDB <= 0 {
			return fmt.Errorf("treatment %q: sound reduction must be positive", key)
		}
		if len(t.Materials) == 0 {
			return fmt.Errorf("treatment %q: no materials", key)
		}
		var sum float64
		for _, m := range t.Materials {
			if m.Coverage <= 0 {
				return fmt.Errorf("treatment %q: material %q has non-positive coverage", key, m.Name)
			}
			if m.UnitCost < 0 {
				return fmt.Errorf("treatment %q: material %q has negative cost", key, m.Name)
			}
			sum += m.UnitCost
		}
		if math.Abs(sum-t.TotalUnitCost) > costTolerance {
			return fmt.Errorf("treatment %q: total unit cost %.2f does not match material sum %.2f",
				key, t.TotalUnitCost, sum)
		}
	}
	return nil
}
