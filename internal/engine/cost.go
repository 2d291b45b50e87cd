package engine

import (
	"math"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

const (
	wastageFactor   = 1.1
	laborUnitAreaM2 = 10
)

// perimeterPriced materials are quantified against the sealant run, not the area.
var perimeterPriced = map[string]bool{
	"acoustic sealant":       true,
	"perimeter mastic":       true,
	"acoustic flanking tape": true,
}

// wastagePriced materials are boards and insulation: cut losses add 10% to
// the covered area before rounding up to whole units.
var wastagePriced = map[string]bool{
	"acoustic plasterboard":              true,
	"high-density acoustic plasterboard": true,
	"mass loaded vinyl":                  true,
	"mineral wool insulation":            true,
	"acoustic foam panel":                true,
}

// Cost prices a treatment against the real geometry of one surface.
// Monetary values are accumulated at full precision; rounding to two
// decimals happens only at display time via CostBreakdown rounding.
func (e *Engine) Cost(treatmentKey string, d domain.RoomDimensions, surface string, blockages []domain.Blockage) (domain.CostBreakdown, error) {
	if err := ValidateDimensions(d); err != nil {
		return domain.CostBreakdown{}, err
	}
	t, err := e.catalog.Get(treatmentKey)
	if err != nil {
		return domain.CostBreakdown{}, err
	}

	area, err := SurfaceArea(d, surface, blockages)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	perimeter, err := SurfacePerimeter(d, surface)
	if err != nil {
		return domain.CostBreakdown{}, err
	}

	breakdown := domain.CostBreakdown{
		TreatmentKey: treatmentKey,
		Surface:      surface,
		Area:         area,
		Perimeter:    perimeter,
	}

	var total float64
	for _, m := range t.Materials {
		var qty int
		switch {
		case perimeterPriced[m.Name]:
			qty = int(math.Ceil(perimeter / m.Coverage))
		case wastagePriced[m.Name]:
			qty = int(math.Ceil(area * wastageFactor / m.Coverage))
		default:
			qty = int(math.Ceil(area / m.Coverage))
		}
		line := domain.CostLineItem{
			Material: m.Name,
			Quantity: qty,
			Unit:     m.Unit,
			UnitCost: m.UnitCost,
			LineCost: float64(qty) * m.UnitCost,
		}
		total += line.LineCost
		breakdown.LineItems = append(breakdown.LineItems, line)
	}

	rate := t.LaborRate
	if rate <= 0 {
		rate = e.laborRate
	}
	laborUnits := int(math.Ceil(area / laborUnitAreaM2))
	breakdown.Labor = domain.CostLineItem{
		Material: "labor",
		Quantity: laborUnits,
		Unit:     "unit",
		UnitCost: rate,
		LineCost: float64(laborUnits) * rate,
	}
	total += breakdown.Labor.LineCost

	breakdown.TotalCost = total
	return breakdown, nil
}

// RoundBreakdown returns a display copy with all monetary values rounded to
// two decimals. The original keeps full precision.
func RoundBreakdown(b domain.CostBreakdown) domain.CostBreakdown {
	out := b
	out.LineItems = make([]domain.CostLineItem, len(b.LineItems))
	for i, li := range b.LineItems {
		li.UnitCost = round2(li.UnitCost)
		li.LineCost = round2(li.LineCost)
		out.LineItems[i] = li
	}
	out.Labor.UnitCost = round2(b.Labor.UnitCost)
	out.Labor.LineCost = round2(b.Labor.LineCost)
	out.TotalCost = round2(b.TotalCost)
	out.Area = round2(b.Area)
	out.Perimeter = round2(b.Perimeter)
	return out
}

// RoundEstimate applies display rounding to every breakdown of an estimate.
func RoundEstimate(e domain.Estimate) domain.Estimate {
	out := e
	out.Costs = make([]domain.CostBreakdown, len(e.Costs))
	for i, c := range e.Costs {
		out.Costs[i] = RoundBreakdown(c)
	}
	out.TotalCost = round2(e.TotalCost)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
