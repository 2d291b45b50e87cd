package engine

import (
	"fmt"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

// Estimate runs a full cycle: recommend a treatment per exposed surface,
// then price each selected treatment against the room geometry. ID and
// CreatedAt are assigned by the store on save.
func (e *Engine) Estimate(p domain.NoiseProfile, room RoomContext) (domain.Estimate, error) {
	est := domain.Estimate{
		Room:      room.Dimensions,
		Profile:   p,
		Blockages: room.Blockages,
	}

	est.Recommendation = e.Recommend(p, room)
	if est.Recommendation.Status != "ok" {
		return est, nil
	}

	price := func(sol *domain.ScoredSolution) error {
		if sol == nil {
			return nil
		}
		b, err := e.Cost(sol.TreatmentKey, room.Dimensions, sol.Surface, room.Blockages)
		if err != nil {
			return fmt.Errorf("cost %s on %s: %w", sol.TreatmentKey, sol.Surface, err)
		}
		est.Costs = append(est.Costs, b)
		est.TotalCost += b.TotalCost
		return nil
	}

	for i := range est.Recommendation.Walls {
		if err := price(&est.Recommendation.Walls[i]); err != nil {
			return domain.Estimate{}, err
		}
	}
	if err := price(est.Recommendation.Ceiling); err != nil {
		return domain.Estimate{}, err
	}
	if est.Recommendation.Floor != nil {
		if err := price(est.Recommendation.Floor.Solution); err != nil {
			return domain.Estimate{}, err
		}
	}

	return est, nil
}
