package engine

import (
	"fmt"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

const (
	MinDimensionM = 0.5
	MaxDimensionM = 30
)

// ValidateDimensions checks every dimension against the accepted range.
// Boundary values are accepted.
func ValidateDimensions(d domain.RoomDimensions) error {
	check := func(name string, v float64) error {
		if v < MinDimensionM || v > MaxDimensionM {
			return &domain.ValidationError{
				Field:  name,
				Reason: fmt.Sprintf("%.2fm outside accepted range %.1f-%dm", v, MinDimensionM, MaxDimensionM),
			}
		}
		return nil
	}
	if err := check("length", d.Length); err != nil {
		return err
	}
	if err := check("width", d.Width); err != nil {
		return err
	}
	return check("height", d.Height)
}

// Exposure derives which surfaces face the noise: compass points map to
// walls (order preserved, duplicates dropped), above to ceiling, below to floor.
func Exposure(p domain.NoiseProfile) domain.SurfaceExposure {
	var exp domain.SurfaceExposure
	seen := make(map[domain.Direction]struct{}, len(p.Direction))
	for _, d := range p.Direction {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		switch d {
		case domain.DirAbove:
			exp.Ceiling = true
		case domain.DirBelow:
			exp.Floor = true
		case domain.DirNorth, domain.DirSouth, domain.DirEast, domain.DirWest:
			exp.Walls = append(exp.Walls, string(d))
		}
	}
	return exp
}

func blockageArea(blockages []domain.Blockage, surface string, isWall bool) float64 {
	var sum float64
	for _, b := range blockages {
		if b.Surface != surface {
			continue
		}
		if isWall {
			sum += b.Width * b.Height
		} else {
			sum += b.Width * b.Length
		}
	}
	return sum
}

// SurfaceArea returns the treatable area of one surface after subtracting its
// blockages. surface is a wall identifier ("north".."west"), "walls" for all
// four walls combined, "ceiling" or "floor".
func SurfaceArea(d domain.RoomDimensions, surface string, blockages []domain.Blockage) (float64, error) {
	var gross float64
	switch surface {
	case "walls":
		gross = 2 * d.Height * (d.Length + d.Width)
		// combined wall area subtracts every wall blockage
		var sub float64
		for _, w := range []string{"north", "south", "east", "west"} {
			sub += blockageArea(blockages, w, true)
		}
		sub += blockageArea(blockages, "walls", true)
		return netArea(surface, gross, sub)
	case "north", "south":
		gross = d.Width * d.Height
		return netArea(surface, gross, blockageArea(blockages, surface, true))
	case "east", "west":
		gross = d.Length * d.Height
		return netArea(surface, gross, blockageArea(blockages, surface, true))
	case "ceiling", "floor":
		gross = d.Length * d.Width
		return netArea(surface, gross, blockageArea(blockages, surface, false))
	default:
		return 0, &domain.LookupError{Kind: "surface", Key: surface}
	}
}

func netArea(surface string, gross, blocked float64) (float64, error) {
	net := gross - blocked
	if net <= 0 {
		return 0, &domain.GeometryError{
			Surface: surface,
			Reason:  fmt.Sprintf("blockages (%.2fm²) leave no treatable area of %.2fm²", blocked, gross),
		}
	}
	return net, nil
}

// SurfacePerimeter returns the sealant run for a surface: 2×(length+width)
// for ceiling and floor, 2×(adjacent+height) for a single wall where the
// adjacent dimension is width for north/south and length for east/west.
func SurfacePerimeter(d domain.RoomDimensions, surface string) (float64, error) {
	var p float64
	switch surface {
	case "ceiling", "floor":
		p = 2 * (d.Length + d.Width)
	case "north", "south":
		p = 2 * (d.Width + d.Height)
	case "east", "west":
		p = 2 * (d.Length + d.Height)
	case "walls":
		p = 2 * 2 * (d.Length + d.Width + 2*d.Height)
	default:
		return 0, &domain.LookupError{Kind: "surface", Key: surface}
	}
	if p <= 0 {
		return 0, &domain.GeometryError{Surface: surface, Reason: "non-positive perimeter"}
	}
	return p, nil
}
