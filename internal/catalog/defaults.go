package catalog

import "github.com/mkravtsov/soundproof-estimator/internal/domain"

// BuiltinVersion identifies the embedded fallback catalog.
const BuiltinVersion = "builtin-1"

// Defaults returns the embedded catalog used when no external source is
// reachable. Floor treatments are deliberately absent: floors need a site
// survey and are answered with a custom-assessment result instead.
func Defaults() []domain.Treatment {
	return []domain.Treatment{
		{
			Key:              "StandardWallSP10",
			Name:             "Standard Wall System SP10",
			SurfaceClass:     domain.SurfaceWall,
			Tier:             domain.TierStandard,
			SoundReductionDB: 36,
			FrequencyMinHz:   125,
			FrequencyMaxHz:   4000,
			Materials: []domain.Material{
				{Name: "acoustic plasterboard", UnitCost: 18.50, Coverage: 2.88, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "resilient bar", UnitCost: 4.20, Coverage: 1.2, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    63.45,
			ThicknessM:       0.075,
			InstallationDays: 1,
			MaintenanceLevel: "low",
			Durability:       0.7,
			ImpactResistance: 0.4,
			STCRating:        38,
			Notes:            []string{"Suited to party walls in typical residential builds."},
		},
		{
			Key:              "StandardWallSP15",
			Name:             "Standard Wall System SP15",
			SurfaceClass:     domain.SurfaceWall,
			Tier:             domain.TierStandard,
			SoundReductionDB: 42,
			FrequencyMinHz:   100,
			FrequencyMaxHz:   4500,
			Materials: []domain.Material{
				{Name: "acoustic plasterboard", UnitCost: 18.50, Coverage: 2.88, Unit: "m²"},
				{Name: "mass loaded vinyl", UnitCost: 54.00, Coverage: 4.5, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    113.25,
			ThicknessM:       0.09,
			InstallationDays: 1.5,
			MaintenanceLevel: "low",
			Durability:       0.75,
			ImpactResistance: 0.45,
			STCRating:        45,
			Notes:            []string{"Adds a limp mass layer for louder airborne sources."},
		},
		{
			Key:              "PremiumWallPro20",
			Name:             "Premium Wall System Pro20",
			SurfaceClass:     domain.SurfaceWall,
			Tier:             domain.TierPremium,
			SoundReductionDB: 52,
			FrequencyMinHz:   63,
			FrequencyMaxHz:   5000,
			Materials: []domain.Material{
				{Name: "high-density acoustic plasterboard", UnitCost: 26.40, Coverage: 2.88, Unit: "m²"},
				{Name: "mass loaded vinyl", UnitCost: 54.00, Coverage: 4.5, Unit: "m²"},
				{Name: "isolation clip system", UnitCost: 12.80, Coverage: 1.0, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    133.95,
			ThicknessM:       0.12,
			InstallationDays: 2,
			MaintenanceLevel: "low",
			Durability:       0.85,
			ImpactResistance: 0.6,
			STCRating:        55,
			Notes:            []string{"Decoupled clip mounting cuts structure-borne transmission."},
		},
		{
			Key:              "PremiumWallPro25",
			Name:             "Premium Wall System Pro25",
			SurfaceClass:     domain.SurfaceWall,
			Tier:             domain.TierPremium,
			SoundReductionDB: 58,
			FrequencyMinHz:   50,
			FrequencyMaxHz:   5000,
			Materials: []domain.Material{
				{Name: "high-density acoustic plasterboard", UnitCost: 26.40, Coverage: 2.88, Unit: "m²"},
				{Name: "damping compound", UnitCost: 19.50, Coverage: 1.4, Unit: "m²"},
				{Name: "mass loaded vinyl", UnitCost: 54.00, Coverage: 4.5, Unit: "m²"},
				{Name: "isolation clip system", UnitCost: 12.80, Coverage: 1.0, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    153.45,
			ThicknessM:       0.135,
			InstallationDays: 2.5,
			MaintenanceLevel: "low",
			Durability:       0.9,
			ImpactResistance: 0.65,
			STCRating:        60,
			Notes: []string{
				"Constrained-layer damping extends performance into low bass.",
				"Recommended for home studios and machinery noise.",
			},
		},
		{
			Key:              "StandardCeilingC10",
			Name:             "Standard Ceiling System C10",
			SurfaceClass:     domain.SurfaceCeiling,
			Tier:             domain.TierStandard,
			SoundReductionDB: 34,
			FrequencyMinHz:   160,
			FrequencyMaxHz:   4000,
			Materials: []domain.Material{
				{Name: "acoustic plasterboard", UnitCost: 18.50, Coverage: 2.88, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "resilient channel", UnitCost: 5.60, Coverage: 1.5, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    64.85,
			ThicknessM:       0.07,
			InstallationDays: 1,
			MaintenanceLevel: "low",
			Durability:       0.7,
			ImpactResistance: 0.3,
			STCRating:        36,
		},
		{
			Key:              "StandardCeilingC14",
			Name:             "Standard Ceiling System C14",
			SurfaceClass:     domain.SurfaceCeiling,
			Tier:             domain.TierStandard,
			SoundReductionDB: 40,
			FrequencyMinHz:   125,
			FrequencyMaxHz:   4000,
			Materials: []domain.Material{
				{Name: "acoustic plasterboard", UnitCost: 18.50, Coverage: 2.88, Unit: "m²"},
				{Name: "mass loaded vinyl", UnitCost: 54.00, Coverage: 4.5, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "resilient channel", UnitCost: 5.60, Coverage: 1.5, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    118.85,
			ThicknessM:       0.085,
			InstallationDays: 1.5,
			MaintenanceLevel: "low",
			Durability:       0.75,
			ImpactResistance: 0.4,
			STCRating:        42,
			Notes:            []string{"Handles footstep noise from above better than C10."},
		},
		{
			Key:              "PremiumCeilingPro18",
			Name:             "Premium Ceiling System Pro18",
			SurfaceClass:     domain.SurfaceCeiling,
			Tier:             domain.TierPremium,
			SoundReductionDB: 50,
			FrequencyMinHz:   80,
			FrequencyMaxHz:   5000,
			Materials: []domain.Material{
				{Name: "high-density acoustic plasterboard", UnitCost: 26.40, Coverage: 2.88, Unit: "m²"},
				{Name: "independent joist hangers", UnitCost: 16.90, Coverage: 0.9, Unit: "m²"},
				{Name: "mass loaded vinyl", UnitCost: 54.00, Coverage: 4.5, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    138.05,
			ThicknessM:       0.14,
			InstallationDays: 2.5,
			MaintenanceLevel: "low",
			Durability:       0.85,
			ImpactResistance: 0.55,
			STCRating:        52,
			Notes:            []string{"Fully independent sub-ceiling, loses ~140mm of height."},
		},
		{
			Key:              "PremiumCeilingPro22",
			Name:             "Premium Ceiling System Pro22",
			SurfaceClass:     domain.SurfaceCeiling,
			Tier:             domain.TierPremium,
			SoundReductionDB: 56,
			FrequencyMinHz:   63,
			FrequencyMaxHz:   5000,
			Materials: []domain.Material{
				{Name: "high-density acoustic plasterboard", UnitCost: 26.40, Coverage: 2.88, Unit: "m²"},
				{Name: "damping compound", UnitCost: 19.50, Coverage: 1.4, Unit: "m²"},
				{Name: "independent joist hangers", UnitCost: 16.90, Coverage: 0.9, Unit: "m²"},
				{Name: "mass loaded vinyl", UnitCost: 54.00, Coverage: 4.5, Unit: "m²"},
				{Name: "mineral wool insulation", UnitCost: 32.00, Coverage: 5.76, Unit: "m²"},
				{Name: "acoustic sealant", UnitCost: 8.75, Coverage: 6, Unit: "m"},
			},
			TotalUnitCost:    157.55,
			ThicknessM:       0.155,
			InstallationDays: 3,
			MaintenanceLevel: "low",
			Durability:       0.9,
			ImpactResistance: 0.6,
			STCRating:        58,
			Notes:            []string{"Top option against aircraft and heavy impact noise."},
		},
	}
}
