package domain

type SurfaceClass string

const (
	SurfaceWall    SurfaceClass = "wall"
	SurfaceCeiling SurfaceClass = "ceiling"
	SurfaceFloor   SurfaceClass = "floor"
)

type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

type NoiseType string

const (
	NoiseSpeech    NoiseType = "speech"
	NoiseMusic     NoiseType = "music"
	NoiseTV        NoiseType = "tv"
	NoiseTraffic   NoiseType = "traffic"
	NoiseAircraft  NoiseType = "aircraft"
	NoiseFootsteps NoiseType = "footsteps"
	NoiseMachinery NoiseType = "machinery"
)

// Direction values: compass points map to walls, "above" to ceiling, "below" to floor.
type Direction string

const (
	DirNorth Direction = "north"
	DirSouth Direction = "south"
	DirEast  Direction = "east"
	DirWest  Direction = "west"
	DirAbove Direction = "above"
	DirBelow Direction = "below"
)

type RoomDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Blockage is an opening (window, door) that reduces the treatable area of a
// surface. Walls use Width×Height; ceiling and floor use Width×Length.
type Blockage struct {
	Surface string  `json:"surface"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height,omitempty"`
	Length  float64 `json:"length,omitempty"`
}

type NoiseProfile struct {
	Type      NoiseType   `json:"type"`
	Intensity int         `json:"intensity"`
	TimeOfDay []string    `json:"time_of_day,omitempty"`
	Direction []Direction `json:"direction"`
}

// SurfaceExposure is derived from NoiseProfile.Direction, never stored.
type SurfaceExposure struct {
	Walls   []string `json:"walls"`
	Ceiling bool     `json:"ceiling"`
	Floor   bool     `json:"floor"`
}

type Material struct {
	Name     string  `json:"name"`
	UnitCost float64 `json:"unit_cost"`
	Coverage float64 `json:"coverage"`
	Unit     string  `json:"unit"`
}

type Treatment struct {
	Key              string       `json:"key"`
	Name             string       `json:"name"`
	SurfaceClass     SurfaceClass `json:"surface_class"`
	Tier             Tier         `json:"tier"`
	SoundReductionDB float64      `json:"sound_reduction_db"`
	FrequencyMinHz   float64      `json:"frequency_min_hz"`
	FrequencyMaxHz   float64      `json:"frequency_max_hz"`
	Materials        []Material   `json:"materials"`
	TotalUnitCost    float64      `json:"total_unit_cost"`
	ThicknessM       float64      `json:"thickness_m"`
	InstallationDays float64      `json:"installation_days"`
	MaintenanceLevel string       `json:"maintenance_level"`
	Durability       float64      `json:"durability"`
	ImpactResistance float64      `json:"impact_resistance"`
	STCRating        int          `json:"stc_rating"`
	LaborRate        float64      `json:"labor_rate,omitempty"`
	Notes            []string     `json:"notes,omitempty"`
}

type Score struct {
	Overall           float64 `json:"overall"`
	FrequencyMatch    float64 `json:"frequency_match"`
	SoundReduction    float64 `json:"sound_reduction"`
	ImpactResistance  float64 `json:"impact_resistance"`
	AirborneReduction float64 `json:"airborne_reduction"`
}

type ScoredSolution struct {
	TreatmentKey string   `json:"treatment_key"`
	Surface      string   `json:"surface"`
	Tier         Tier     `json:"tier"`
	Score        Score    `json:"score"`
	Reasoning    []string `json:"reasoning"`
}

// CustomAssessment is the terminal result for surfaces the catalog cannot
// cover with a standard or premium treatment. It is a valid outcome, not an error.
type CustomAssessment struct {
	Message string `json:"message"`
	Contact string `json:"contact"`
}

type FloorResult struct {
	Solution         *ScoredSolution   `json:"solution,omitempty"`
	CustomAssessment *CustomAssessment `json:"custom_assessment,omitempty"`
}

type Recommendation struct {
	Status        string           `json:"status"` // "ok" or "insufficient_input"
	MissingFields []string         `json:"missing_fields,omitempty"`
	Walls         []ScoredSolution `json:"walls,omitempty"`
	Ceiling       *ScoredSolution  `json:"ceiling,omitempty"`
	Floor         *FloorResult     `json:"floor,omitempty"`
}

type CostLineItem struct {
	Material string  `json:"material"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost"`
	LineCost float64 `json:"line_cost"`
}

type CostBreakdown struct {
	TreatmentKey string         `json:"treatment_key"`
	Surface      string         `json:"surface"`
	Area         float64        `json:"area"`
	Perimeter    float64        `json:"perimeter"`
	LineItems    []CostLineItem `json:"line_items"`
	Labor        CostLineItem   `json:"labor"`
	TotalCost    float64        `json:"total_cost"`
}

// Estimate is a persisted recommendation+cost run.
type Estimate struct {
	ID             string          `json:"id"`
	CreatedAt      string          `json:"created_at"`
	Room           RoomDimensions  `json:"room"`
	Profile        NoiseProfile    `json:"profile"`
	Blockages      []Blockage      `json:"blockages,omitempty"`
	Recommendation Recommendation  `json:"recommendation"`
	Costs          []CostBreakdown `json:"costs,omitempty"`
	TotalCost      float64         `json:"total_cost"`
}
