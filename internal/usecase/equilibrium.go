package usecase

import (
	"fmt"
	"time"

	"go.ngs.io/tidecore/internal/domain"
)

// EquilibriumRequest asks for the long-period equilibrium tide over a
// time range at one or more latitudes.
type EquilibriumRequest struct {
	Start    time.Time
	End      time.Time
	Interval time.Duration

	Latitudes []float64
}

// EquilibriumResponse holds the equilibrium tide grid, indexed
// [latitude][time], in meters.
type EquilibriumResponse struct {
	Times     []string    `json:"times"`
	Latitudes []float64   `json:"latitudes"`
	HeightsM  [][]float64 `json:"heights_m"`
}

// Validate checks if the request is valid
func (r *EquilibriumRequest) Validate() error {
	if len(r.Latitudes) == 0 {
		return fmt.Errorf("at least one latitude must be provided")
	}
	for _, lat := range r.Latitudes {
		if lat < -90 || lat > 90 {
			return fmt.Errorf("latitude must be between -90 and 90")
		}
	}

	if !r.Start.Before(r.End) {
		return fmt.Errorf("start time must be before end time")
	}
	if r.Interval < time.Minute {
		return fmt.Errorf("interval must be at least 1 minute")
	}

	numPoints := int(r.End.Sub(r.Start) / r.Interval)
	if numPoints > 10000 {
		return fmt.Errorf("too many prediction points (%d) - reduce time range or increase interval", numPoints)
	}

	return nil
}

// EquilibriumUseCase computes long-period equilibrium tides.
type EquilibriumUseCase struct{}

// NewEquilibriumUseCase creates a new equilibrium tide use case
func NewEquilibriumUseCase() *EquilibriumUseCase {
	return &EquilibriumUseCase{}
}

// Execute computes the equilibrium tide grid
func (uc *EquilibriumUseCase) Execute(req EquilibriumRequest) (*EquilibriumResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	var stamps []string
	var t []float64
	for ts := req.Start; !ts.After(req.End); ts = ts.Add(req.Interval) {
		stamps = append(stamps, ts.UTC().Format(time.RFC3339))
		t = append(t, domain.TideTime(ts))
	}

	grid, err := domain.EquilibriumTideGrid(t, req.Latitudes)
	if err != nil {
		return nil, err
	}
	for _, row := range grid {
		for i, v := range row {
			row[i] = roundToDecimal(v, 6)
		}
	}

	return &EquilibriumResponse{
		Times:     stamps,
		Latitudes: req.Latitudes,
		HeightsM:  grid,
	}, nil
}
