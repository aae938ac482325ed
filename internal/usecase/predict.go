package usecase

import (
	"fmt"
	"time"

	"go.ngs.io/tidecore/internal/adapter/store"
	"go.ngs.io/tidecore/internal/domain"
)

// PredictionRequest encapsulates a tide prediction request
type PredictionRequest struct {
	// Station ID
	StationID string

	// Time range
	Start time.Time
	End   time.Time

	// Interval for predictions (e.g., 10 minutes)
	Interval time.Duration

	// Nodal correction convention: "otis" (default), "got", "fes", "schureman"
	Corrections string

	// Add inferred minor constituents to the prediction
	InferMinor bool

	// Substitute f=1, u=0 where the convention lacks a formula
	AllowDefaultCorrections bool

	Datum string // e.g., "MSL" - only MSL is supported
}

// PredictionResponse contains the tide prediction results
type PredictionResponse struct {
	Station        string            `json:"station"`
	Datum          string            `json:"datum"`
	Timezone       string            `json:"timezone"`
	Corrections    string            `json:"corrections"`
	Constituents   []string          `json:"constituents"`
	InferredMinors []string          `json:"inferred_minors,omitempty"`
	Predictions    []PredictionPoint `json:"predictions"`
	Extrema        ExtremaResponse   `json:"extrema"`
	Meta           map[string]string `json:"meta"`
}

// PredictionPoint represents a single tide height prediction
type PredictionPoint struct {
	Time    string  `json:"time"`
	HeightM float64 `json:"height_m"`
}

// ExtremaResponse contains high and low tides
type ExtremaResponse struct {
	Highs []PredictionPoint `json:"highs"`
	Lows  []PredictionPoint `json:"lows"`
}

// PredictionUseCase orchestrates tide prediction
type PredictionUseCase struct {
	store store.ConstituentLoader
}

// NewPredictionUseCase creates a new prediction use case
func NewPredictionUseCase(loader store.ConstituentLoader) *PredictionUseCase {
	return &PredictionUseCase{
		store: loader,
	}
}

// Validate checks if the request is valid
func (r *PredictionRequest) Validate() error {
	if r.StationID == "" {
		return fmt.Errorf("station_id must be provided")
	}

	// Validate time range
	if !r.Start.Before(r.End) {
		return fmt.Errorf("start time must be before end time")
	}

	// Validate interval
	if r.Interval < time.Minute {
		return fmt.Errorf("interval must be at least 1 minute")
	}
	if r.Interval > 6*time.Hour {
		return fmt.Errorf("interval must be at most 6 hours")
	}

	// Check that time range is reasonable
	duration := r.End.Sub(r.Start)
	if duration > 365*24*time.Hour {
		return fmt.Errorf("time range must be at most 365 days")
	}

	// Check that number of points is reasonable
	numPoints := int(duration / r.Interval)
	if numPoints > 10000 {
		return fmt.Errorf("too many prediction points (%d) - reduce time range or increase interval", numPoints)
	}

	if r.Datum != "" && r.Datum != "MSL" {
		return fmt.Errorf("unsupported datum %q - only MSL is supported", r.Datum)
	}

	if _, err := domain.ParseCorrections(r.Corrections); err != nil {
		return err
	}

	return nil
}

// Execute performs the tide prediction
func (uc *PredictionUseCase) Execute(req PredictionRequest) (*PredictionResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	record, err := uc.store.LoadForStation(req.StationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load constituents for station %s: %w", req.StationID, err)
	}

	conv, _ := domain.ParseCorrections(req.Corrections)
	params := domain.SeriesParams{
		Names:      record.Names,
		HC:         record.HC,
		MSL:        record.Meta.MSL,
		InferMinor: req.InferMinor,
		Options: domain.PredictOptions{
			Corrections:             conv,
			AllowDefaultCorrections: req.AllowDefaultCorrections,
		},
	}

	// Generate predictions
	predictions, err := domain.GeneratePredictions(req.Start, req.End, req.Interval, params)
	if err != nil {
		return nil, err
	}

	// Find extrema and refine with parabolic interpolation
	extrema := domain.FindExtrema(predictions)
	extrema = domain.RefineExtrema(predictions, extrema)

	// Determine datum
	datum := req.Datum
	if datum == "" {
		datum = "MSL"
	}

	response := &PredictionResponse{
		Station:      req.StationID,
		Datum:        datum,
		Timezone:     "+00:00", // UTC
		Corrections:  conv.String(),
		Constituents: record.Names,
		Predictions:  toPoints(predictions),
		Extrema: ExtremaResponse{
			Highs: toPoints(extrema.Highs),
			Lows:  toPoints(extrema.Lows),
		},
		Meta: map[string]string{
			"model": "harmonic_v1",
		},
	}
	if req.InferMinor {
		response.InferredMinors = domain.InferredMinors(record.Names)
	}

	return response, nil
}

// ListStations returns the station IDs the store can serve
func (uc *PredictionUseCase) ListStations() ([]string, error) {
	return uc.store.ListStations()
}

// ConstituentInfo describes one catalog entry
type ConstituentInfo struct {
	Name          string  `json:"name"`
	SpeedDegPerHr float64 `json:"speed_deg_per_hr"`
	Doodson       string  `json:"doodson"`
	Species       string  `json:"species"`
}

// GetAllConstituents returns all catalog constituents
func (uc *PredictionUseCase) GetAllConstituents() []ConstituentInfo {
	all := domain.AllConstituents()
	out := make([]ConstituentInfo, len(all))
	for i, c := range all {
		out[i] = ConstituentInfo{
			Name:          c.Name,
			SpeedDegPerHr: c.SpeedDegPerHr,
			Doodson:       c.DoodsonNumber(),
			Species:       c.Species.String(),
		}
	}
	return out
}

func toPoints(levels []domain.TideLevel) []PredictionPoint {
	points := make([]PredictionPoint, len(levels))
	for i, l := range levels {
		points[i] = PredictionPoint{
			Time:    l.Time.UTC().Format(time.RFC3339),
			HeightM: roundToDecimal(l.HeightM, 3),
		}
	}
	return points
}

// Helper function to round to decimal places
func roundToDecimal(val float64, precision int) float64 {
	multiplier := 1.0
	for i := 0; i < precision; i++ {
		multiplier *= 10
	}
	if val < 0 {
		return float64(int(val*multiplier-0.5)) / multiplier
	}
	return float64(int(val*multiplier+0.5)) / multiplier
}
