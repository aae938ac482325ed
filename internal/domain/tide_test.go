package domain

import (
	"math"
	"testing"
	"time"
)

// TestGeneratePredictions tests time series generation.
func TestGeneratePredictions(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC)
	interval := 30 * time.Minute

	params := SeriesParams{
		Names: []string{"m2"},
		HC:    []complex128{complex(1.0, 0)},
	}

	predictions, err := GeneratePredictions(start, end, interval, params)
	if err != nil {
		t.Fatalf("GeneratePredictions: %v", err)
	}

	// Should have 5 points: 0:00, 0:30, 1:00, 1:30, 2:00
	expectedCount := 5
	if len(predictions) != expectedCount {
		t.Errorf("Expected %d predictions, got %d", expectedCount, len(predictions))
	}

	// Verify times
	for i, p := range predictions {
		expectedTime := start.Add(time.Duration(i) * interval)
		if !p.Time.Equal(expectedTime) {
			t.Errorf("Prediction %d: expected time %v, got %v", i, expectedTime, p.Time)
		}
	}

	// Unit amplitude with a nodal factor near one keeps heights bounded.
	for i, p := range predictions {
		if math.Abs(p.HeightM) > 1.1 {
			t.Errorf("Prediction %d: height %.4f out of range for unit amplitude", i, p.HeightM)
		}
	}
}

// TestGeneratePredictions_MSLOffset tests the datum offset.
func TestGeneratePredictions_MSLOffset(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	params := SeriesParams{
		Names: []string{"m2"},
		HC:    []complex128{complex(0.5, 0)},
	}
	base, err := GeneratePredictions(start, end, 30*time.Minute, params)
	if err != nil {
		t.Fatalf("GeneratePredictions: %v", err)
	}

	params.MSL = 1.25
	shifted, err := GeneratePredictions(start, end, 30*time.Minute, params)
	if err != nil {
		t.Fatalf("GeneratePredictions: %v", err)
	}

	for i := range base {
		if math.Abs(shifted[i].HeightM-base[i].HeightM-1.25) > 1e-12 {
			t.Errorf("Prediction %d: MSL offset not applied", i)
		}
	}
}

// TestFindExtrema tests extrema detection.
func TestFindExtrema(t *testing.T) {
	// Create a simple sinusoidal pattern with known extrema
	refTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	predictions := []TideLevel{
		{Time: refTime, HeightM: 0.0},
		{Time: refTime.Add(1 * time.Hour), HeightM: 0.5},
		{Time: refTime.Add(2 * time.Hour), HeightM: 0.9},
		{Time: refTime.Add(3 * time.Hour), HeightM: 1.0}, // High
		{Time: refTime.Add(4 * time.Hour), HeightM: 0.9},
		{Time: refTime.Add(5 * time.Hour), HeightM: 0.5},
		{Time: refTime.Add(6 * time.Hour), HeightM: 0.0},
		{Time: refTime.Add(7 * time.Hour), HeightM: -0.5},
		{Time: refTime.Add(8 * time.Hour), HeightM: -0.9},
		{Time: refTime.Add(9 * time.Hour), HeightM: -1.0}, // Low
		{Time: refTime.Add(10 * time.Hour), HeightM: -0.9},
		{Time: refTime.Add(11 * time.Hour), HeightM: -0.5},
		{Time: refTime.Add(12 * time.Hour), HeightM: 0.0},
	}

	extrema := FindExtrema(predictions)

	// Should find 1 high and 1 low
	if len(extrema.Highs) != 1 {
		t.Errorf("Expected 1 high, found %d", len(extrema.Highs))
	}

	if len(extrema.Lows) != 1 {
		t.Errorf("Expected 1 low, found %d", len(extrema.Lows))
	}

	// Verify high tide
	if len(extrema.Highs) > 0 {
		high := extrema.Highs[0]
		expectedTime := refTime.Add(3 * time.Hour)
		if !high.Time.Equal(expectedTime) {
			t.Errorf("High tide time: expected %v, got %v", expectedTime, high.Time)
		}
		if math.Abs(high.HeightM-1.0) > 1e-9 {
			t.Errorf("High tide height: expected 1.0, got %.10f", high.HeightM)
		}
	}

	// Verify low tide
	if len(extrema.Lows) > 0 {
		low := extrema.Lows[0]
		expectedTime := refTime.Add(9 * time.Hour)
		if !low.Time.Equal(expectedTime) {
			t.Errorf("Low tide time: expected %v, got %v", expectedTime, low.Time)
		}
		if math.Abs(low.HeightM-(-1.0)) > 1e-9 {
			t.Errorf("Low tide height: expected -1.0, got %.10f", low.HeightM)
		}
	}
}

// TestRefineExtrema tests parabolic refinement of a discrete peak.
func TestRefineExtrema(t *testing.T) {
	refTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Samples of a parabola peaking halfway between the grid points at
	// t=1h and t=2h, so refinement should move the peak off-grid.
	parabola := func(hours float64) float64 {
		return 1.0 - (hours-1.5)*(hours-1.5)
	}
	predictions := make([]TideLevel, 4)
	for i := range predictions {
		predictions[i] = TideLevel{
			Time:    refTime.Add(time.Duration(i) * time.Hour),
			HeightM: parabola(float64(i)),
		}
	}

	extrema := FindExtrema(predictions)
	if len(extrema.Highs) != 1 {
		t.Fatalf("Expected 1 high, found %d", len(extrema.Highs))
	}

	refined := RefineExtrema(predictions, extrema)
	high := refined.Highs[0]

	expectedTime := refTime.Add(90 * time.Minute)
	if math.Abs(high.Time.Sub(expectedTime).Minutes()) > 1 {
		t.Errorf("Refined high time: expected %v, got %v", expectedTime, high.Time)
	}
	if math.Abs(high.HeightM-1.0) > 1e-6 {
		t.Errorf("Refined high height: expected 1.0, got %.10f", high.HeightM)
	}
}

// TestDeg2Rad tests degree to radian conversion.
func TestDeg2Rad(t *testing.T) {
	tests := []struct {
		deg      float64
		expected float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		result := Deg2Rad(tt.deg)
		if math.Abs(result-tt.expected) > 1e-9 {
			t.Errorf("Deg2Rad(%.1f): expected %.10f, got %.10f", tt.deg, tt.expected, result)
		}
	}
}
