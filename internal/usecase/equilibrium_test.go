package usecase

import (
	"testing"
	"time"
)

func TestEquilibriumExecute(t *testing.T) {
	uc := NewEquilibriumUseCase()

	resp, err := uc.Execute(EquilibriumRequest{
		Start:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Interval:  time.Hour,
		Latitudes: []float64{0, 45, 90},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.Times) != 25 {
		t.Errorf("expected 25 samples, got %d", len(resp.Times))
	}
	if len(resp.HeightsM) != 3 {
		t.Fatalf("expected 3 latitude rows, got %d", len(resp.HeightsM))
	}
	for i, row := range resp.HeightsM {
		if len(row) != len(resp.Times) {
			t.Errorf("row %d: expected %d samples, got %d", i, len(resp.Times), len(row))
		}
	}
}

func TestEquilibriumValidate(t *testing.T) {
	base := EquilibriumRequest{
		Start:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Interval:  time.Hour,
		Latitudes: []float64{0},
	}

	req := base
	req.Latitudes = nil
	if err := req.Validate(); err == nil {
		t.Error("expected error for missing latitudes")
	}

	req = base
	req.Latitudes = []float64{91}
	if err := req.Validate(); err == nil {
		t.Error("expected error for out-of-range latitude")
	}

	req = base
	req.Start, req.End = req.End, req.Start
	if err := req.Validate(); err == nil {
		t.Error("expected error for reversed range")
	}
}
