package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go.ngs.io/tidecore/internal/adapter/store"
)

// fakeLoader serves a fixed record for one station.
type fakeLoader struct {
	record *store.StationRecord
}

func (f *fakeLoader) LoadForStation(stationID string) (*store.StationRecord, error) {
	if stationID != "testport" {
		return nil, fmt.Errorf("no such station: %s", stationID)
	}
	return f.record, nil
}

func (f *fakeLoader) ListStations() ([]string, error) {
	return []string{"testport"}, nil
}

func newTestUseCase() *PredictionUseCase {
	return NewPredictionUseCase(&fakeLoader{
		record: &store.StationRecord{
			Names: []string{"m2", "s2", "k1", "o1", "n2", "k2", "p1", "q1"},
			HC: []complex128{
				complex(0.50, 0.10),
				complex(0.20, 0.05),
				complex(0.25, -0.04),
				complex(0.18, 0.02),
				complex(0.10, 0.01),
				complex(0.06, 0.01),
				complex(0.08, 0.00),
				complex(0.03, 0.01),
			},
		},
	})
}

func validRequest() PredictionRequest {
	return PredictionRequest{
		StationID: "testport",
		Start:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Interval:  10 * time.Minute,
	}
}

func TestPredictionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PredictionRequest)
		wantErr string
	}{
		{"valid", func(r *PredictionRequest) {}, ""},
		{"missing station", func(r *PredictionRequest) { r.StationID = "" }, "station_id"},
		{"reversed range", func(r *PredictionRequest) { r.Start, r.End = r.End, r.Start }, "before end"},
		{"interval too small", func(r *PredictionRequest) { r.Interval = time.Second }, "at least 1 minute"},
		{"interval too large", func(r *PredictionRequest) { r.Interval = 7 * time.Hour }, "at most 6 hours"},
		{"range too long", func(r *PredictionRequest) { r.End = r.Start.AddDate(2, 0, 0); r.Interval = 6 * time.Hour }, "365 days"},
		{"too many points", func(r *PredictionRequest) { r.End = r.Start.AddDate(0, 6, 0); r.Interval = time.Minute }, "too many"},
		{"bad datum", func(r *PredictionRequest) { r.Datum = "LAT" }, "datum"},
		{"bad corrections", func(r *PredictionRequest) { r.Corrections = "perth9" }, "corrections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected request to validate, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(validRequest())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 24 hours at 10 minute cadence, endpoints inclusive
	if len(resp.Predictions) != 145 {
		t.Errorf("expected 145 predictions, got %d", len(resp.Predictions))
	}
	if resp.Datum != "MSL" {
		t.Errorf("expected datum MSL, got %s", resp.Datum)
	}
	if resp.Corrections != "otis" {
		t.Errorf("expected default corrections otis, got %s", resp.Corrections)
	}
	if len(resp.Extrema.Highs) == 0 || len(resp.Extrema.Lows) == 0 {
		t.Error("expected at least one high and one low over a day")
	}
	if len(resp.InferredMinors) != 0 {
		t.Errorf("expected no inferred minors without infer_minor, got %v", resp.InferredMinors)
	}
}

func TestExecuteInferMinor(t *testing.T) {
	uc := newTestUseCase()

	req := validRequest()
	req.InferMinor = true
	resp, err := uc.Execute(req)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.InferredMinors) == 0 {
		t.Fatal("expected inferred minors to be reported")
	}
	for _, minor := range resp.InferredMinors {
		for _, major := range resp.Constituents {
			if minor == major {
				t.Errorf("inferred minor %s collides with resolved constituent", minor)
			}
		}
	}
}

func TestExecuteUnknownStation(t *testing.T) {
	uc := newTestUseCase()

	req := validRequest()
	req.StationID = "atlantis"
	if _, err := uc.Execute(req); err == nil {
		t.Error("expected error for unknown station")
	}
}

func TestGetAllConstituents(t *testing.T) {
	uc := newTestUseCase()

	all := uc.GetAllConstituents()
	if len(all) == 0 {
		t.Fatal("expected a populated catalog")
	}
	for _, c := range all {
		if c.Name == "m2" {
			if c.Doodson != "255.555" {
				t.Errorf("m2 doodson: expected 255.555, got %s", c.Doodson)
			}
			if c.Species != "semi-diurnal" {
				t.Errorf("m2 species: expected semi-diurnal, got %s", c.Species)
			}
			return
		}
	}
	t.Error("m2 missing from catalog listing")
}
