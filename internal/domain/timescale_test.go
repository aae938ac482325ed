package domain

import (
	"math"
	"testing"
	"time"
)

// TestTideTimeEpoch checks the zero point of the tide time scale.
func TestTideTimeEpoch(t *testing.T) {
	epoch := time.Date(1992, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := TideTime(epoch); math.Abs(got) > 1e-9 {
		t.Errorf("TideTime(epoch): expected 0, got %.12f", got)
	}

	nextDay := epoch.AddDate(0, 0, 1)
	if got := TideTime(nextDay); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("TideTime(epoch+1d): expected 1, got %.12f", got)
	}

	noon := epoch.Add(12 * time.Hour)
	if got := TideTime(noon); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("TideTime(epoch+12h): expected 0.5, got %.12f", got)
	}
}

// TestMJDRoundTrip checks the tide time / MJD conversions.
func TestMJDRoundTrip(t *testing.T) {
	// the offset addition costs a few ulp at MJD magnitude
	for _, tt := range []float64{0.0, 123.456, -365.0, 12418.9} {
		mjd := MJDFromTideTime(tt)
		if got := TideTimeFromMJD(mjd); math.Abs(got-tt) > 1e-9 {
			t.Errorf("round trip %.4f: got %.12f", tt, got)
		}
	}
	if MJDFromTideTime(0) != TideEpochMJD {
		t.Errorf("MJDFromTideTime(0): expected %.1f, got %.4f", TideEpochMJD, MJDFromTideTime(0))
	}
}

// TestDeltaTimeTT checks the TT-UT1 table against published values.
func TestDeltaTimeTT(t *testing.T) {
	mjd2000 := TideTime(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) + TideEpochMJD
	seconds := DeltaTimeTT(mjd2000) * 86400.0
	if math.Abs(seconds-63.83) > 0.05 {
		t.Errorf("TT-UT1 at 2000: expected about 63.83s, got %.3fs", seconds)
	}

	// held at the endpoints
	early := DeltaTimeTT(0) * 86400.0
	if math.Abs(early-43.37) > 1e-9 {
		t.Errorf("TT-UT1 before table: expected 43.37s, got %.3fs", early)
	}
	late := DeltaTimeTT(80000) * 86400.0
	if math.Abs(late-69.10) > 1e-9 {
		t.Errorf("TT-UT1 after table: expected 69.10s, got %.3fs", late)
	}
}
