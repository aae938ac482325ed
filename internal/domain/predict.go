package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PredictOptions controls how harmonic predictions are evaluated.
type PredictOptions struct {
	// Corrections selects the nodal-correction convention.
	Corrections Corrections
	// DeltaT overrides the per-sample TT-UT1 offset in days. When nil the
	// offset defaults to zero for OTIS and Schureman and to the tabulated
	// value for GOT and FES.
	DeltaT []float64
	// AllowDefaultCorrections substitutes f=1, u=0 for constituents the
	// selected convention has no formula for, instead of failing.
	AllowDefaultCorrections bool
}

// PredictTimeSeries evaluates the harmonic sum at one location over many
// times. Times are days since the tide epoch, hc holds one complex
// amplitude per constituent, and the result carries the units of hc.
// A NaN amplitude makes every output sample NaN.
func PredictTimeSeries(t []float64, names []string, hc []complex128, opts PredictOptions) ([]float64, error) {
	if len(hc) != len(names) {
		return nil, fmt.Errorf("got %d harmonic constants for %d constituents", len(hc), len(names))
	}
	pf, pu, G, err := NodalArguments(t, opts.DeltaT, names, opts.Corrections, opts.AllowDefaultCorrections)
	if err != nil {
		return nil, err
	}
	ht := make([]float64, len(t))
	term := make([]float64, len(t))
	for k := range names {
		re, im := real(hc[k]), imag(hc[k])
		for i := range t {
			th := Deg2Rad(G[i][k]) + pu[i][k]
			sin, cos := math.Sincos(th)
			term[i] = pf[i][k] * (re*cos - im*sin)
		}
		floats.Add(ht, term)
	}
	return ht, nil
}

// PredictMap evaluates the harmonic sum at one time over many locations.
// hc is indexed [location][constituent].
func PredictMap(t float64, names []string, hc [][]complex128, opts PredictOptions) ([]float64, error) {
	pf, pu, G, err := NodalArguments([]float64{t}, opts.DeltaT, names, opts.Corrections, opts.AllowDefaultCorrections)
	if err != nil {
		return nil, err
	}
	ht := make([]float64, len(hc))
	for j, loc := range hc {
		if len(loc) != len(names) {
			return nil, fmt.Errorf("location %d: got %d harmonic constants for %d constituents", j, len(loc), len(names))
		}
		var sum float64
		for k := range names {
			th := Deg2Rad(G[0][k]) + pu[0][k]
			sin, cos := math.Sincos(th)
			sum += pf[0][k] * (real(loc[k])*cos - imag(loc[k])*sin)
		}
		ht[j] = sum
	}
	return ht, nil
}

// PredictDrift evaluates the harmonic sum along a trajectory: sample i
// pairs time t[i] with the harmonic constants hc[i] interpolated to the
// platform position at that time.
func PredictDrift(t []float64, names []string, hc [][]complex128, opts PredictOptions) ([]float64, error) {
	if len(hc) != len(t) {
		return nil, fmt.Errorf("got %d harmonic constant rows for %d time samples", len(hc), len(t))
	}
	pf, pu, G, err := NodalArguments(t, opts.DeltaT, names, opts.Corrections, opts.AllowDefaultCorrections)
	if err != nil {
		return nil, err
	}
	ht := make([]float64, len(t))
	for i := range t {
		if len(hc[i]) != len(names) {
			return nil, fmt.Errorf("sample %d: got %d harmonic constants for %d constituents", i, len(hc[i]), len(names))
		}
		var sum float64
		for k := range names {
			th := Deg2Rad(G[i][k]) + pu[i][k]
			sin, cos := math.Sincos(th)
			sum += pf[i][k] * (real(hc[i][k])*cos - imag(hc[i][k])*sin)
		}
		ht[i] = sum
	}
	return ht, nil
}
