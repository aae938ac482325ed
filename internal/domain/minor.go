package domain

import (
	"fmt"
	"math"
	"strings"
)

// inferenceMajors are the constituents minor amplitudes are derived from,
// in the order the admittance coefficients expect.
var inferenceMajors = [8]string{"q1", "o1", "p1", "k1", "n2", "m2", "s2", "k2"}

// minorLine is one inferable constituent: its equilibrium argument as
// coefficients on (hour angle, s, h, p, ps) plus a multiple of 90 degrees,
// and the admittance relation z = aCoef*z[aIdx] + bCoef*z[bIdx].
type minorLine struct {
	name  string
	coef  [5]float64
	k90   int
	aIdx  int
	aCoef float64
	bIdx  int
	bCoef float64
}

// The admittance coefficients interpolate the minor lines from the eight
// majors following Richard Ray's perth3. m1 and l2 appear twice because
// both lines of each doublet are carried.
var minorLines = []minorLine{
	{"2q1", [5]float64{1, -4, 1, 2, 0}, -1, 0, 0.263, 1, -0.0252},
	{"sigma1", [5]float64{1, -4, 3, 0, 0}, -1, 0, 0.297, 1, -0.0264},
	{"rho1", [5]float64{1, -3, 3, -1, 0}, -1, 0, 0.164, 1, 0.0048},
	{"m1", [5]float64{1, -1, 1, -1, 0}, 1, 1, 0.0140, 3, 0.0101},
	{"m1", [5]float64{1, -1, 1, 1, 0}, 1, 1, 0.0389, 3, 0.0282},
	{"chi1", [5]float64{1, -1, 3, -1, 0}, 1, 1, 0.0064, 3, 0.0060},
	{"pi1", [5]float64{1, 0, -2, 0, 1}, -1, 1, 0.0030, 3, 0.0171},
	{"phi1", [5]float64{1, 0, 3, 0, 0}, 1, 1, -0.0015, 3, 0.0152},
	{"theta1", [5]float64{1, 1, -1, 1, 0}, 1, 1, -0.0065, 3, 0.0155},
	{"j1", [5]float64{1, 1, 1, -1, 0}, 1, 1, -0.0389, 3, 0.0836},
	{"oo1", [5]float64{1, 2, 1, 0, 0}, 1, 1, -0.0431, 3, 0.0613},
	{"2n2", [5]float64{2, -4, 2, 2, 0}, 0, 4, 0.264, 5, -0.0253},
	{"mu2", [5]float64{2, -4, 4, 0, 0}, 0, 4, 0.298, 5, -0.0264},
	{"nu2", [5]float64{2, -3, 4, -1, 0}, 0, 4, 0.165, 5, 0.00487},
	{"lambda2", [5]float64{2, -1, 0, 1, 0}, 2, 5, 0.0040, 6, 0.0074},
	{"l2", [5]float64{2, -1, 2, -1, 0}, 2, 5, 0.0131, 6, 0.0326},
	{"l2", [5]float64{2, -1, 2, 1, 0}, 0, 5, 0.0033, 6, 0.0082},
	{"t2", [5]float64{2, 0, -1, 0, 1}, 0, 6, 0.0585, 6, 0},
}

// InferredMinors returns the names of the constituents that minor
// inference would add to the given set, preserving table order and
// excluding any minor already present.
func InferredMinors(names []string) []string {
	present := make(map[string]struct{}, len(names))
	for _, name := range names {
		present[strings.ToLower(name)] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, m := range minorLines {
		if _, ok := present[m.name]; ok {
			continue
		}
		if _, ok := seen[m.name]; ok {
			continue
		}
		seen[m.name] = struct{}{}
		out = append(out, m.name)
	}
	return out
}

// InferMinorTimeSeries returns the tidal contribution of the inferable
// minor constituents at one location over many times, derived from the
// major harmonic constants by admittance interpolation. The result is
// meant to be added to the output of PredictTimeSeries. Fewer than six of
// the eight reference majors is an error.
func InferMinorTimeSeries(t []float64, names []string, hc []complex128, opts PredictOptions) ([]float64, error) {
	if len(hc) != len(names) {
		return nil, fmt.Errorf("got %d harmonic constants for %d constituents", len(hc), len(names))
	}
	if opts.DeltaT != nil && len(opts.DeltaT) != len(t) {
		return nil, fmt.Errorf("deltat length %d does not match %d time samples", len(opts.DeltaT), len(t))
	}
	z, skip, err := inferenceBasis(names, func(k int) complex128 { return hc[k] })
	if err != nil {
		return nil, err
	}
	dh := make([]float64, len(t))
	for i, ti := range t {
		dt, hasDT := deltaTFor(opts, i)
		v, err := inferMinorAt(ti, dt, hasDT, z, skip, opts.Corrections)
		if err != nil {
			return nil, err
		}
		dh[i] = v
	}
	return dh, nil
}

// InferMinorDrift is the trajectory form: hc[i] holds the major harmonic
// constants at the platform position for time t[i].
func InferMinorDrift(t []float64, names []string, hc [][]complex128, opts PredictOptions) ([]float64, error) {
	if len(hc) != len(t) {
		return nil, fmt.Errorf("got %d harmonic constant rows for %d time samples", len(hc), len(t))
	}
	if opts.DeltaT != nil && len(opts.DeltaT) != len(t) {
		return nil, fmt.Errorf("deltat length %d does not match %d time samples", len(opts.DeltaT), len(t))
	}
	dh := make([]float64, len(t))
	for i, ti := range t {
		if len(hc[i]) != len(names) {
			return nil, fmt.Errorf("sample %d: got %d harmonic constants for %d constituents", i, len(hc[i]), len(names))
		}
		row := hc[i]
		z, skip, err := inferenceBasis(names, func(k int) complex128 { return row[k] })
		if err != nil {
			return nil, err
		}
		dt, hasDT := deltaTFor(opts, i)
		v, err := inferMinorAt(ti, dt, hasDT, z, skip, opts.Corrections)
		if err != nil {
			return nil, err
		}
		dh[i] = v
	}
	return dh, nil
}

// deltaTFor reports the caller-supplied TT-UT1 offset for sample i, if any.
func deltaTFor(opts PredictOptions, i int) (float64, bool) {
	if opts.DeltaT != nil {
		return opts.DeltaT[i], true
	}
	return 0, false
}

// inferenceBasis gathers the eight reference majors from the provided
// constituent set and records which minors must be skipped because the
// model already resolves them.
func inferenceBasis(names []string, at func(int) complex128) ([8]complex128, map[string]struct{}, error) {
	var z [8]complex128
	index := make(map[string]int, len(names))
	for k, name := range names {
		index[strings.ToLower(name)] = k
	}
	var missing []string
	for j, major := range inferenceMajors {
		k, ok := index[major]
		if !ok {
			missing = append(missing, major)
			continue
		}
		z[j] = at(k)
	}
	if len(inferenceMajors)-len(missing) < 6 {
		return z, nil, &InsufficientConstituentsError{Missing: missing}
	}
	skip := make(map[string]struct{})
	for _, m := range minorLines {
		if _, ok := index[m.name]; ok {
			skip[m.name] = struct{}{}
		}
	}
	return z, skip, nil
}

// inferMinorAt evaluates the minor-constituent sum at a single time.
// The astronomical angles follow the ASTRO5 evaluation regardless of
// convention, matching the admittance tables.
func inferMinorAt(tideTime, deltat float64, haveDeltat bool, z [8]complex128, skip map[string]struct{}, conv Corrections) (float64, error) {
	if math.IsNaN(tideTime) || math.IsInf(tideTime, 0) {
		return 0, &InvalidTimeError{Value: tideTime}
	}
	mjd := MJDFromTideTime(tideTime)
	switch {
	case haveDeltat:
		mjd += deltat
	case conv == CorrectionsGOT || conv == CorrectionsFES:
		mjd += DeltaTimeTT(mjd)
	}
	a, err := MeanLongitudes(mjd, MethodASTRO5)
	if err != nil {
		return 0, err
	}
	fargs := [5]float64{HourAngle(mjd), a.S, a.H, a.P, a.Ps}

	n := Deg2Rad(a.N)
	sinn, cosn := math.Sincos(n)
	sin2n, cos2n := math.Sincos(2.0 * n)

	var sum float64
	for li, m := range minorLines {
		if _, ok := skip[m.name]; ok {
			continue
		}
		zm := complex(m.aCoef, 0)*z[m.aIdx] + complex(m.bCoef, 0)*z[m.bIdx]
		arg := float64(m.k90) * 90.0
		for j := range fargs {
			arg += m.coef[j] * fargs[j]
		}
		f, u := minorNodal(li, sinn, cosn, sin2n, cos2n)
		th := Deg2Rad(arg + u)
		sin, cos := math.Sincos(th)
		sum += f * (real(zm)*cos - imag(zm)*sin)
	}
	return sum, nil
}

// minorNodal returns (f, u degrees) for the minor line at table index li.
func minorNodal(li int, sinn, cosn, sin2n, cos2n float64) (float64, float64) {
	switch li {
	case 0, 1, 2: // 2q1, sigma1, rho1 follow the o1 modulation
		f := math.Hypot(0.189*sinn-0.0058*sin2n, 1.0+0.189*cosn-0.0058*cos2n)
		u := Rad2Deg(math.Atan2(0.189*sinn-0.0058*sin2n, 1.0+0.189*cosn-0.0058*cos2n))
		return f, u
	case 3: // m1, first line
		return math.Hypot(0.185*sinn, 1.0+0.185*cosn),
			Rad2Deg(math.Atan2(0.185*sinn, 1.0+0.185*cosn))
	case 4: // m1, second line
		return math.Hypot(0.201*sinn, 1.0+0.201*cosn),
			Rad2Deg(math.Atan2(-0.201*sinn, 1.0+0.201*cosn))
	case 5: // chi1
		return math.Hypot(0.221*sinn, 1.0+0.221*cosn),
			Rad2Deg(math.Atan2(-0.221*sinn, 1.0+0.221*cosn))
	case 9: // j1
		return math.Hypot(0.198*sinn, 1.0+0.198*cosn),
			Rad2Deg(math.Atan2(-0.198*sinn, 1.0+0.198*cosn))
	case 10: // oo1
		return math.Hypot(0.640*sinn+0.134*sin2n, 1.0+0.640*cosn+0.134*cos2n),
			Rad2Deg(math.Atan2(-0.640*sinn-0.134*sin2n, 1.0+0.640*cosn+0.134*cos2n))
	case 11, 12, 13, 15: // 2n2, mu2, nu2, l2 first line
		return math.Hypot(0.0373*sinn, 1.0-0.0373*cosn),
			Rad2Deg(math.Atan2(-0.0373*sinn, 1.0-0.0373*cosn))
	case 16: // l2, second line
		return math.Hypot(0.441*sinn, 1.0+0.441*cosn),
			Rad2Deg(math.Atan2(-0.441*sinn, 1.0+0.441*cosn))
	}
	return 1.0, 0
}
