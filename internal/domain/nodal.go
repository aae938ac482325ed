package domain

import (
	"fmt"
	"math"
	"strings"
)

// Corrections selects the nodal-correction convention. The OTIS family
// (also covering ATLAS and netCDF-packaged OTIS solutions) evaluates mean
// longitudes with the truncated Cartwright series and takes TT-UT1 as zero;
// GOT and FES use the ASTRO5 longitudes, Doodson's phase for s1 (180
// degrees rather than 90) and a mandatory TT-UT1 offset. Schureman applies
// the orbital-angle formulas of Schureman's Table 14 directly and only
// covers the major constituents.
type Corrections int

const (
	// CorrectionsOTIS is the default convention.
	CorrectionsOTIS Corrections = iota
	// CorrectionsGOT selects the GSFC GOT convention.
	CorrectionsGOT
	// CorrectionsFES selects the FES convention.
	CorrectionsFES
	// CorrectionsSchureman applies Schureman's orbital-angle formulas.
	CorrectionsSchureman
)

func (c Corrections) String() string {
	switch c {
	case CorrectionsOTIS:
		return "otis"
	case CorrectionsGOT:
		return "got"
	case CorrectionsFES:
		return "fes"
	case CorrectionsSchureman:
		return "schureman"
	default:
		return fmt.Sprintf("corrections(%d)", int(c))
	}
}

// ParseCorrections maps a convention name to its Corrections value.
// The ATLAS and netCDF names resolve to the OTIS convention.
func ParseCorrections(s string) (Corrections, error) {
	switch strings.ToLower(s) {
	case "", "otis", "atlas", "netcdf":
		return CorrectionsOTIS, nil
	case "got":
		return CorrectionsGOT, nil
	case "fes":
		return CorrectionsFES, nil
	case "schureman":
		return CorrectionsSchureman, nil
	}
	return 0, fmt.Errorf("unknown corrections convention %q", s)
}

func (c Corrections) longitudeMethod() LongitudeMethod {
	if c == CorrectionsGOT || c == CorrectionsFES {
		return MethodASTRO5
	}
	return MethodCartwright
}

// NodalCorrection is the amplitude factor and phase offset applied to one
// constituent at one time.
type NodalCorrection struct {
	F float64 // amplitude factor
	U float64 // phase correction, degrees
}

// NodalArguments computes, for each time sample and constituent, the nodal
// amplitude factor pf, the nodal phase pu in radians, and the equilibrium
// argument G in degrees. Times are days since the tide epoch; deltat is an
// optional per-sample TT-UT1 offset in days, defaulted per convention when
// nil.
func NodalArguments(t []float64, deltat []float64, names []string, conv Corrections, allowDefault bool) (pf, pu, G [][]float64, err error) {
	if conv < CorrectionsOTIS || conv > CorrectionsSchureman {
		return nil, nil, nil, &UnsupportedCorrectionError{Corrections: conv}
	}
	if deltat != nil && len(deltat) != len(t) {
		return nil, nil, nil, fmt.Errorf("deltat length %d does not match %d time samples", len(deltat), len(t))
	}
	cons := make([]*Constituent, len(names))
	for k, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return nil, nil, nil, err
		}
		cons[k] = c
	}
	pf = make([][]float64, len(t))
	pu = make([][]float64, len(t))
	G = make([][]float64, len(t))
	for i, ti := range t {
		if math.IsNaN(ti) || math.IsInf(ti, 0) {
			return nil, nil, nil, &InvalidTimeError{Value: ti}
		}
		mjd := MJDFromTideTime(ti)
		switch {
		case deltat != nil:
			mjd += deltat[i]
		case conv == CorrectionsGOT || conv == CorrectionsFES:
			mjd += DeltaTimeTT(mjd)
		}
		angles, err := MeanLongitudes(mjd, conv.longitudeMethod())
		if err != nil {
			return nil, nil, nil, err
		}
		fargs := [6]float64{HourAngle(mjd), angles.S, angles.H, angles.P, angles.N, angles.Ps}
		pf[i] = make([]float64, len(cons))
		pu[i] = make([]float64, len(cons))
		G[i] = make([]float64, len(cons))
		for k, c := range cons {
			nc, err := nodalCorrection(c, angles, conv, allowDefault)
			if err != nil {
				return nil, nil, nil, err
			}
			arg := float64(c.K90) * 90.0
			for j := range fargs {
				arg += c.Coef[j] * fargs[j]
			}
			// Doodson's phase convention for s1 under GOT and FES
			if c.Name == "s1" && (conv == CorrectionsGOT || conv == CorrectionsFES) {
				arg += 90.0
			}
			pf[i][k] = nc.F
			pu[i][k] = Deg2Rad(nc.U)
			G[i][k] = arg
		}
	}
	return pf, pu, G, nil
}

// nodalCorrection evaluates the closed-form nodal series for a single
// constituent: trigonometric series in the node longitude N, plus the
// lunar perigee P for the m1 and l2 doublets.
func nodalCorrection(c *Constituent, a AstronomicalAngles, conv Corrections, allowDefault bool) (NodalCorrection, error) {
	if conv == CorrectionsSchureman {
		return schuremanCorrection(c, a, allowDefault)
	}
	n := Deg2Rad(a.N)
	p := Deg2Rad(a.P)
	sinn, cosn := math.Sincos(n)
	sin2n, cos2n := math.Sincos(2.0 * n)
	sin3n := math.Sin(3.0 * n)

	// series shared within a band
	m2 := seriesCorrection(-0.03731*sinn+0.00052*sin2n, 1.0-0.03731*cosn+0.00052*cos2n)
	k1 := seriesCorrection(-0.1554*sinn+0.0029*sin2n, 1.0+0.1158*cosn-0.0029*cos2n)
	k2 := seriesCorrection(-0.3108*sinn-0.0324*sin2n, 1.0+0.2852*cosn+0.0324*cos2n)

	switch c.Name {
	case "mm":
		return NodalCorrection{F: 1.0 - 0.130*cosn, U: 0}, nil
	case "mf", "msqm":
		return NodalCorrection{
			F: 1.043 + 0.414*cosn,
			U: -23.7*sinn + 2.7*sin2n - 0.4*sin3n,
		}, nil
	case "mt", "mtm":
		return seriesCorrection(-0.203*sinn-0.040*sin2n, 1.0+0.203*cosn+0.040*cos2n), nil
	case "2q1", "sigma1", "q1", "rho1":
		return NodalCorrection{
			F: math.Hypot(0.188*sinn, 1.0+0.188*cosn),
			U: Rad2Deg(math.Atan2(0.189*sinn, 1.0+0.189*cosn)),
		}, nil
	case "o1":
		return NodalCorrection{
			F: math.Hypot(0.189*sinn-0.0058*sin2n, 1.0+0.189*cosn-0.0058*cos2n),
			U: 10.8*sinn - 1.3*sin2n + 0.2*sin3n,
		}, nil
	case "m1":
		// Ray's formulation for the M1 doublet
		t1 := 2.0*math.Cos(p) + 0.4*math.Cos(p-n)
		t2 := math.Sin(p) + 0.2*math.Sin(p-n)
		return NodalCorrection{F: math.Hypot(t2, t1), U: Rad2Deg(math.Atan2(t2, t1))}, nil
	case "chi1":
		return seriesCorrection(-0.221*sinn, 1.0+0.221*cosn), nil
	case "k1":
		return k1, nil
	case "j1":
		return NodalCorrection{
			F: math.Hypot(0.227*sinn, 1.0+0.169*cosn),
			U: Rad2Deg(math.Atan2(-0.227*sinn, 1.0+0.169*cosn)),
		}, nil
	case "oo1":
		return seriesCorrection(-0.640*sinn-0.134*sin2n, 1.0+0.640*cosn+0.134*cos2n), nil
	case "2n2", "mu2", "n2", "nu2", "m2", "2sm2", "ms4", "eps2":
		return m2, nil
	case "l2":
		t1 := 1.0 - 0.25*math.Cos(2.0*p) - 0.11*math.Cos(2.0*p-n) - 0.04*cosn
		t2 := 0.25*math.Sin(2.0*p) + 0.11*math.Sin(2.0*p-n) + 0.04*sinn
		return NodalCorrection{F: math.Hypot(t2, t1), U: Rad2Deg(math.Atan2(-t2, t1))}, nil
	case "k2":
		return k2, nil
	case "eta2":
		return seriesCorrection(-0.436*sinn, 1.0+0.436*cosn), nil
	case "mns2", "mn4", "m4", "n4":
		return powCorrection(m2, 2), nil
	case "m3":
		return NodalCorrection{F: math.Pow(m2.F, 1.5), U: 1.5 * m2.U}, nil
	case "m6":
		return powCorrection(m2, 3), nil
	case "m8":
		return powCorrection(m2, 4), nil
	case "mk3":
		return mulCorrection(m2, k1), nil
	case "mk4", "mks2":
		return mulCorrection(m2, k2), nil
	case "sa", "ssa", "msf", "alpha1", "tau1", "pi1", "p1", "s1", "psi1",
		"phi1", "theta1", "m2a", "m2b", "lambda2", "t2", "s2", "r2",
		"s3", "s4", "s5", "s6", "s7", "s8", "z0":
		// solar lines and lines without a resolvable nodal modulation
		return NodalCorrection{F: 1.0, U: 0}, nil
	}
	if allowDefault {
		return NodalCorrection{F: 1.0, U: 0}, nil
	}
	return NodalCorrection{}, &UnsupportedCorrectionError{Constituent: c.Name, Corrections: conv}
}

// schuremanCorrection applies the Table 14 orbital-angle formulas for the
// major constituents. Other constituents have no closed form under this
// convention.
func schuremanCorrection(c *Constituent, a AstronomicalAngles, allowDefault bool) (NodalCorrection, error) {
	sch := schuremanArguments(a.N)
	iRad := Deg2Rad(sch.I)
	sinI, cosI := math.Sincos(iRad)
	cosHalf := math.Cos(iRad / 2.0)
	sin2I := math.Sin(2.0 * iRad)
	nu := Deg2Rad(sch.Nu)
	twoXiNu := 2.0*sch.Xi - 2.0*sch.Nu
	xiNu := 2.0*sch.Xi - sch.Nu

	switch c.Name {
	case "m2", "n2":
		return NodalCorrection{F: math.Pow(cosHalf, 4) / 0.9154, U: twoXiNu}, nil
	case "o1", "q1":
		return NodalCorrection{F: sinI * cosHalf * cosHalf / 0.3800, U: xiNu}, nil
	case "k1":
		return NodalCorrection{
			F: math.Sqrt(0.8965*sin2I*sin2I + 0.6001*sin2I*math.Cos(nu) + 0.1006),
			U: -8.86*math.Sin(nu) + 0.68*math.Sin(2.0*nu),
		}, nil
	case "k2":
		return NodalCorrection{
			F: math.Sqrt(19.0444*math.Pow(sinI, 4) + 2.7702*sinI*sinI*math.Cos(2.0*nu) + 0.0981),
			U: -Rad2Deg(math.Atan2(0.1689*sin2I, 0.2523+0.1689*cosI)),
		}, nil
	case "s2", "p1", "t2", "r2", "s1", "sa", "ssa", "s4", "s6", "z0":
		return NodalCorrection{F: 1.0, U: 0}, nil
	}
	if allowDefault {
		return NodalCorrection{F: 1.0, U: 0}, nil
	}
	return NodalCorrection{}, &UnsupportedCorrectionError{Constituent: c.Name, Corrections: CorrectionsSchureman}
}

// seriesCorrection folds a sine/cosine series pair into (f, u).
func seriesCorrection(s, c float64) NodalCorrection {
	return NodalCorrection{
		F: math.Hypot(s, c),
		U: Rad2Deg(math.Atan2(s, c)),
	}
}

func mulCorrection(a, b NodalCorrection) NodalCorrection {
	return NodalCorrection{F: a.F * b.F, U: a.U + b.U}
}

func powCorrection(a NodalCorrection, n int) NodalCorrection {
	return NodalCorrection{F: math.Pow(a.F, float64(n)), U: float64(n) * a.U}
}
