package domain

import "math"

// LongitudeMethod selects the constant set used to evaluate the astronomical
// mean longitudes. The Cartwright series is the truncated 1990-2010
// formulation used by OTIS-family models; Meeus and ASTRO5 are the full
// polynomial sets from Astronomical Algorithms, with ASTRO5 carrying the
// coefficients as implemented for the GSFC GOT models. The methods agree to
// well under an arcsecond over the satellite altimetry era.
type LongitudeMethod int

const (
	// MethodCartwright uses the truncated series derived for 1990-2010.
	MethodCartwright LongitudeMethod = iota
	// MethodMeeus uses the Meeus polynomial coefficients in days.
	MethodMeeus
	// MethodASTRO5 uses the Meeus coefficients in Julian centuries.
	MethodASTRO5
)

// AstronomicalAngles holds the five fundamental mean longitudes for one time
// sample, in degrees reduced to [0, 360). N is the longitude of the
// ascending lunar node (decreasing with time, not N').
type AstronomicalAngles struct {
	S  float64 // mean longitude of moon
	H  float64 // mean longitude of sun
	P  float64 // mean longitude of lunar perigee
	N  float64 // mean longitude of ascending lunar node
	Ps float64 // longitude of solar perigee
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// normalizeAngle reduces an angle in degrees to [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// polynomialSum evaluates a polynomial with coefficients of increasing order
// at t.
func polynomialSum(coefficients []float64, t float64) float64 {
	sum := 0.0
	for i := len(coefficients) - 1; i >= 0; i-- {
		sum = sum*t + coefficients[i]
	}
	return sum
}

// Meeus polynomial coefficients, mean elements as polynomials in days or
// centuries from 2000-01-01T12:00:00.
var (
	meeusLunarLongitude = []float64{218.3164591, 13.17639647754579,
		-9.9454632e-13, 3.8086292e-20, -8.6184958e-27}
	meeusSolarLongitude = []float64{280.46645, 0.985647360164271,
		2.2727347e-13}
	meeusLunarPerigee = []float64{83.3532430, 0.11140352391786447,
		-7.7385418e-12, -2.5636086e-19, 2.95738836e-26}
	meeusLunarNode = []float64{125.0445550, -0.052953762762491446,
		1.55628359e-12, 4.390675353e-20, -9.26940435e-27}

	astro5LunarLongitude = []float64{218.3164477, 481267.88123421,
		-1.5786e-3, 1.855835e-6, -1.53388e-8}
	astro5LunarElongation = []float64{297.8501921, 445267.1114034,
		-1.8819e-3, 1.83195e-6, -8.8445e-9}
	astro5LunarPerigee = []float64{83.3532465, 4069.0137287,
		-1.032e-2, -1.249172e-5}
	astro5LunarNode = []float64{125.04452, -1934.136261,
		2.0708e-3, 2.22222e-6}
)

// MeanLongitudes computes the basic astronomical mean longitudes S, H, P, N
// and Ps at a Modified Julian Day, in degrees reduced to [0, 360). Non-finite
// input fails with an InvalidTimeError.
func MeanLongitudes(mjd float64, method LongitudeMethod) (AstronomicalAngles, error) {
	if math.IsNaN(mjd) || math.IsInf(mjd, 0) {
		return AstronomicalAngles{}, &InvalidTimeError{Value: mjd}
	}
	var a AstronomicalAngles
	switch method {
	case MethodMeeus:
		// days relative to 2000-01-01T12:00:00
		T := mjd - J2000MJD
		a.S = polynomialSum(meeusLunarLongitude, T)
		a.H = polynomialSum(meeusSolarLongitude, T)
		a.P = polynomialSum(meeusLunarPerigee, T)
		a.N = polynomialSum(meeusLunarNode, T)
		a.Ps = 282.94 + 1.7192*T/JulianCentury
	case MethodASTRO5:
		// centuries relative to 2000-01-01T12:00:00
		T := (mjd - J2000MJD) / JulianCentury
		a.S = polynomialSum(astro5LunarLongitude, T)
		// mean longitude of sun from the lunar longitude and elongation
		solar := make([]float64, len(astro5LunarLongitude))
		for i := range solar {
			solar[i] = astro5LunarLongitude[i] - astro5LunarElongation[i]
		}
		a.H = polynomialSum(solar, T)
		a.P = polynomialSum(astro5LunarPerigee, T)
		a.N = polynomialSum(astro5LunarNode, T)
		a.Ps = 282.94 + 1.7192*T
	default:
		// truncated series for 1990-2010, time shifted from Universal to
		// Dynamic Time at the 2000 epoch
		T := mjd - 51544.4993
		a.S = 218.3164 + 13.17639648*T
		a.H = 280.4661 + 0.98564736*T
		a.P = 83.3535 + 0.11140353*T
		a.N = 125.0445 - 0.05295377*T
		a.Ps = 282.8
	}
	a.S = normalizeAngle(a.S)
	a.H = normalizeAngle(a.H)
	a.P = normalizeAngle(a.P)
	a.N = normalizeAngle(a.N)
	a.Ps = normalizeAngle(a.Ps)
	return a, nil
}

// MeanLongitudesSlice evaluates MeanLongitudes over a vector of Modified
// Julian Days.
func MeanLongitudesSlice(mjd []float64, method LongitudeMethod) ([]AstronomicalAngles, error) {
	out := make([]AstronomicalAngles, len(mjd))
	for i, m := range mjd {
		a, err := MeanLongitudes(m, method)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// HourAngle returns the solar time angle in degrees for a Modified Julian
// Day: fifteen degrees per hour of the day. The lunar time angle tau follows
// as HourAngle - S + H.
func HourAngle(mjd float64) float64 {
	frac := math.Mod(mjd, 1.0)
	if frac < 0 {
		frac += 1.0
	}
	return 15.0 * 24.0 * frac
}

// LunarHourAngle returns tau, the time angle in lunar days, in degrees
// reduced to [0, 360).
func LunarHourAngle(mjd float64, a AstronomicalAngles) float64 {
	return normalizeAngle(HourAngle(mjd) - a.S + a.H)
}

// schuremanAngles holds the slowly varying orbital angles of Schureman's
// development, used by the convention that applies his Table 14 formulas
// directly. All values in degrees.
type schuremanAngles struct {
	I  float64 // inclination of lunar orbit to the equator
	Xi float64 // longitude in the lunar orbit of its intersection
	Nu float64 // right ascension of the intersection
}

// schuremanArguments computes the orbital angles from the longitude of the
// ascending node, degrees in and out.
func schuremanArguments(n float64) schuremanAngles {
	nRad := Deg2Rad(n)
	i := math.Acos(0.91370 - 0.03569*math.Cos(nRad))
	nu := math.Asin(0.08978 * math.Sin(nRad) / math.Sin(i))
	return schuremanAngles{
		I:  Rad2Deg(i),
		Nu: Rad2Deg(nu),
		Xi: n - 2.0*Rad2Deg(nu),
	}
}
