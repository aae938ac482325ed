package domain

import (
	"fmt"
	"math"
)

// Mean longitudes of the moon, sun, lunar perigee and ascending lunar node
// at 1987-01-01, with daily rates. The equilibrium sum tracks the LPEQMT
// convention and references its own epoch rather than the catalog's.
var (
	equilibriumPhase = [4]float64{290.21, 280.12, 274.35, 343.51}
	equilibriumRate  = [4]float64{13.1763965, 0.9856473, 0.1114041, 0.0529539}
)

// days from the tide epoch back to 1987-01-01
const equilibriumEpochShift = 1826.0

// equilibriumPotential assembles the long-period tide potential in
// centimeters from the fifteen Cartwright-Tayler-Edden spectral lines
// larger than one millimeter. The nodal line is included, the constant
// term is not.
func equilibriumPotential(tideTime float64) (float64, error) {
	if math.IsNaN(tideTime) || math.IsInf(tideTime, 0) {
		return 0, &InvalidTimeError{Value: tideTime}
	}
	var shpn [4]float64
	for n := range shpn {
		angle := equilibriumPhase[n] + (tideTime+equilibriumEpochShift)*equilibriumRate[n]
		shpn[n] = Deg2Rad(normalizeAngle(angle))
	}
	s, h, p, omega := shpn[0], shpn[1], shpn[2], shpn[3]

	z := 2.79*math.Cos(omega) -
		0.49*math.Cos(h-Deg2Rad(283.0)) -
		3.10*math.Cos(2.0*h)
	ph := s
	z += -0.67*math.Cos(ph-2.0*h+p) -
		(3.52-0.46*math.Cos(omega))*math.Cos(ph-p)
	ph += s
	z += -6.66*math.Cos(ph) -
		2.76*math.Cos(ph+omega) -
		0.26*math.Cos(ph+2.0*omega) -
		0.58*math.Cos(ph-2.0*h) -
		0.29*math.Cos(ph-2.0*p)
	ph += s
	z += -1.27*math.Cos(ph-p) -
		0.53*math.Cos(ph-p+omega) -
		0.24*math.Cos(ph-2.0*h+p)
	return z, nil
}

// equilibriumScale is gamma_2 times the spherical harmonic normalization,
// with gamma_2 = 1 + k2 - h2 for Love numbers k2=0.302, h2=0.609.
var equilibriumScale = (1.0 + 0.302 - 0.609) * math.Sqrt(5.0/(4.0*math.Pi))

// legendreP20 is the degree-2 zonal polynomial in latitude (degrees).
func legendreP20(lat float64) float64 {
	s := math.Sin(Deg2Rad(lat))
	return 0.5 * (3.0*s*s - 1.0)
}

// EquilibriumTideGrid returns the long-period equilibrium tide in meters
// for every latitude and time pairing, indexed [latitude][time].
func EquilibriumTideGrid(t []float64, lat []float64) ([][]float64, error) {
	z := make([]float64, len(t))
	for i, ti := range t {
		v, err := equilibriumPotential(ti)
		if err != nil {
			return nil, err
		}
		z[i] = v / 100.0
	}
	lpet := make([][]float64, len(lat))
	for j, latj := range lat {
		scale := equilibriumScale * legendreP20(latj)
		row := make([]float64, len(t))
		for i := range t {
			row[i] = scale * z[i]
		}
		lpet[j] = row
	}
	return lpet, nil
}

// EquilibriumTideDrift returns the long-period equilibrium tide in meters
// along a trajectory, pairing each time with a latitude.
func EquilibriumTideDrift(t []float64, lat []float64) ([]float64, error) {
	if len(lat) != len(t) {
		return nil, fmt.Errorf("got %d latitudes for %d time samples", len(lat), len(t))
	}
	lpet := make([]float64, len(t))
	for i, ti := range t {
		z, err := equilibriumPotential(ti)
		if err != nil {
			return nil, err
		}
		lpet[i] = equilibriumScale * legendreP20(lat[i]) * z / 100.0
	}
	return lpet, nil
}
