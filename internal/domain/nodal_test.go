package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, name string) *Constituent {
	t.Helper()
	c, err := Lookup(name)
	require.NoError(t, err)
	return c
}

func TestNodalCorrectionM2AtNodeZero(t *testing.T) {
	// With the node at the vernal equinox the m2 series collapses to
	// 1 - 0.03731 + 0.00052.
	nc, err := nodalCorrection(mustLookup(t, "m2"), AstronomicalAngles{}, CorrectionsOTIS, false)
	require.NoError(t, err)

	assert.InDelta(t, 0.96321, nc.F, 1e-5)
	assert.InDelta(t, 0.0, nc.U, 1e-9)
}

func TestNodalCorrectionSolarIdentity(t *testing.T) {
	angles := AstronomicalAngles{S: 100, H: 200, P: 30, N: 125, Ps: 282}
	for _, name := range []string{"s2", "s1", "p1", "t2", "sa", "ssa"} {
		nc, err := nodalCorrection(mustLookup(t, name), angles, CorrectionsOTIS, false)
		require.NoError(t, err, name)
		assert.Equal(t, 1.0, nc.F, name)
		assert.Equal(t, 0.0, nc.U, name)
	}
}

func TestNodalCorrectionCompound(t *testing.T) {
	angles := AstronomicalAngles{N: 60}

	m2, err := nodalCorrection(mustLookup(t, "m2"), angles, CorrectionsOTIS, false)
	require.NoError(t, err)

	m4, err := nodalCorrection(mustLookup(t, "m4"), angles, CorrectionsOTIS, false)
	require.NoError(t, err)
	assert.InDelta(t, m2.F*m2.F, m4.F, 1e-12)
	assert.InDelta(t, 2.0*m2.U, m4.U, 1e-12)

	m8, err := nodalCorrection(mustLookup(t, "m8"), angles, CorrectionsOTIS, false)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(m2.F, 4), m8.F, 1e-12)

	k1, err := nodalCorrection(mustLookup(t, "k1"), angles, CorrectionsOTIS, false)
	require.NoError(t, err)
	mk3, err := nodalCorrection(mustLookup(t, "mk3"), angles, CorrectionsOTIS, false)
	require.NoError(t, err)
	assert.InDelta(t, m2.F*k1.F, mk3.F, 1e-12)
	assert.InDelta(t, m2.U+k1.U, mk3.U, 1e-12)
}

func TestNodalCorrectionVariesWithNode(t *testing.T) {
	at := func(n float64) float64 {
		nc, err := nodalCorrection(mustLookup(t, "m2"), AstronomicalAngles{N: n}, CorrectionsOTIS, false)
		require.NoError(t, err)
		return nc.F
	}
	// f(m2) is smallest with the node at the equinox and largest half a
	// nodal cycle later.
	assert.Less(t, at(0), at(180))
	assert.Greater(t, at(180), 1.0)
}

func TestNodalArgumentsS1Convention(t *testing.T) {
	t1 := []float64{8000.0}
	zeros := []float64{0.0}

	_, _, gOTIS, err := NodalArguments(t1, zeros, []string{"s1"}, CorrectionsOTIS, false)
	require.NoError(t, err)
	_, _, gGOT, err := NodalArguments(t1, zeros, []string{"s1"}, CorrectionsGOT, false)
	require.NoError(t, err)

	// the GOT and FES conventions carry s1 with an extra quarter cycle
	diff := math.Mod(gGOT[0][0]-gOTIS[0][0], 360.0)
	assert.InDelta(t, 90.0, diff, 1e-9)
}

func TestNodalArgumentsUnknownConstituent(t *testing.T) {
	_, _, _, err := NodalArguments([]float64{0}, nil, []string{"m2", "nope"}, CorrectionsOTIS, false)
	require.Error(t, err)

	var unknown *UnknownConstituentError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
}

func TestNodalArgumentsInvalidTime(t *testing.T) {
	_, _, _, err := NodalArguments([]float64{math.NaN()}, nil, []string{"m2"}, CorrectionsOTIS, false)
	require.Error(t, err)

	var invalid *InvalidTimeError
	require.True(t, errors.As(err, &invalid))
}

func TestSchuremanUnsupported(t *testing.T) {
	_, _, _, err := NodalArguments([]float64{0}, nil, []string{"mf"}, CorrectionsSchureman, false)
	require.Error(t, err)

	var unsupported *UnsupportedCorrectionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "mf", unsupported.Constituent)

	// the default substitution admits the constituent with f=1, u=0
	pf, pu, _, err := NodalArguments([]float64{0}, nil, []string{"mf"}, CorrectionsSchureman, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pf[0][0])
	assert.Equal(t, 0.0, pu[0][0])
}

func TestSchuremanMajorsAgreeWithSeries(t *testing.T) {
	// The Table 14 formulas and the trigonometric series are independent
	// developments of the same modulation and should agree closely.
	for _, n := range []float64{0, 45, 120, 250, 330} {
		angles := AstronomicalAngles{N: n}
		for _, name := range []string{"m2", "o1", "k1"} {
			series, err := nodalCorrection(mustLookup(t, name), angles, CorrectionsOTIS, false)
			require.NoError(t, err)
			table, err := nodalCorrection(mustLookup(t, name), angles, CorrectionsSchureman, false)
			require.NoError(t, err)
			assert.InDelta(t, series.F, table.F, 0.01, "%s f at N=%.0f", name, n)
		}
	}
}
