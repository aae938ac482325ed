package domain

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Species classifies a constituent by its approximate period band, derived
// from the multiplier on the lunar time angle.
type Species int

const (
	// SpeciesLongPeriod covers fortnightly through annual constituents.
	SpeciesLongPeriod Species = iota
	// SpeciesDiurnal covers once-per-day constituents.
	SpeciesDiurnal
	// SpeciesSemiDiurnal covers twice-per-day constituents.
	SpeciesSemiDiurnal
	// SpeciesShortPeriod covers compound and overtide constituents.
	SpeciesShortPeriod
)

func (s Species) String() string {
	switch s {
	case SpeciesLongPeriod:
		return "long-period"
	case SpeciesDiurnal:
		return "diurnal"
	case SpeciesSemiDiurnal:
		return "semi-diurnal"
	default:
		return "short-period"
	}
}

// Constituent is a single periodic tidal component. Coef holds the
// multipliers applied to the fundamental arguments (solar hour angle, S, H,
// P, N, Ps) when forming the equilibrium argument; K90 is the species phase
// constant in multiples of 90 degrees. Entries are built once at process
// start and never mutated.
type Constituent struct {
	Name          string
	Coef          [6]float64
	K90           int
	Species       Species
	SpeedDegPerHr float64
	Omega         float64 // angular frequency, rad/s
}

// Rates of change of the fundamental arguments in degrees per hour: solar
// hour angle, lunar longitude, solar longitude, lunar perigee, lunar node,
// solar perigee. Derived from the mean-longitude series.
var argumentRates = [6]float64{
	15.0,
	13.17639648 / 24.0,
	0.98564736 / 24.0,
	0.11140353 / 24.0,
	-0.05295377 / 24.0,
	1.7192 / JulianCentury / 24.0,
}

// catalogRow is one line of the static constituent table.
type catalogRow struct {
	name string
	coef [6]float64
	k90  int
}

// The equilibrium-argument development of Doodson as tabulated by Ray, with
// the species phase constants folded in as multiples of 90 degrees.
// Coefficients multiply (hour angle, S, H, P, N, Ps).
var catalogRows = []catalogRow{
	{"sa", [6]float64{0, 0, 1, 0, 0, -1}, 0},
	{"ssa", [6]float64{0, 0, 2, 0, 0, 0}, 0},
	{"mm", [6]float64{0, 1, 0, -1, 0, 0}, 0},
	{"msf", [6]float64{0, 2, -2, 0, 0, 0}, 0},
	{"mf", [6]float64{0, 2, 0, 0, 0, 0}, 0},
	{"mt", [6]float64{0, 3, 0, -1, 0, 0}, 0},
	{"alpha1", [6]float64{1, -5, 3, 1, 0, 0}, -1},
	{"2q1", [6]float64{1, -4, 1, 2, 0, 0}, -1},
	{"sigma1", [6]float64{1, -4, 3, 0, 0, 0}, -1},
	{"q1", [6]float64{1, -3, 1, 1, 0, 0}, -1},
	{"rho1", [6]float64{1, -3, 3, -1, 0, 0}, -1},
	{"o1", [6]float64{1, -2, 1, 0, 0, 0}, -1},
	{"tau1", [6]float64{1, -2, 3, 0, 0, 0}, 1},
	{"m1", [6]float64{1, -1, 1, 0, 0, 0}, 1},
	{"chi1", [6]float64{1, -1, 3, -1, 0, 0}, 1},
	{"pi1", [6]float64{1, 0, -2, 0, 0, 1}, -1},
	{"p1", [6]float64{1, 0, -1, 0, 0, 0}, -1},
	{"s1", [6]float64{1, 0, 0, 0, 0, 0}, 1},
	{"k1", [6]float64{1, 0, 1, 0, 0, 0}, 1},
	{"psi1", [6]float64{1, 0, 2, 0, 0, -1}, 1},
	{"phi1", [6]float64{1, 0, 3, 0, 0, 0}, 1},
	{"theta1", [6]float64{1, 1, -1, 1, 0, 0}, 1},
	{"j1", [6]float64{1, 1, 1, -1, 0, 0}, 1},
	{"oo1", [6]float64{1, 2, 1, 0, 0, 0}, 1},
	{"2n2", [6]float64{2, -4, 2, 2, 0, 0}, 0},
	{"mu2", [6]float64{2, -4, 4, 0, 0, 0}, 0},
	{"n2", [6]float64{2, -3, 2, 1, 0, 0}, 0},
	{"nu2", [6]float64{2, -3, 4, -1, 0, 0}, 0},
	// m2a and m2b are the annual sidelines of m2, offset by -(h-ps) and
	// +(h-ps); some harmonic analyses resolve them as separate lines.
	{"m2a", [6]float64{2, -2, 1, 0, 0, 1}, 0},
	{"m2", [6]float64{2, -2, 2, 0, 0, 0}, 0},
	{"m2b", [6]float64{2, -2, 3, 0, 0, -1}, 0},
	{"lambda2", [6]float64{2, -1, 0, 1, 0, 0}, 2},
	{"l2", [6]float64{2, -1, 2, -1, 0, 0}, 2},
	{"t2", [6]float64{2, 0, -1, 0, 0, 1}, 0},
	{"s2", [6]float64{2, 0, 0, 0, 0, 0}, 0},
	{"r2", [6]float64{2, 0, 1, 0, 0, -1}, 2},
	{"k2", [6]float64{2, 0, 2, 0, 0, 0}, 0},
	{"eta2", [6]float64{2, 1, 2, 0, 0, -1}, 0},
	{"mns2", [6]float64{2, -5, 4, 1, 0, 0}, 0},
	{"2sm2", [6]float64{2, 2, -2, 0, 0, 0}, 0},
	{"m3", [6]float64{3, -3, 3, 0, 0, 0}, 0},
	{"mk3", [6]float64{3, -2, 3, 0, 0, 0}, 1},
	{"s3", [6]float64{3, 0, 0, 0, 0, 0}, 0},
	{"mn4", [6]float64{4, -5, 4, 1, 0, 0}, 0},
	{"m4", [6]float64{4, -4, 4, 0, 0, 0}, 0},
	{"ms4", [6]float64{4, -2, 2, 0, 0, 0}, 0},
	{"mk4", [6]float64{4, -2, 4, 0, 0, 0}, 0},
	{"s4", [6]float64{4, 0, 0, 0, 0, 0}, 0},
	{"s5", [6]float64{5, 0, 0, 0, 0, 0}, 0},
	{"m6", [6]float64{6, -6, 6, 0, 0, 0}, 0},
	{"s6", [6]float64{6, 0, 0, 0, 0, 0}, 0},
	{"s7", [6]float64{7, 0, 0, 0, 0, 0}, 0},
	{"s8", [6]float64{8, 0, 0, 0, 0, 0}, 0},
	{"m8", [6]float64{8, -8, 8, 0, 0, 0}, 0},
	{"mks2", [6]float64{2, -2, 4, 0, 0, 0}, 0},
	{"msqm", [6]float64{0, 4, -2, 0, 0, 0}, 0},
	{"mtm", [6]float64{0, 3, 0, -1, 0, 0}, 0},
	{"n4", [6]float64{4, -6, 4, 2, 0, 0}, 0},
	{"eps2", [6]float64{2, -5, 4, 1, 0, 0}, 0},
	{"z0", [6]float64{0, 0, 0, 0, 0, 0}, 0},
}

// Duplicate spectral lines carried under a second name. Reverse lookups
// resolve to the canonical entry.
var catalogAliases = map[string]string{
	"mtm":  "mt",
	"eps2": "mns2",
}

var (
	catalogByName  map[string]*Constituent
	catalogOrdered []*Constituent
)

func init() {
	catalogByName = make(map[string]*Constituent, len(catalogRows))
	catalogOrdered = make([]*Constituent, 0, len(catalogRows))
	for _, row := range catalogRows {
		speed := floats.Dot(row.coef[:], argumentRates[:])
		c := &Constituent{
			Name:          row.name,
			Coef:          row.coef,
			K90:           row.k90,
			Species:       speciesFor(row.coef[0]),
			SpeedDegPerHr: speed,
			Omega:         Deg2Rad(speed) / 3600.0,
		}
		catalogByName[row.name] = c
		catalogOrdered = append(catalogOrdered, c)
	}
}

func speciesFor(tau float64) Species {
	switch {
	case tau == 0:
		return SpeciesLongPeriod
	case tau == 1:
		return SpeciesDiurnal
	case tau == 2:
		return SpeciesSemiDiurnal
	default:
		return SpeciesShortPeriod
	}
}

// Lookup returns the catalog entry for a constituent name. Names are
// case-insensitive; failure returns an UnknownConstituentError.
func Lookup(name string) (*Constituent, error) {
	c, ok := catalogByName[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownConstituentError{Name: name}
	}
	return c, nil
}

// AllConstituents returns the catalog entries in table order.
func AllConstituents() []*Constituent {
	out := make([]*Constituent, len(catalogOrdered))
	copy(out, catalogOrdered)
	return out
}

// GetConstituentSpeed returns the angular speed in degrees per hour for a
// named constituent.
func GetConstituentSpeed(name string) (float64, bool) {
	c, ok := catalogByName[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return c.SpeedDegPerHr, true
}

// DoodsonMultipliers returns the multipliers on (tau, s, h, p, N', ps),
// where tau is the lunar time angle and N' the negated node longitude, as
// used in the Doodson number convention.
func (c *Constituent) DoodsonMultipliers() [6]int {
	a := int(c.Coef[0])
	return [6]int{
		a,
		int(c.Coef[1]) + a,
		int(c.Coef[2]) - a,
		int(c.Coef[3]),
		-int(c.Coef[4]),
		int(c.Coef[5]),
	}
}

// extendedDigits encodes Doodson digits above nine in the extended
// convention.
const extendedDigits = "0123456789XETUV"

// DoodsonNumber formats the constituent in Doodson's notation, with five
// added to every multiplier after the first (m2 reads 255.555).
func (c *Constituent) DoodsonNumber() string {
	m := c.DoodsonMultipliers()
	digit := func(v int) byte {
		if v < 0 || v >= len(extendedDigits) {
			return '?'
		}
		return extendedDigits[v]
	}
	return fmt.Sprintf("%c%c%c.%c%c%c",
		digit(m[0]), digit(m[1]+5), digit(m[2]+5),
		digit(m[3]+5), digit(m[4]+5), digit(m[5]+5))
}

// FromDoodsonMultipliers performs the reverse lookup from a multiplier
// vector in the (tau, s, h, p, N', ps) convention. When no catalog entry
// matches and raiseError is set, the failure is an
// AmbiguousConstituentError; otherwise the lookup reports ok=false without
// error. Aliased spectral lines resolve to their canonical name.
func FromDoodsonMultipliers(m [6]int, raiseError bool) (string, bool, error) {
	for _, c := range catalogOrdered {
		if c.DoodsonMultipliers() == m {
			name := c.Name
			if canonical, ok := catalogAliases[name]; ok {
				name = canonical
			}
			return name, true, nil
		}
	}
	if raiseError {
		doodson := fmt.Sprintf("%v", m)
		return "", false, &AmbiguousConstituentError{Doodson: doodson}
	}
	return "", false, nil
}

// FromDoodsonNumber performs the reverse lookup from the formatted extended
// Doodson string (e.g. "255.555").
func FromDoodsonNumber(doodson string, raiseError bool) (string, bool, error) {
	for _, c := range catalogOrdered {
		if c.DoodsonNumber() == doodson {
			name := c.Name
			if canonical, ok := catalogAliases[name]; ok {
				name = canonical
			}
			return name, true, nil
		}
	}
	if raiseError {
		return "", false, &AmbiguousConstituentError{Doodson: doodson}
	}
	return "", false, nil
}
