package domain

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Ocean tide models count time in continuous days relative to
// 1992-01-01T00:00:00 (MJD 48622). All predictor entry points take time in
// these "tide days"; fractional days carry sub-second precision.
const (
	// TideEpochMJD is the Modified Julian Day of the ocean-tide epoch.
	TideEpochMJD = 48622.0
	// MJDOffset converts a Julian Date to a Modified Julian Day.
	MJDOffset = 2400000.5
	// J2000MJD is the Modified Julian Day of 2000-01-01T12:00:00.
	J2000MJD = 51544.5
	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0
)

// TideTime converts a wall-clock time to days since the tide epoch.
func TideTime(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - MJDOffset - TideEpochMJD
}

// TideTimeFromMJD converts a Modified Julian Day to days since the tide epoch.
func TideTimeFromMJD(mjd float64) float64 {
	return mjd - TideEpochMJD
}

// MJDFromTideTime converts days since the tide epoch back to a Modified
// Julian Day.
func MJDFromTideTime(t float64) float64 {
	return t + TideEpochMJD
}

// Annual TT-UT1 values in seconds at January 1 of each year from 1973
// onward, from the published IERS series. Between entries the series is
// interpolated linearly; outside it the endpoints are held.
var deltaTYears = 1973
var deltaTTable = []float64{
	43.37, 44.49, 45.48, 46.46, 47.52, 48.53, 49.59, 50.54, // 1973-1980
	51.38, 52.17, 52.96, 53.79, 54.34, 54.87, 55.32, 55.82, // 1981-1988
	56.30, 56.86, 57.57, 58.31, 59.12, 59.98, 60.78, 61.63, // 1989-1996
	62.29, 62.97, 63.47, 63.83, 64.09, 64.30, 64.47, 64.57, // 1997-2004
	64.69, 64.85, 65.15, 65.46, 65.78, 66.07, 66.32, 66.60, // 2005-2012
	66.91, 67.28, 67.64, 68.10, 68.59, 68.96, 69.22, 69.36, // 2013-2020
	69.36, 69.29, 69.20, 69.17, 69.10, // 2021-2025
}

// DeltaTimeTT returns an estimate of TT-UT1 in days at the given Modified
// Julian Day. GOT and FES style predictions feed this offset to the
// astronomical calculators; callers with measured per-sample deltas should
// supply those instead.
func DeltaTimeTT(mjd float64) float64 {
	// fractional years since the first table entry
	jan1 := julian.TimeToJD(time.Date(deltaTYears, 1, 1, 0, 0, 0, 0, time.UTC)) - MJDOffset
	y := (mjd - jan1) / 365.25
	switch {
	case y <= 0:
		return deltaTTable[0] / 86400.0
	case y >= float64(len(deltaTTable)-1):
		return deltaTTable[len(deltaTTable)-1] / 86400.0
	}
	i := int(y)
	frac := y - float64(i)
	dt := deltaTTable[i] + frac*(deltaTTable[i+1]-deltaTTable[i])
	return dt / 86400.0
}
