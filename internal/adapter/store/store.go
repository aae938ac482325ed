package store

import "go.ngs.io/tidecore/internal/domain"

// StationRecord holds the harmonic constants for one station. Names and HC
// are parallel slices; HC is amp*exp(-i*phase) with amplitudes in meters
// and phase lags relative to Greenwich.
type StationRecord struct {
	Names []string
	HC    []complex128
	Meta  domain.StationMetadata
}

// ConstituentLoader is the interface for loading tidal harmonic constants.
type ConstituentLoader interface {
	// LoadForStation loads the harmonic constants for a named station.
	LoadForStation(stationID string) (*StationRecord, error)

	// ListStations returns the available station IDs.
	ListStations() ([]string, error)
}
