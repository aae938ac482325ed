// Package csv provides CSV-based harmonic constant loading.
package csv

import (
	"encoding/csv"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	"go.ngs.io/tidecore/internal/adapter/store"
	"go.ngs.io/tidecore/internal/domain"
)

// ConstituentStore provides access to station harmonic constants stored as
// one CSV file per station.
type ConstituentStore struct {
	dataDir string
}

// NewConstituentStore creates a new CSV-based constituent store.
func NewConstituentStore(dataDir string) *ConstituentStore {
	return &ConstituentStore{
		dataDir: dataDir,
	}
}

// LoadForStation loads the harmonic constants for a named station.
func (s *ConstituentStore) LoadForStation(stationID string) (*store.StationRecord, error) {
	filename := fmt.Sprintf("%s/%s_constituents.csv", s.dataDir, strings.ToLower(stationID))

	//nolint:gosec // G304: File path constructed from dataDir (config) and stationID (validated).
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file for station %s: %w", stationID, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Validate header.
	expectedHeaders := []string{"constituent", "amplitude_m", "phase_deg"}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}

	for i, h := range header {
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	record := &store.StationRecord{}

	for {
		row, err := reader.Read()
		if err != nil {
			// EOF is expected.
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(row) != 3 {
			return nil, fmt.Errorf("invalid CSV record: expected 3 columns, got %d", len(row))
		}

		name := strings.TrimSpace(row[0])
		amplitudeStr := strings.TrimSpace(row[1])
		phaseStr := strings.TrimSpace(row[2])

		// Parse amplitude.
		amplitude, err := strconv.ParseFloat(amplitudeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amplitude for constituent %s: %w", name, err)
		}

		// Parse phase.
		phase, err := strconv.ParseFloat(phaseStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid phase for constituent %s: %w", name, err)
		}

		// Resolve against the catalog; aliases map to canonical names.
		c, err := domain.Lookup(name)
		if err != nil {
			return nil, err
		}

		record.Names = append(record.Names, c.Name)
		record.HC = append(record.HC, complex(amplitude, 0)*cmplx.Exp(complex(0, -domain.Deg2Rad(phase))))
	}

	if len(record.Names) == 0 {
		return nil, fmt.Errorf("no constituents found in CSV for station %s", stationID)
	}

	return record, nil
}

// ListStations returns available station IDs.
func (s *ConstituentStore) ListStations() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	stations := make([]string, 0)
	suffix := "_constituents.csv"

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, suffix) {
			stations = append(stations, name[:len(name)-len(suffix)])
		}
	}

	return stations, nil
}
