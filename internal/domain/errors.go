package domain

import (
	"fmt"
	"strings"
)

// InvalidTimeError reports a non-finite time sample passed to the
// astronomical calculators.
type InvalidTimeError struct {
	Value float64
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time value: %v", e.Value)
}

// UnknownConstituentError reports a constituent name absent from the catalog.
type UnknownConstituentError struct {
	Name string
}

func (e *UnknownConstituentError) Error() string {
	return fmt.Sprintf("unknown tidal constituent: %q", e.Name)
}

// AmbiguousConstituentError reports a Doodson-number reverse lookup that
// matched no catalog entry.
type AmbiguousConstituentError struct {
	Doodson string
}

func (e *AmbiguousConstituentError) Error() string {
	return fmt.Sprintf("no constituent matches Doodson number %s", e.Doodson)
}

// UnsupportedCorrectionError reports a (constituent, corrections) pair for
// which no nodal formula is implemented.
type UnsupportedCorrectionError struct {
	Constituent string
	Corrections Corrections
}

func (e *UnsupportedCorrectionError) Error() string {
	return fmt.Sprintf("no %s nodal correction for constituent %q",
		e.Corrections, e.Constituent)
}

// InsufficientConstituentsError reports that too few of the canonical major
// constituents were available for minor-constituent inference.
type InsufficientConstituentsError struct {
	Missing []string
}

func (e *InsufficientConstituentsError) Error() string {
	return fmt.Sprintf("not enough major constituents for inference (missing %s)",
		strings.Join(e.Missing, ", "))
}
