package table

import "fmt"

// NoDataError indicates an exact-match selection found no rows.
type NoDataError struct {
	Organism string
	Drug     string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for organism %q and drug %q", e.Organism, e.Drug)
}

// InvalidValueError indicates a non-positive percentile value, which a
// log-scaled axis cannot represent.
type InvalidValueError struct {
	Organism string
	Drug     string
	Year     int
	Column   string
	Value    float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s – %s, year %d: %s = %g must be strictly positive for log scaling",
		e.Organism, e.Drug, e.Year, e.Column, e.Value)
}
