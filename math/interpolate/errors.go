package interpolate

import (
	"errors"
	"fmt"
)

// ErrNoPoints is returned when interpolation is requested over an empty
// sample set.
var ErrNoPoints = errors.New("At least one sample point is required.")

// DegenerateInputError reports two samples which share an x value. The basis
// polynomials are undefined for such a set, since (x[I] - x[J]) is zero.
type DegenerateInputError struct {
	I, J int
	X float64
}

func (err *DegenerateInputError) Error() string {
	return fmt.Sprintf(
		"Samples %d and %d share the x value %g; all x values must be distinct.",
		err.I, err.J, err.X,
	)
}

// NonFiniteError reports a sample whose x value is NaN or infinite.
type NonFiniteError struct {
	I int
	X float64
}

func (err *NonFiniteError) Error() string {
	return fmt.Sprintf("Sample %d has a non-finite x value, %g.", err.I, err.X)
}
