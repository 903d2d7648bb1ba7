package interpolate

import (
	"fmt"
)

// InvalidInputError reports a query or abscissa which is not a finite real
// number.
type InvalidInputError struct {
	X float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("value %g is not a finite number", e.X)
}

// InsufficientDataError reports a point set with fewer distinct sample points
// than the requested method needs.
type InsufficientDataError struct {
	Need, Have int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"method needs %d distinct points, but the point set contains %d",
		e.Need, e.Have,
	)
}

// SingularSystemError reports a coefficient matrix with no unique solution.
type SingularSystemError struct {
	Err error
}

func (e *SingularSystemError) Error() string {
	if e.Err == nil {
		return "coefficient matrix is singular"
	}
	return fmt.Sprintf("coefficient matrix is singular: %v", e.Err)
}

func (e *SingularSystemError) Unwrap() error { return e.Err }

// OutOfRangeError reports a value outside the sample range of an operation
// which does not extrapolate.
type OutOfRangeError struct {
	X, Low, High float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %g out of bounds [%g, %g]", e.X, e.Low, e.High)
}
