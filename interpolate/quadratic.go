package interpolate

import (
	"gonum.org/v1/gonum/mat"
)

// Quadratic estimates ordinates from the exact parabola through three sample
// points near the query, selected to be as contiguous as possible in sorted
// order.
type Quadratic struct {
	ps *PointSet
	xs *searcher
}

// NewQuadratic creates a quadratic interpolator over ps. ps must contain at
// least three points.
func NewQuadratic(ps *PointSet) (*Quadratic, error) {
	if ps.Len() < 3 {
		return nil, &InsufficientDataError{Need: 3, Have: ps.Len()}
	}
	return &Quadratic{ps, newSearcher(ps.xs)}, nil
}

// Eval returns the estimated ordinate at x. Abscissas which are already in
// the point set return their stored ordinate without interpolating.
//
// The parabola a*x^2 + b*x + c is fit by solving the 3x3 system
// [xi^2, xi, 1] * [a, b, c]^T = yi over the selected points. Distinct
// abscissas always give a unique solution; a degenerate configuration is
// surfaced as a SingularSystemError rather than returned as garbage.
func (q *Quadratic) Eval(x float64) (float64, error) {
	if y, ok := q.ps.Ordinate(x); ok {
		return y, nil
	}

	i, j, k := q.xs.closestThree(x)

	A := mat.NewDense(3, 3, nil)
	b := mat.NewVecDense(3, nil)
	for r, idx := range [3]int{i, j, k} {
		xi, yi := q.ps.At(idx)
		A.Set(r, 0, xi*xi)
		A.Set(r, 1, xi)
		A.Set(r, 2, 1)
		b.SetVec(r, yi)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(A, b); err != nil {
		return 0, &SingularSystemError{err}
	}
	return coef.AtVec(0)*x*x + coef.AtVec(1)*x + coef.AtVec(2), nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (q *Quadratic) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		y, err := q.Eval(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}
	return out[0], nil
}
