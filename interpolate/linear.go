package interpolate

// Linear estimates ordinates from the line through the two sample points
// nearest the query.
type Linear struct {
	ps *PointSet
	xs *searcher
}

// NewLinear creates a linear interpolator over ps. ps must contain at least
// two points.
func NewLinear(ps *PointSet) (*Linear, error) {
	if ps.Len() < 2 {
		return nil, &InsufficientDataError{Need: 2, Have: ps.Len()}
	}
	return &Linear{ps, newSearcher(ps.xs)}, nil
}

// Eval returns the estimated ordinate at x. Abscissas which are already in
// the point set return their stored ordinate without interpolating.
func (lin *Linear) Eval(x float64) (float64, error) {
	if y, ok := lin.ps.Ordinate(x); ok {
		return y, nil
	}

	i, j := lin.xs.closestPair(x)
	x1, y1 := lin.ps.At(i)
	x2, y2 := lin.ps.At(j)

	m := (y2 - y1) / (x2 - x1)
	return m*x + (y1 - x1*m), nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		y, err := lin.Eval(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}
	return out[0], nil
}
