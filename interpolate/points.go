/*Package interpolate estimates the values of a scalar function known only at
a discrete, irregularly-spaced set of sample points. Three strategies are
provided: a line through the two points nearest the query, an exact quadratic
through the three nearest points, and a natural cubic spline fit globally
across all points.
*/
package interpolate

import (
	"math"
	"sort"
)

// PointSet is an immutable mapping from sample abscissas to ordinates. The
// sorted abscissa sequence is computed at construction and shared, read-only,
// by every interpolator bound to the set.
type PointSet struct {
	xs, ys []float64
	idx    map[float64]int
}

// NewPointSet builds a point set from an abscissa -> ordinate mapping.
// Entries whose ordinate is not a finite number are treated as missing and
// dropped. Abscissas must all be finite.
func NewPointSet(points map[float64]float64) (*PointSet, error) {
	ps := &PointSet{}
	for x, y := range points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &InvalidInputError{x}
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ps.xs = append(ps.xs, x)
	}

	sort.Float64s(ps.xs)

	ps.ys = make([]float64, len(ps.xs))
	ps.idx = make(map[float64]int, len(ps.xs))
	for i, x := range ps.xs {
		ps.ys[i] = points[x]
		ps.idx[x] = i
	}
	return ps, nil
}

// Len returns the number of points in the set.
func (ps *PointSet) Len() int { return len(ps.xs) }

// At returns the i'th point in ascending abscissa order.
func (ps *PointSet) At(i int) (x, y float64) { return ps.xs[i], ps.ys[i] }

// Ordinate returns the ordinate stored for x if x is one of the sample
// abscissas.
func (ps *PointSet) Ordinate(x float64) (float64, bool) {
	i, ok := ps.idx[x]
	if !ok {
		return 0, false
	}
	return ps.ys[i], true
}

// Bounds returns the smallest and largest sample abscissa.
func (ps *PointSet) Bounds() (low, high float64) {
	return ps.xs[0], ps.xs[len(ps.xs)-1]
}
