package interpolate

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Method selects one of the interpolation strategies.
type Method int

const (
	LinearMethod Method = iota
	QuadraticMethod
	CubicMethod
)

func (m Method) String() string {
	switch m {
	case LinearMethod:
		return "linear"
	case QuadraticMethod:
		return "quadratic"
	case CubicMethod:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name, as it would appear in a config file, onto
// its Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "linear":
		return LinearMethod, nil
	case "quadratic":
		return QuadraticMethod, nil
	case "cubic":
		return CubicMethod, nil
	default:
		return 0, fmt.Errorf("unknown interpolation method %q", name)
	}
}

// Strategy is implemented by the three interpolation strategies.
type Strategy interface {
	Eval(x float64) (float64, error)
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
}

var (
	_ Strategy = &Linear{}
	_ Strategy = &Quadratic{}
	_ Strategy = &Spline{}
)

// Interpolator binds one point set for its lifetime and dispatches queries
// to the linear, quadratic, or cubic strategy. The spline's second-derivative
// table is built at most once per point set and shared read-only across
// queries, so concurrent use is safe.
type Interpolator struct {
	ps *PointSet

	splineOnce sync.Once
	spline     *Spline
	splineErr  error
}

// New binds an interpolator to the given abscissa -> ordinate mapping.
// Entries whose ordinate is not finite are dropped, matching NewPointSet.
func New(points map[float64]float64) (*Interpolator, error) {
	ps, err := NewPointSet(points)
	if err != nil {
		return nil, err
	}
	return NewFromPointSet(ps), nil
}

// NewFromPointSet binds an interpolator to an already-constructed point set.
func NewFromPointSet(ps *PointSet) *Interpolator {
	return &Interpolator{ps: ps}
}

// PointSet returns the point set the interpolator is bound to.
func (in *Interpolator) PointSet() *PointSet { return in.ps }

// Interpolate estimates the ordinate at x using the given method.
func (in *Interpolator) Interpolate(m Method, x float64) (float64, error) {
	switch m {
	case LinearMethod:
		return in.Linear(x)
	case QuadraticMethod:
		return in.Quadratic(x)
	case CubicMethod:
		return in.Cubic(x)
	default:
		return 0, fmt.Errorf("unknown interpolation method %d", int(m))
	}
}

// Linear estimates the ordinate at x from the two nearest sample points.
func (in *Interpolator) Linear(x float64) (float64, error) {
	if err := checkQuery(x); err != nil {
		return 0, err
	}
	lin, err := NewLinear(in.ps)
	if err != nil {
		return 0, err
	}
	return lin.Eval(x)
}

// Quadratic estimates the ordinate at x from the parabola through the three
// nearest sample points.
func (in *Interpolator) Quadratic(x float64) (float64, error) {
	if err := checkQuery(x); err != nil {
		return 0, err
	}
	q, err := NewQuadratic(in.ps)
	if err != nil {
		return 0, err
	}
	return q.Eval(x)
}

// Cubic estimates the ordinate at x from a natural cubic spline through all
// sample points, extrapolating linearly outside the sample range.
func (in *Interpolator) Cubic(x float64) (float64, error) {
	if err := checkQuery(x); err != nil {
		return 0, err
	}
	in.splineOnce.Do(func() {
		in.spline, in.splineErr = NewSpline(in.ps)
	})
	if in.splineErr != nil {
		return 0, in.splineErr
	}
	return in.spline.Eval(x)
}

func checkQuery(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return &InvalidInputError{x}
	}
	return nil
}
