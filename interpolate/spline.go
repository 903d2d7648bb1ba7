package interpolate

// Spline is a natural cubic spline over a point set. The second derivative at
// every sample point is solved for globally, with the boundary second
// derivatives pinned to zero, and the resulting table is frozen for the
// lifetime of the spline. Queries outside the sample range are projected
// linearly using the first derivative implied by the boundary segment.
type Spline struct {
	ps  *PointSet
	xs  *searcher
	y2s []float64
}

// NewSpline builds the second-derivative table for ps. ps must contain at
// least five points.
func NewSpline(ps *PointSet) (*Spline, error) {
	if ps.Len() < 5 {
		return nil, &InsufficientDataError{Need: 5, Have: ps.Len()}
	}

	sp := &Spline{ps: ps, xs: newSearcher(ps.xs)}
	sp.y2s = make([]float64, ps.Len())
	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	return sp, nil
}

// calcY2s solves for the second derivative at every sample point. The
// interior points form a tridiagonal system; the natural boundary condition
// pins both ends to zero.
func (sp *Spline) calcY2s() error {
	n := sp.ps.Len()
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.ps.xs, sp.ps.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = (ys[j+1]-ys[j])/(xs[j+1]-xs[j]) -
			(ys[j]-ys[j-1])/(xs[j]-xs[j-1])
	}

	return triDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

// Y2 returns the second derivative at the i'th sample point.
func (sp *Spline) Y2(i int) float64 { return sp.y2s[i] }

// Eval returns the spline's value at x. Abscissas which are already in the
// point set return their stored ordinate, and queries outside the sample
// range are extrapolated linearly from the nearer boundary segment.
func (sp *Spline) Eval(x float64) (float64, error) {
	if y, ok := sp.ps.Ordinate(x); ok {
		return y, nil
	}

	xs, n := sp.ps.xs, sp.ps.Len()
	if x < xs[0] {
		return sp.extrapolate(x, true), nil
	} else if x > xs[n-1] {
		return sp.extrapolate(x, false), nil
	}

	i, j := sp.xs.closestPair(x)
	x1, y1 := sp.ps.At(i)
	x2, y2 := sp.ps.At(j)

	h := x2 - x1
	a := (x2 - x) / h
	b := 1 - a
	c := (a*a*a - a) * h * h / 6
	d := (b*b*b - b) * h * h / 6
	return a*y1 + b*y2 + c*sp.y2s[i] + d*sp.y2s[j], nil
}

// extrapolate projects linearly from the lower point of the boundary
// segment, using the segment's chord slope corrected by its interior second
// derivative. The boundary second derivative itself is always zero, so below
// the range this continues the spline's endpoint slope exactly.
func (sp *Spline) extrapolate(x float64, below bool) float64 {
	n := sp.ps.Len()
	i, j, k := n-2, n-1, n-2
	if below {
		i, j, k = 0, 1, 1
	}

	x1, y1 := sp.ps.At(i)
	x2, y2 := sp.ps.At(j)

	h := x2 - x1
	d1 := (y2-y1)/h - h*sp.y2s[k]/6
	return y1 - (x1-x)*d1
}

// EvalAll evaluates the spline at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		y, err := sp.Eval(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}
	return out[0], nil
}

// segCoeffs returns the cubic coefficients of segment i in powers of
// x - xs[i].
func (sp *Spline) segCoeffs(i int) (a, b, c, d float64) {
	xs, ys, y2s := sp.ps.xs, sp.ps.ys, sp.y2s
	h := xs[i+1] - xs[i]

	a = (y2s[i+1] - y2s[i]) / (6 * h)
	b = y2s[i] / 2
	c = (ys[i+1]-ys[i])/h - h*(y2s[i]/3+y2s[i+1]/6)
	d = ys[i]
	return a, b, c, d
}

// segment returns the index of the segment containing x.
func (sp *Spline) segment(x float64) int {
	i := sp.xs.search(x)
	if i == sp.ps.Len()-1 {
		i--
	}
	return i
}

// Deriv computes the derivative of the spline at x to the given order.
// Orders above three are identically zero.
//
// x must be within the sample range.
func (sp *Spline) Deriv(x float64, order int) (float64, error) {
	xs, n := sp.ps.xs, sp.ps.Len()
	if x < xs[0] || x > xs[n-1] {
		return 0, &OutOfRangeError{x, xs[0], xs[n-1]}
	}

	i := sp.segment(x)
	a, b, c, d := sp.segCoeffs(i)
	dx := x - xs[i]
	switch order {
	case 0:
		return a*dx*dx*dx + b*dx*dx + c*dx + d, nil
	case 1:
		return 3*a*dx*dx + 2*b*dx + c, nil
	case 2:
		return 6*a*dx + 2*b, nil
	case 3:
		return 6 * a, nil
	default:
		return 0, nil
	}
}

// Integrate integrates the spline from lo to hi. Both bounds must be within
// the sample range.
func (sp *Spline) Integrate(lo, hi float64) (float64, error) {
	if lo > hi {
		sum, err := sp.Integrate(hi, lo)
		return -sum, err
	}

	xs, n := sp.ps.xs, sp.ps.Len()
	if lo < xs[0] || lo > xs[n-1] {
		return 0, &OutOfRangeError{lo, xs[0], xs[n-1]}
	} else if hi < xs[0] || hi > xs[n-1] {
		return 0, &OutOfRangeError{hi, xs[0], xs[n-1]}
	}

	iLo, iHi := sp.segment(lo), sp.segment(hi)
	if iLo == iHi {
		return sp.integTerm(iLo, lo, hi), nil
	}

	sum := sp.integTerm(iLo, lo, xs[iLo+1]) +
		sp.integTerm(iHi, xs[iHi], hi)
	for i := iLo + 1; i < iHi; i++ {
		sum += sp.integTerm(i, xs[i], xs[i+1])
	}
	return sum, nil
}

func (sp *Spline) integTerm(i int, lo, hi float64) float64 {
	a, b, c, d := sp.segCoeffs(i)
	x0 := sp.ps.xs[i]

	value := func(x float64) float64 {
		dx := x - x0
		return a*dx*dx*dx*dx/4 + b*dx*dx*dx/3 + c*dx*dx/2 + d*dx
	}
	return value(hi) - value(lo)
}
