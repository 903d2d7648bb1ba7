package interpolate

// searcher selects neighbors of query values within a sorted abscissa
// sequence using a uniform-spacing guess followed by binary search.
type searcher struct {
	xs []float64
	dx float64
}

func newSearcher(xs []float64) *searcher {
	return &searcher{xs, (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)}
}

// search returns the index of the largest abscissa no greater than x, with x
// clamped to the sample range.
func (s *searcher) search(x float64) int {
	n := len(s.xs)
	if x <= s.xs[0] {
		return 0
	} else if x >= s.xs[n-1] {
		return n - 1
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.xs[0]) / s.dx)
	if guess >= 0 && guess < n-1 &&
		s.xs[guess] <= x && s.xs[guess+1] >= x {

		return guess
	}

	// Binary search.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// closestPair returns the indices of the two abscissas whose absolute
// distance to x is smallest, in ascending order. Ties prefer the smaller
// abscissa. In a sorted sequence the two nearest points are always adjacent,
// so the pair brackets x except when x lies outside the sample range or the
// spacing is lopsided enough that both neighbors sit on one side.
func (s *searcher) closestPair(x float64) (int, int) {
	n := len(s.xs)

	i := s.search(x)
	a := i
	if i < n-1 && x-s.xs[i] > s.xs[i+1]-x {
		a = i + 1
	}

	lo, hi := a-1, a+1
	switch {
	case lo < 0:
		return a, hi
	case hi >= n:
		return lo, a
	case x-s.xs[lo] <= s.xs[hi]-x:
		return lo, a
	default:
		return a, hi
	}
}

// closestThree returns the indices of three abscissas near x which are as
// contiguous as possible in sorted order: the two closest points, plus the
// point following the pair unless the pair sits in the last two positions of
// the sequence, in which case the point preceding the pair is used. The
// fallback flips at the left edge, where no preceding point exists.
func (s *searcher) closestThree(x float64) (int, int, int) {
	i, j := s.closestPair(x)
	switch {
	case j < len(s.xs)-2:
		return i, j, j + 1
	case i > 0:
		return i - 1, i, j
	default:
		return i, j, j + 1
	}
}
