package interpolate

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestPair(t *testing.T) {
	s := newSearcher([]float64{1, 2, 3, 4, 5})

	tests := []struct {
		x    float64
		i, j int
	}{
		{1.5, 0, 1},
		{2.9, 1, 2},
		{4.5, 3, 4},
		{0.0, 0, 1},  // below the range
		{9.0, 3, 4},  // above the range
		{2.0, 0, 1},  // tie between 1 and 3 prefers 1
		{2.5, 1, 2},  // midpoint tie prefers the smaller abscissa
	}
	for n, test := range tests {
		i, j := s.closestPair(test.x)
		assert.Equal(t, test.i, i, "test %d, query %g", n+1, test.x)
		assert.Equal(t, test.j, j, "test %d, query %g", n+1, test.x)
	}
}

func TestClosestPairLopsidedSpacing(t *testing.T) {
	// The two nearest points need not bracket the query.
	s := newSearcher([]float64{0, 10, 11})
	i, j := s.closestPair(9.5)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, j)
}

func TestClosestPairNeverSkipsACloserPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		xs := make([]float64, 2+rng.Intn(20))
		for i := range xs {
			xs[i] = rng.Float64() * 100
		}
		sort.Float64s(xs)

		s := newSearcher(xs)
		x := rng.Float64()*120 - 10

		i, j := s.closestPair(x)
		selected := math.Max(
			math.Abs(x-xs[i]), math.Abs(x-xs[j]),
		)
		for k := range xs {
			if k == i || k == j {
				continue
			}
			assert.LessOrEqual(
				t, selected, math.Abs(x-xs[k]),
				"trial %d: skipped point %g closer to %g than pair (%g, %g)",
				trial, xs[k], x, xs[i], xs[j],
			)
		}
	}
}

func TestClosestThree(t *testing.T) {
	s := newSearcher([]float64{1, 2, 3, 4, 5})

	tests := []struct {
		x       float64
		i, j, k int
	}{
		{2.3, 1, 2, 3}, // pair (2, 3), point after the pair
		{1.5, 0, 1, 2},
		{4.5, 2, 3, 4}, // pair in the last two positions, point before
		{3.5, 1, 2, 3}, // pair (3, 4), following index is second-to-last
		{9.0, 2, 3, 4},
		{0.0, 0, 1, 2},
	}
	for n, test := range tests {
		i, j, k := s.closestThree(test.x)
		assert.Equal(
			t, [3]int{test.i, test.j, test.k}, [3]int{i, j, k},
			"test %d, query %g", n+1, test.x,
		)
	}
}

func TestClosestThreeSmallSet(t *testing.T) {
	s := newSearcher([]float64{1, 2, 3})

	i, j, k := s.closestThree(1.1)
	assert.Equal(t, [3]int{0, 1, 2}, [3]int{i, j, k})
	i, j, k = s.closestThree(2.9)
	assert.Equal(t, [3]int{0, 1, 2}, [3]int{i, j, k})
}

func TestSearchNonUniformSpacing(t *testing.T) {
	// Defeats the uniform-spacing guess so the binary search runs.
	xs := []float64{0, 0.01, 0.02, 0.05, 30, 100}
	s := newSearcher(xs)

	for i := 0; i < len(xs)-1; i++ {
		mid := (xs[i] + xs[i+1]) / 2
		assert.Equal(t, i, s.search(mid), "midpoint of segment %d", i)
	}
	assert.Equal(t, 0, s.search(-5))
	assert.Equal(t, len(xs)-1, s.search(200))
}
