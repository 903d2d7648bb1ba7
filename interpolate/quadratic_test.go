package interpolate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadraticEval(t *testing.T) {
	ps := mustPointSet(t, map[float64]float64{1: 2, 2: 3, 3: 4, 4: 5, 5: 6})
	q, err := NewQuadratic(ps)
	require.NoError(t, err)

	y, err := q.Eval(2.3)
	require.NoError(t, err)
	assert.InDelta(t, 3.3, y, 1e-10)

	// Exact matches return the stored ordinate without interpolating.
	y, err = q.Eval(4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, y)
}

func TestQuadraticExactOnParabola(t *testing.T) {
	// y = 2x^2 - 3x + 1 at irregular abscissas. Any three distinct points of
	// a parabola fit it exactly, so every query reproduces it.
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	points := map[float64]float64{}
	for _, x := range []float64{-3, -1, 0, 2, 5, 7} {
		points[x] = f(x)
	}
	q, err := NewQuadratic(mustPointSet(t, points))
	require.NoError(t, err)

	for _, x := range []float64{-4, -2.5, 1.2, 4, 6.9, 8} {
		y, err := q.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, f(x), y, 1e-9, "query %g", x)
	}
}

func TestQuadraticBoundaryNeighborRule(t *testing.T) {
	// Near the right boundary the third point comes from the left of the
	// pair, so the fit uses the last three samples.
	f := func(x float64) float64 { return x * x }
	points := map[float64]float64{}
	for _, x := range []float64{0, 1, 2, 3, 4} {
		points[x] = f(x)
	}
	q, err := NewQuadratic(mustPointSet(t, points))
	require.NoError(t, err)

	y, err := q.Eval(3.5)
	require.NoError(t, err)
	assert.InDelta(t, f(3.5), y, 1e-9)
}

func TestQuadraticInsufficientData(t *testing.T) {
	_, err := NewQuadratic(mustPointSet(t, map[float64]float64{1: 2, 2: 3}))
	require.Error(t, err)

	insuff := &InsufficientDataError{}
	require.True(t, errors.As(err, &insuff))
	assert.Equal(t, 3, insuff.Need)
	assert.Equal(t, 2, insuff.Have)
}
