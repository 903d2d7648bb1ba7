package io

import (
	"math"

	"github.com/phil-mansfield/table"
	"github.com/pkg/errors"
)

// ReadPoints reads sample points from a whitespace-delimited numeric text
// file, taking abscissas from column xCol and ordinates from column yCol.
// Rows whose ordinate is not finite are treated as missing and skipped.
func ReadPoints(fname string, xCol, yCol int) (map[float64]float64, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read point file %s", fname)
	}

	xs, ys := cols[0], cols[1]
	points := make(map[float64]float64, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		points[xs[i]] = ys[i]
	}
	return points, nil
}
