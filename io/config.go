/*Package io reads interpolation configs and sample-point tables from disk.
The core interpolate package never touches the filesystem; everything here is
glue between text files and its point sets.
*/
package io

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# File containing the sample points, one point per line, as whitespace
# separated columns of numbers.
PointFile = path/to/points.txt

#######################
# Optional Parameters #
#######################

# Interpolation method. Must be one of [ Linear | Quadratic | Cubic ].
# Default is Cubic.
# Method = Cubic

# Zero-indexed columns of the point file holding the abscissas and ordinates.
# Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# Location to write log statements to. Default is stderr.
# LogFile = log.out`

// InterpolateConfig is the contents of an [Interpolate] config section.
type InterpolateConfig struct {
	// Required
	PointFile string
	// Optional
	Method           string
	XColumn, YColumn int
	LogFile          string
}

type interpolateWrapper struct {
	Interpolate InterpolateConfig
}

func defaultInterpolateWrapper() *interpolateWrapper {
	return &interpolateWrapper{InterpolateConfig{
		Method:  "Cubic",
		XColumn: 0,
		YColumn: 1,
	}}
}

// ReadConfig reads an [Interpolate] section from the given gcfg config file.
func ReadConfig(fname string) (*InterpolateConfig, error) {
	wrap := defaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, errors.Wrapf(err, "couldn't read config file %s", fname)
	}

	con := &wrap.Interpolate
	if con.PointFile == "" {
		return nil, fmt.Errorf(
			"config file %s needs the PointFile parameter", fname,
		)
	}
	if con.XColumn < 0 || con.YColumn < 0 {
		return nil, fmt.Errorf(
			"config file %s gives a negative column index", fname,
		)
	}
	return con, nil
}
