// Package rips: functional options and the FaceSet result type.
package rips

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tedea/metric"
	"github.com/katalvlaran/tedea/simplex"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("rips: invalid option supplied")

// Option configures complex construction via functional arguments.
// An invalid option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*options)

// options holds construction parameters.
type options struct {
	metric metric.Metric

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the construction defaults: Euclidean metric.
func defaultOptions() options {
	return options{metric: metric.Euclidean{}}
}

// WithMetric selects the distance function used for the proximity graph.
// Passing nil is an option violation.
func WithMetric(m metric.Metric) Option {
	return func(o *options) {
		if m == nil {
			o.err = fmt.Errorf("%w: metric is nil", ErrOptionViolation)
			return
		}
		o.metric = m
	}
}

// FaceSet is the set of faces of a complex at one dimension.
//
// None marks dimensions at which the complex has no faces: p < 0,
// p > Dim(), or any p of the empty complex. This is an explicit tagged
// case rather than an empty list, because the boundary-matrix shape rules
// treat an absent chain space as a single phantom slot (see
// Complex.BoundaryMatrix) and the two situations must not be confused.
type FaceSet struct {
	// Dim is the dimension this set was requested at.
	Dim int

	// None reports that no faces exist at this dimension.
	None bool

	// Faces holds the distinct faces, sorted lexicographically.
	// Empty iff None.
	Faces []simplex.Simplex
}
