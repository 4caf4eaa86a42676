package track

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'track'
func tracer() tracing.Trace {
	return tracing.Select("track")
}

var (
	// ErrBadPointCount indicates a control point count too small for a
	// meaningful loop.
	ErrBadPointCount = errors.New("settings need at least 3 control points for a loop")
	// ErrBadDensity indicates a negative spline sample density.
	ErrBadDensity = errors.New("spline density must not be negative")
	// ErrNonFinite indicates a settings field contains NaN/Inf.
	ErrNonFinite = errors.New("settings contain a non-finite value")
)

// Source yields uniform pseudo-random floats in [0,1). A Source is
// deterministic for a given seed and exclusively owned by one
// generation call; see package prng for implementations.
type Source interface {
	NextFloat() float64
}
