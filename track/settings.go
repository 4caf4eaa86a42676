package track

import (
	"fmt"
	"math"

	"github.com/looptrack/looptrack"
)

// Settings is the immutable-per-generation configuration of one
// generation run. The jitter fractions are relative quantities:
// RadiusFraction is a fraction of the canvas half-extent,
// RadiusJitterFraction a fraction of the resulting radius, and
// ThetaJitterFraction a fraction of π. SplineDensity is the number of
// curve samples per unit chord distance.
//
// The zero value is degenerate but harmless; start from
// DefaultSettings.
type Settings struct {
	NumPoints            int     // control point count N
	RadiusFraction       float64 // base radius, fraction of canvas half-extent
	RadiusJitterFraction float64 // radius perturbation, fraction of radius
	ThetaJitterFraction  float64 // angle perturbation, fraction of π
	SplineDensity        float64 // samples per unit distance
	Seed                 string  // PRNG seed, integer or free text
	Width                float64 // canvas width in pixels
	Height               float64 // canvas height in pixels
}

// DefaultSettings returns the documented default configuration.
func DefaultSettings() Settings {
	return Settings{
		NumPoints:            10,
		RadiusFraction:       0.65,
		RadiusJitterFraction: 0.25,
		ThetaJitterFraction:  0.25,
		SplineDensity:        1.0,
		Width:                512,
		Height:               512,
	}
}

// Center returns the canvas center point.
func (s Settings) Center() looptrack.Pair {
	return looptrack.P(s.Width/2, s.Height/2)
}

// HalfExtent returns half the smaller canvas dimension, the length all
// radius fractions are relative to.
func (s Settings) HalfExtent() float64 {
	return math.Min(s.Width, s.Height) / 2
}

// Validate reports suspect settings for callers that want pre-flight
// checking. Generate itself never validates: the legacy contract is
// that every numeric input maps to some (possibly degenerate) output.
func (s Settings) Validate() error {
	if s.NumPoints < 3 {
		return fmt.Errorf("%w: got %d", ErrBadPointCount, s.NumPoints)
	}
	if s.SplineDensity < 0 {
		return fmt.Errorf("%w: got %g", ErrBadDensity, s.SplineDensity)
	}
	for name, v := range map[string]float64{
		"radius fraction":        s.RadiusFraction,
		"radius jitter fraction": s.RadiusJitterFraction,
		"theta jitter fraction":  s.ThetaJitterFraction,
		"spline density":         s.SplineDensity,
		"width":                  s.Width,
		"height":                 s.Height,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrNonFinite, name, v)
		}
	}
	return nil
}
