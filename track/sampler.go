package track

import (
	"math"

	"github.com/looptrack/looptrack"
)

// Generate places the loop's control points on a jittered circle and
// returns them as a new Loop of exactly max(settings.NumPoints, 0)
// points, in generation order.
//
// For point i the base angle is (i/N)·2π; radius and angle are then
// perturbed with two independent draws from src, each mapped from
// [0,1) to [-1,1). Jitter may push points out of strict angular order
// or off the canvas; neither is corrected. Generate draws exactly two
// values per point regardless of the jitter fractions, so the draw
// sequence stays aligned across settings variations.
//
// Generate never fails on numeric edge cases. It panics on a nil src,
// which is caller misuse, not bad input.
func Generate(settings Settings, src Source) Loop {
	n := settings.NumPoints
	if n <= 0 {
		return Loop{}
	}
	if src == nil {
		panic("cannot generate control points without a random source")
	}
	center := settings.Center()
	half := settings.HalfExtent()
	pts := make([]looptrack.Pair, n)
	for i := 0; i < n; i++ {
		jitterR := src.NextFloat()*2 - 1
		jitterT := src.NextFloat()*2 - 1
		radius := settings.RadiusFraction*half +
			jitterR*settings.RadiusJitterFraction*settings.RadiusFraction*half
		theta := float64(i)/float64(n)*2*math.Pi +
			jitterT*settings.ThetaJitterFraction*math.Pi
		pts[i] = center + looptrack.Polar(radius, theta)
	}
	loop := Loop{points: pts}
	tracer().Debugf("generated %d control points: %s", n, AsString(loop))
	return loop
}
