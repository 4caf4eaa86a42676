package track

import (
	"iter"
	"math"

	"github.com/looptrack/looptrack"
	"github.com/looptrack/looptrack/polyn"
)

// Segment is the cubic curve interpolating between two adjacent control
// points. Segment i of a loop spans from control point i+1 to i+2 and
// is shaped by the wrapping window of points i .. i+3.
type Segment struct {
	x, y  polyn.Polynomial // coordinate cubics in the parameter t
	chord float64          // distance between the two interpolated points
}

// Segment returns the spline segment for window i. Any i is valid;
// indices wrap like Z. On loops with fewer than 4 points the window
// repeats indices, which yields a degenerate but well-defined cubic.
func (l Loop) Segment(i int) Segment {
	p0, p1, p2, p3 := l.Z(i), l.Z(i+1), l.Z(i+2), l.Z(i+3)
	return Segment{
		x:     catmullRom(p0.X(), p1.X(), p2.X(), p3.X()),
		y:     catmullRom(p0.Y(), p1.Y(), p2.Y(), p3.Y()),
		chord: looptrack.Dist(p1, p2),
	}
}

// catmullRom returns the uniform Catmull-Rom basis cubic through c1
// (at t=0) and c2 (at t=1):
//
//	0.5·(2c1 + (-c0+c2)t + (2c0-5c1+4c2-c3)t² + (-c0+3c1-3c2+c3)t³)
func catmullRom(c0, c1, c2, c3 float64) polyn.Polynomial {
	return polyn.New(
		c1,
		0.5*(-c0+c2),
		0.5*(2*c0-5*c1+4*c2-c3),
		0.5*(-c0+3*c1-3*c2+c3),
	)
}

// At evaluates the segment at parametric value t. At(0) is the
// segment's first interpolated control point; t is not clamped.
func (sg Segment) At(t float64) looptrack.Pair {
	return looptrack.P(sg.x.Eval(t), sg.y.Eval(t))
}

// Tangent evaluates the segment's direction vector at t. Tangents of
// consecutive segments agree at the seam (t=1 vs. t=0).
func (sg Segment) Tangent(t float64) looptrack.Pair {
	return looptrack.P(sg.x.Derivative().Eval(t), sg.y.Derivative().Eval(t))
}

// ChordLength returns the distance between the segment's two
// interpolated control points.
func (sg Segment) ChordLength() float64 {
	return sg.chord
}

// SampleCount returns the number of samples this segment contributes
// at the given density: floor(chord · density), never negative. A
// count of 0 means the segment is skipped entirely.
func (sg Segment) SampleCount(density float64) int {
	cnt := int(math.Floor(sg.chord * density))
	if cnt < 0 {
		return 0
	}
	return cnt
}

// Samples returns the smoothed curve as a lazy, restartable sequence
// of sample points. One segment is emitted per control point index;
// within segment i samples are ordered by t = j/sampleCount for
// j = 0 .. sampleCount-1. t=1 itself is never sampled: the next
// segment's t=0 covers the seam, so shared endpoints are not emitted
// twice.
func Samples(l Loop, density float64) iter.Seq[looptrack.Pair] {
	return func(yield func(looptrack.Pair) bool) {
		n := l.N()
		for i := 0; i < n; i++ {
			sg := l.Segment(i)
			cnt := sg.SampleCount(density)
			for j := 0; j < cnt; j++ {
				t := float64(j) / float64(cnt)
				if !yield(sg.At(t)) {
					return
				}
			}
		}
	}
}
