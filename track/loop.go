package track

import (
	"fmt"

	"github.com/looptrack/looptrack"
)

// Loop is a fixed-length, logically circular control point sequence.
// Index arithmetic wraps modulo N in both directions. A Loop is never
// mutated after creation; regeneration produces a new one.
type Loop struct {
	points []looptrack.Pair
}

// LoopOf creates a loop from explicit control points. The points are
// copied.
func LoopOf(points ...looptrack.Pair) Loop {
	pts := make([]looptrack.Pair, len(points))
	copy(pts, points)
	return Loop{points: pts}
}

// N returns the control point count.
func (l Loop) N() int {
	return len(l.points)
}

// Z returns the control point at position (i mod N), for any i,
// negative included. Z panics on an empty loop.
func (l Loop) Z(i int) looptrack.Pair {
	n := len(l.points)
	i %= n
	if i < 0 {
		i += n
	}
	return l.points[i]
}

// Points returns a copy of the control points in generation order.
func (l Loop) Points() []looptrack.Pair {
	pts := make([]looptrack.Pair, len(l.points))
	copy(pts, l.points)
	return pts
}

// AsString returns the loop knots as a (debugging) string, e.g.
//
//	(1,1) .. (2,2) .. (3,1) .. cycle
func AsString(l Loop) string {
	var s string
	for i := 0; i < l.N(); i++ {
		if i > 0 {
			s += " .. "
		}
		s += fmt.Sprintf("(%.4g,%.4g)", l.Z(i).X(), l.Z(i).Y())
	}
	if l.N() > 0 {
		s += " .. cycle"
	}
	return s
}
