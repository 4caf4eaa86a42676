package looptrack

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestPolar(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Polar(2, math.Pi/2)
	if !p.Equal(P(0, 2)) {
		t.Errorf("Expected polar(2,π/2) to be (0,2), is %v", p)
	}
	if !Polar(1, math.Pi).Equal(P(-1, 0)) {
		t.Errorf("Expected polar(1,π) to be (-1,0)")
	}
}

func TestDist(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := Dist(P(1, 1), P(4, 5))
	if !Is0(d - 5) {
		t.Errorf("Expected |(1,1)-(4,5)| = 5, is %g", d)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !Rotation(math.Pi).Transform(P(1, 0)).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Scaling(2, 3)
	if !m.Transform(P(1, 1)).Equal(P(2, 3)) {
		t.Errorf("Expected (1,1) scaled (2,3) to be (2,3)")
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then translate
	m := Scaling(2, 2).Combine(Translation(P(1, 0)))
	q := m.Transform(P(1, 1))
	if !q.Equal(P(3, 2)) {
		t.Errorf("Expected combined transform of (1,1) to be (3,2), is %v", q)
	}
}
