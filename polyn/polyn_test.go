package polyn

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConstantPolynomial(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewConstantPolynomial(4)
	c, isconst := p.IsConstant()
	assert.True(t, isconst, "p should be constant")
	assert.InDelta(t, 4.0, c, 0.0001)
	assert.Equal(t, 0, p.Degree())
}

func TestNewTrimsZeroTerms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(1, 0, 0, 2)
	assert.Equal(t, 3, p.Degree())
	assert.InDelta(t, 0.0, p.GetCoeffForTerm(1), 0.0001)
	assert.InDelta(t, 2.0, p.GetCoeffForTerm(3), 0.0001)
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(8, 5, 0, 2) // 8 + 5t + 2t³
	assert.InDelta(t, 8.0, p.Eval(0), 0.0001)
	assert.InDelta(t, 15.0, p.Eval(1), 0.0001)
	assert.InDelta(t, 34.0, p.Eval(2), 0.0001)
}

func TestDerivative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(8, 5, 0, 2) // 8 + 5t + 2t³
	d := p.Derivative()  // 5 + 6t²
	assert.Equal(t, 2, d.Degree())
	assert.InDelta(t, 5.0, d.Eval(0), 0.0001)
	assert.InDelta(t, 11.0, d.Eval(1), 0.0001)
	// derivative of a constant is the zero polynomial
	z := NewConstantPolynomial(7).Derivative()
	c, isconst := z.IsConstant()
	assert.True(t, isconst)
	assert.InDelta(t, 0.0, c, 0.0001)
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New(1, 2)
	assert.Equal(t, "{ 1 } { 2 t.1 } ", p.String())
}
