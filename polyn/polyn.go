// Package polyn implements arithmetic with univariate polynomials.
//
// The spline rasterizer represents each Catmull-Rom segment as a pair of
// cubic polynomials in the curve parameter t, one for each coordinate.
// This package holds those cubics and knows how to evaluate them and
// their derivatives.
/*
# BSD License

# Copyright (c) the looptrack authors

All rights reserved.

Please refer to the license file for more information.
*/
package polyn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polyn'
func tracer() tracing.Trace {
	return tracing.Select("polyn")
}

// numbers below ε are considered 0
const _epsilon = 0.0000001

func is0(n float64) bool {
	return math.Abs(n) <= _epsilon
}

// Polynomial is a type for univariate polynomials
//
//	c + a.1 t + a.2 t² + ... + a.n tⁿ .
//
// We store the coefficients only, in a TreeMap (sorted map) keyed by
// exponent. Index 0 is the constant term. Coefficients are of type
// float64.
type Polynomial struct {
	Terms *treemap.Map
}

// New creates a polynomial from its coefficients, lowest exponent first.
//
// Use it as
//
//	polyn.New(8, 5, 0, 2)
//
// to get
//
//	P(t) = 8 + 5t + 2t³
func New(coeffs ...float64) Polynomial {
	p := NewConstantPolynomial(0)
	for i, c := range coeffs {
		p.SetTerm(i, c)
	}
	return p.Zap()
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for the term tⁱ within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, scale)
	return p
}

// GetCoeffForTerm gets the coefficient for the term tⁱ.
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	p.checkTerms()
	if sc, found := p.Terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// Degree returns the highest exponent with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	p.checkTerms()
	deg := 0
	it := p.Terms.Iterator()
	for it.Next() {
		if i := it.Key().(int); i > deg && !is0(it.Value().(float64)) {
			deg = i
		}
	}
	return deg
}

// IsConstant checks wether a Polynomial is a constant, i.e. p = { c }.
// Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	p.checkTerms()
	return p.GetCoeffForTerm(0), p.Degree() == 0
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	positions := p.Terms.Keys()     // all terms of p
	for _, pos := range positions { // inspect terms
		if scale, _ := p.Terms.Get(pos); is0(scale.(float64)) {
			p.Terms.Remove(pos) // may lose constant term c
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0) // set p = 0: re-introduce c
	}
	return p
}

// Eval evaluates P(t).
func (p Polynomial) Eval(t float64) float64 {
	p.checkTerms()
	v := 0.0
	it := p.Terms.Iterator()
	for it.Next() {
		i := it.Key().(int)
		c := it.Value().(float64)
		if i == 0 {
			v += c
		} else {
			v += c * math.Pow(t, float64(i))
		}
	}
	return v
}

// Derivative returns P′, the first derivative of P, as a new Polynomial.
// The argument is unchanged.
func (p Polynomial) Derivative() Polynomial {
	p.checkTerms()
	d := NewConstantPolynomial(0)
	it := p.Terms.Iterator()
	for it.Next() {
		i := it.Key().(int)
		c := it.Value().(float64)
		if i > 0 {
			d.SetTerm(i-1, float64(i)*c)
		}
	}
	tracer().Debugf("d/dt %s = %s", p, d)
	return d.Zap()
}

// String creates a readable string representation for a Polynomial.
// Terms are printed in a generic form { a.i t.i }, where i is the
// exponent of the term.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		scale := it.Value().(float64)
		if pos == 0 { // constant term
			buffer.WriteString(fmt.Sprintf("{ %g } ", scale))
		} else {
			buffer.WriteString(fmt.Sprintf("{ %g t.%d } ", scale, pos))
		}
	}
	return buffer.String()
}
