// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
)

// A Marginal is one univariate random variable: a distribution family,
// an ordered parameter vector, and the support bounds derived from it.
//
// PDF and CDF are piecewise-defined over the whole real line and clamp
// outside the support; InvCDF is the generalized inverse of CDF on
// (0, 1), mapping u=0 and u=1 to the (possibly infinite) support
// bounds. Sampling is inverse-transform sampling, so a marginal's draw
// sequence is fully determined by the generator stream it is handed.
type Marginal struct {
	family Family
	name   string
	params []float64
	lower  float64
	upper  float64
	ops    *familyOps
}

// New returns a marginal of the given family. The parameter count,
// order, and constraints are family-specific; see the package
// documentation table. Parameters must all be finite.
func New(family Family, params ...float64) (*Marginal, error) {
	return NewNamed(family, "", params...)
}

// NewNamed is New with a display/lookup label attached.
func NewNamed(family Family, name string, params ...float64) (*Marginal, error) {
	ops, err := lookupFamily(family)
	if err != nil {
		return nil, err
	}
	p := append([]float64(nil), params...)
	lower, upper, err := validateParams(family, ops, p)
	if err != nil {
		return nil, err
	}
	return &Marginal{family: family, name: name, params: p, lower: lower, upper: upper, ops: ops}, nil
}

func validateParams(family Family, ops *familyOps, p []float64) (lower, upper float64, err error) {
	if len(p) != ops.nparams {
		return nan, nan, validationf(family, p, "want %d parameters (%s), got %d",
			ops.nparams, strings.Join(ops.paramNames, ", "), len(p))
	}
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nan, nan, validationf(family, p, "parameter %s=%v is not finite", ops.paramNames[i], v)
		}
	}
	lower, upper, err = ops.validate(p)
	if err != nil {
		return nan, nan, retag(err, family, p)
	}
	return lower, upper, nil
}

// SetParams rebinds the marginal to a new parameter vector, running the
// same validation and support derivation as construction. On error the
// marginal is left unchanged.
func (m *Marginal) SetParams(params ...float64) error {
	p := append([]float64(nil), params...)
	lower, upper, err := validateParams(m.family, m.ops, p)
	if err != nil {
		return err
	}
	m.params, m.lower, m.upper = p, lower, upper
	return nil
}

// Family returns the marginal's distribution family tag.
func (m *Marginal) Family() Family { return m.family }

// Name returns the marginal's label, which may be empty.
func (m *Marginal) Name() string { return m.name }

// Params returns a copy of the marginal's ordered parameter vector.
func (m *Marginal) Params() []float64 { return append([]float64(nil), m.params...) }

// Bounds returns the support bounds. Either may be infinite.
func (m *Marginal) Bounds() (lower, upper float64) { return m.lower, m.upper }

// PDF returns the probability density at x. It is 0 outside the
// support; at a removable discontinuity such as the triangular mode it
// evaluates the one well-defined limit.
func (m *Marginal) PDF(x float64) float64 {
	if x < m.lower || x > m.upper || math.IsNaN(x) {
		return 0
	}
	return m.ops.pdf(m.params, x)
}

// PDFEach returns PDF(xs[i]) for each i.
func (m *Marginal) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = m.PDF(x)
	}
	return res
}

// CDF returns the cumulative probability at x: 0 below the support, 1
// above it, and the closed-form CDF in between.
func (m *Marginal) CDF(x float64) float64 {
	if x < m.lower {
		return 0
	}
	if x > m.upper {
		return 1
	}
	return m.ops.cdf(m.params, x)
}

// CDFEach returns CDF(xs[i]) for each i.
func (m *Marginal) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = m.CDF(x)
	}
	return res
}

// InvCDF returns the u'th quantile. u must lie in [0, 1]; anything else
// is a DomainError. u=0 and u=1 map to the support bounds, which may be
// infinite. The beta family's quantile is found numerically and returns
// a ComputationError if the root-find does not converge.
func (m *Marginal) InvCDF(u float64) (float64, error) {
	if u < 0 || u > 1 || math.IsNaN(u) {
		return nan, &DomainError{Family: m.family, Value: u}
	}
	switch u {
	case 0:
		return m.lower, nil
	case 1:
		return m.upper, nil
	}
	return m.ops.quantile(m.params, u)
}

// InvCDFEach returns InvCDF(us[i]) for each i, stopping at the first
// error.
func (m *Marginal) InvCDFEach(us []float64) ([]float64, error) {
	res := make([]float64, len(us))
	for i, u := range us {
		x, err := m.InvCDF(u)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// Sample draws n i.i.d. values using rng, by inverse-transform
// sampling: one uniform draw per value, consumed in order from rng.
func (m *Marginal) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, validationf(m.family, m.params, "sample size must be positive, got %d", n)
	}
	res := make([]float64, n)
	for i := range res {
		x, err := m.InvCDF(uniform01(rng))
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// uniform01 draws from the open interval (0, 1). Float64 can return
// exactly 0, which would map unbounded families to -Inf samples.
func uniform01(rng *rand.Rand) float64 {
	for {
		if u := rng.Float64(); u > 0 {
			return u
		}
	}
}

// distString renders family, parameters, and support, without the name.
func (m *Marginal) distString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(", m.family)
	for i, v := range m.params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", m.ops.paramNames[i], v)
	}
	fmt.Fprintf(&b, "), support [%g, %g]", m.lower, m.upper)
	return b.String()
}

func (m *Marginal) String() string {
	if m.name == "" {
		return m.distString()
	}
	return m.name + " ~ " + m.distString()
}
