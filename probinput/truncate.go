// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "math"

// Truncated families restrict a parent distribution to a finite window
// [a, b], appended to the parent's parameter vector, and rescale its
// density, CDF, and quantile by the probability mass the parent places
// inside the window. Both parents here (normal, Gumbel) are supported
// on the whole real line, so their kernels can be evaluated at a and b
// directly.

// Truncated Normal(mu, sigma, a, b).
var truncNormalOps = truncated(&normalOps)

// Truncated Gumbel(mu, beta, a, b), maxima convention.
var truncGumbelOps = truncated(&gumbelOps)

func truncated(parent *familyOps) familyOps {
	np := parent.nparams
	names := append(append([]string(nil), parent.paramNames...), "a", "b")
	window := func(p []float64) (pp []float64, a, b float64) {
		return p[:np], p[np], p[np+1]
	}
	mass := func(p []float64) float64 {
		pp, a, b := window(p)
		return parent.cdf(pp, b) - parent.cdf(pp, a)
	}
	return familyOps{
		nparams:    np + 2,
		paramNames: names,
		validate: func(p []float64) (float64, float64, error) {
			if _, _, err := parent.validate(p[:np]); err != nil {
				return nan, nan, err
			}
			_, a, b := window(p)
			if a >= b {
				return nan, nan, validationf("", nil, "truncation bound a=%g must be below b=%g", a, b)
			}
			if mass(p) <= 0 {
				return nan, nan, &ComputationError{
					Msg: "truncation window carries zero probability mass",
				}
			}
			return a, b, nil
		},
		pdf: func(p []float64, x float64) float64 {
			pp, _, _ := window(p)
			return parent.pdf(pp, x) / mass(p)
		},
		cdf: func(p []float64, x float64) float64 {
			pp, a, _ := window(p)
			c := (parent.cdf(pp, x) - parent.cdf(pp, a)) / mass(p)
			// Rounding in the rescaling must not push the CDF
			// outside [0, 1].
			return math.Max(0, math.Min(1, c))
		},
		quantile: func(p []float64, u float64) (float64, error) {
			pp, a, b := window(p)
			x, err := parent.quantile(pp, parent.cdf(pp, a)+u*mass(p))
			if err != nil {
				return nan, err
			}
			// The parent quantile of a rounded-up target can land
			// just outside the window.
			return math.Max(a, math.Min(b, x)), nil
		},
	}
}
