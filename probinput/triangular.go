// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "gonum.org/v1/gonum/stat/distuv"

// Triangular(a, b, c): supported on [a, b] with mode c, a < c < b. The
// density at the mode is the well-defined two-sided limit 2/(b-a).
var triangularOps = familyOps{
	nparams:    3,
	paramNames: []string{"a", "b", "c"},
	validate: func(p []float64) (float64, float64, error) {
		if !(p[0] < p[2] && p[2] < p[1]) {
			return nan, nan, validationf("", nil, "want a < c < b, got a=%g, c=%g, b=%g", p[0], p[2], p[1])
		}
		return p[0], p[1], nil
	},
	pdf: func(p []float64, x float64) float64 {
		return distuv.NewTriangle(p[0], p[1], p[2], nil).Prob(x)
	},
	cdf: func(p []float64, x float64) float64 {
		return distuv.NewTriangle(p[0], p[1], p[2], nil).CDF(x)
	},
	quantile: func(p []float64, u float64) (float64, error) {
		return distuv.NewTriangle(p[0], p[1], p[2], nil).Quantile(u), nil
	},
}
