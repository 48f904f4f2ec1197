// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "gonum.org/v1/gonum/stat/distuv"

// Uniform[a, b]: constant density on [a, b], a < b.
var uniformOps = familyOps{
	nparams:    2,
	paramNames: []string{"a", "b"},
	validate: func(p []float64) (float64, float64, error) {
		if p[0] >= p[1] {
			return nan, nan, validationf("", nil, "lower bound a=%g must be below upper bound b=%g", p[0], p[1])
		}
		return p[0], p[1], nil
	},
	pdf: func(p []float64, x float64) float64 {
		return distuv.Uniform{Min: p[0], Max: p[1]}.Prob(x)
	},
	cdf: func(p []float64, x float64) float64 {
		return distuv.Uniform{Min: p[0], Max: p[1]}.CDF(x)
	},
	quantile: func(p []float64, u float64) (float64, error) {
		return distuv.Uniform{Min: p[0], Max: p[1]}.Quantile(u), nil
	},
}
