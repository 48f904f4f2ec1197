// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "gonum.org/v1/gonum/stat/distuv"

// Exponential(rate): supported on [0, +inf), rate > 0.
var exponentialOps = familyOps{
	nparams:    1,
	paramNames: []string{"rate"},
	validate: func(p []float64) (float64, float64, error) {
		if p[0] <= 0 {
			return nan, nan, validationf("", nil, "rate=%g must be positive", p[0])
		}
		return 0, inf, nil
	},
	pdf: func(p []float64, x float64) float64 {
		return distuv.Exponential{Rate: p[0]}.Prob(x)
	},
	cdf: func(p []float64, x float64) float64 {
		return distuv.Exponential{Rate: p[0]}.CDF(x)
	},
	quantile: func(p []float64, u float64) (float64, error) {
		return distuv.Exponential{Rate: p[0]}.Quantile(u), nil
	},
}
