// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "gonum.org/v1/gonum/stat/distuv"

// Gumbel(mu, beta): the maxima convention (right-skewed, distuv's
// GumbelRight), beta > 0.
var gumbelOps = familyOps{
	nparams:    2,
	paramNames: []string{"mu", "beta"},
	validate: func(p []float64) (float64, float64, error) {
		if p[1] <= 0 {
			return nan, nan, validationf("", nil, "scale beta=%g must be positive", p[1])
		}
		return -inf, inf, nil
	},
	pdf: func(p []float64, x float64) float64 {
		return distuv.GumbelRight{Mu: p[0], Beta: p[1]}.Prob(x)
	},
	cdf: func(p []float64, x float64) float64 {
		return distuv.GumbelRight{Mu: p[0], Beta: p[1]}.CDF(x)
	},
	quantile: func(p []float64, u float64) (float64, error) {
		return distuv.GumbelRight{Mu: p[0], Beta: p[1]}.Quantile(u), nil
	},
}
