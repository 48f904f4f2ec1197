// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "gonum.org/v1/gonum/stat/distuv"

// Lognormal(mu, sigma): exp of a Normal(mu, sigma) variate, sigma > 0.
// mu and sigma parametrize the underlying normal, not the lognormal's
// own mean and standard deviation.
var logNormalOps = familyOps{
	nparams:    2,
	paramNames: []string{"mu", "sigma"},
	validate: func(p []float64) (float64, float64, error) {
		if p[1] <= 0 {
			return nan, nan, validationf("", nil, "standard deviation sigma=%g must be positive", p[1])
		}
		return 0, inf, nil
	},
	pdf: func(p []float64, x float64) float64 {
		if x <= 0 {
			return 0
		}
		return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.Prob(x)
	},
	cdf: func(p []float64, x float64) float64 {
		if x <= 0 {
			return 0
		}
		return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.CDF(x)
	},
	quantile: func(p []float64, u float64) (float64, error) {
		return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.Quantile(u), nil
	},
}
