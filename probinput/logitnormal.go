// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Logit-normal(mu, sigma): logistic of a Normal(mu, sigma) variate,
// supported on (0, 1), sigma > 0. distuv has no logit-normal, so the
// kernels compose its Normal with the logit/logistic pair.
var logitNormalOps = familyOps{
	nparams:    2,
	paramNames: []string{"mu", "sigma"},
	validate: func(p []float64) (float64, float64, error) {
		if p[1] <= 0 {
			return nan, nan, validationf("", nil, "standard deviation sigma=%g must be positive", p[1])
		}
		return 0, 1, nil
	},
	pdf: func(p []float64, x float64) float64 {
		if x <= 0 || x >= 1 {
			return 0
		}
		return distuv.Normal{Mu: p[0], Sigma: p[1]}.Prob(logit(x)) / (x * (1 - x))
	},
	cdf: func(p []float64, x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return distuv.Normal{Mu: p[0], Sigma: p[1]}.CDF(logit(x))
	},
	quantile: func(p []float64, u float64) (float64, error) {
		return logistic(distuv.Normal{Mu: p[0], Sigma: p[1]}.Quantile(u)), nil
	},
}

func logit(x float64) float64 { return math.Log(x / (1 - x)) }

func logistic(z float64) float64 { return 1 / (1 + math.Exp(-z)) }
