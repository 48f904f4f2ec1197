// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Beta(alpha, beta, a, b): a standard Beta(alpha, beta) variate
// rescaled affinely onto [a, b]; alpha, beta > 0 and a < b.
//
// The quantile has no closed form. It delegates to distuv's numerical
// inverse of the regularized incomplete beta function (gonum mathext),
// which converges to roughly 1e-10 absolute error; non-convergence is
// surfaced as a ComputationError.
var betaOps = familyOps{
	nparams:    4,
	paramNames: []string{"alpha", "beta", "a", "b"},
	validate: func(p []float64) (float64, float64, error) {
		if p[0] <= 0 {
			return nan, nan, validationf("", nil, "shape alpha=%g must be positive", p[0])
		}
		if p[1] <= 0 {
			return nan, nan, validationf("", nil, "shape beta=%g must be positive", p[1])
		}
		if p[2] >= p[3] {
			return nan, nan, validationf("", nil, "lower bound a=%g must be below upper bound b=%g", p[2], p[3])
		}
		return p[2], p[3], nil
	},
	pdf: func(p []float64, x float64) float64 {
		w := p[3] - p[2]
		return distuv.Beta{Alpha: p[0], Beta: p[1]}.Prob((x-p[2])/w) / w
	},
	cdf: func(p []float64, x float64) float64 {
		return distuv.Beta{Alpha: p[0], Beta: p[1]}.CDF((x - p[2]) / (p[3] - p[2]))
	},
	quantile: func(p []float64, u float64) (float64, error) {
		y, err := betaQuantile(p[0], p[1], u)
		if err != nil {
			return nan, retag(err, Beta, p)
		}
		return p[2] + (p[3]-p[2])*y, nil
	},
}

// betaQuantile evaluates the standard beta quantile, converting the
// root-finder's non-convergence panic into a ComputationError.
func betaQuantile(alpha, beta, u float64) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			y = nan
			err = &ComputationError{Msg: fmt.Sprintf("beta quantile at u=%v did not converge: %v", u, r)}
		}
	}()
	y = distuv.Beta{Alpha: alpha, Beta: beta}.Quantile(u)
	return y, nil
}
