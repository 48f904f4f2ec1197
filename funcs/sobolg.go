// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/uqlab/go-uqfuns/probinput"
)

// sobolGCoeffs are Sobol's classic importance coefficients: small a_i
// means an important input.
var sobolGCoeffs = []float64{0, 1, 4.5, 9, 99, 99}

// NewSobolG returns the Sobol' G function, a six-dimensional
// sensitivity benchmark with analytically known Sobol' indices:
//
//	f(x) = prod_i (|4 x_i - 2| + a_i) / (1 + a_i)
//
// with x_i i.i.d. Uniform(0, 1).
func NewSobolG() (*Func, error) {
	ms := make([]*probinput.Marginal, len(sobolGCoeffs))
	for i := range ms {
		m, err := probinput.New(probinput.Uniform, 0, 1)
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}
	im, err := probinput.NewInputModel(ms)
	if err != nil {
		return nil, err
	}
	return &Func{
		Name:        "sobol-g",
		Description: "Sobol' G product function with known sensitivity indices",
		Tags:        []string{"sensitivity", "integration"},
		Input:       im,
		eval: func(x []float64) float64 {
			g := 1.0
			for i, a := range sobolGCoeffs {
				g *= (math.Abs(4*x[i]-2) + a) / (1 + a)
			}
			return g
		},
	}, nil
}
