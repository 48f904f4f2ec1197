// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/uqlab/go-uqfuns/probinput"
)

// Ishigami coefficients from Ishigami & Homma (1990).
const (
	ishigamiA = 7
	ishigamiB = 0.1
)

// NewIshigami returns the Ishigami function, the canonical
// three-dimensional sensitivity-analysis benchmark:
//
//	f(x) = sin(x1) + a sin^2(x2) + b x3^4 sin(x1)
//
// with x1, x2, x3 i.i.d. Uniform(-pi, pi).
func NewIshigami() (*Func, error) {
	ms := make([]*probinput.Marginal, 3)
	for i := range ms {
		m, err := probinput.New(probinput.Uniform, -math.Pi, math.Pi)
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
		Name:        "ishigami",
		Description: "Ishigami & Homma (1990) trigonometric function",
		Tags:        []string{"sensitivity", "integration"},
		Input:       im,
		eval: func(x []float64) float64 {
			s := math.Sin(x[0])
			return s + ishigamiA*math.Pow(math.Sin(x[1]), 2) + ishigamiB*math.Pow(x[2], 4)*s
		},
	}, nil
}
