// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/uqlab/go-uqfuns/probinput"
)

// Ackley's recommended coefficients.
const (
	ackleyA = 20
	ackleyB = 0.2
	ackleyC = 2 * math.Pi
)

// NewAckley returns the two-dimensional Ackley function; use
// NewAckleyDim for other dimensions.
func NewAckley() (*Func, error) { return NewAckleyDim(2) }

// NewAckleyDim returns the d-dimensional Ackley function, a
// multi-modal optimization benchmark with its global minimum f=0 at
// the origin, over x_i i.i.d. Uniform(-32.768, 32.768).
func NewAckleyDim(d int) (*Func, error) {
	ms := make([]*probinput.Marginal, d)
	for i := range ms {
		m, err := probinput.New(probinput.Uniform, -32.768, 32.768)
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
		Name:        "ackley",
		Description: "multi-modal optimization benchmark (Ackley 1987)",
		Tags:        []string{"optimization"},
		Input:       im,
		eval: func(x []float64) float64 {
			var sumSq, sumCos float64
			for _, xi := range x {
				sumSq += xi * xi
				sumCos += math.Cos(ackleyC * xi)
			}
			n := float64(len(x))
			return -ackleyA*math.Exp(-ackleyB*math.Sqrt(sumSq/n)) -
				math.Exp(sumCos/n) + ackleyA + math.E
		},
	}, nil
}
