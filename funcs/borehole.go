// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/uqlab/go-uqfuns/probinput"
)

// NewBorehole returns the Harper & Gupta (1983) borehole function, an
// eight-dimensional metamodeling benchmark modeling water flow through
// a borehole. Inputs, in order: rw (radius of borehole), r (radius of
// influence), Tu, Hu (transmissivity and head of the upper aquifer),
// Tl, Hl (same for the lower aquifer), L (borehole length), Kw
// (hydraulic conductivity).
func NewBorehole() (*Func, error) {
	specs := []struct {
		family probinput.Family
		name   string
		params []float64
	}{
		{probinput.Normal, "rw", []float64{0.10, 0.0161812}},
		{probinput.LogNormal, "r", []float64{7.71, 1.0056}},
		{probinput.Uniform, "Tu", []float64{63070, 115600}},
		{probinput.Uniform, "Hu", []float64{990, 1110}},
		{probinput.Uniform, "Tl", []float64{63.1, 116}},
		{probinput.Uniform, "Hl", []float64{700, 820}},
		{probinput.Uniform, "L", []float64{1120, 1680}},
		{probinput.Uniform, "Kw", []float64{9855, 12045}},
	}
	ms := make([]*probinput.Marginal, len(specs))
	for i, s := range specs {
		m, err := probinput.NewNamed(s.family, s.name, s.params...)
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
		Name:        "borehole",
		Description: "water flow through a borehole (Harper & Gupta 1983)",
		Tags:        []string{"metamodeling", "sensitivity"},
		Input:       im,
		eval: func(x []float64) float64 {
			rw, r, tu, hu, tl, hl, l, kw := x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7]
			lnRrw := math.Log(r / rw)
			return 2 * math.Pi * tu * (hu - hl) /
				(lnRrw * (1 + 2*l*tu/(lnRrw*rw*rw*kw) + tu/tl))
		},
	}, nil
}
