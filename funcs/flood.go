// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/uqlab/go-uqfuns/probinput"
)

// NewFlood returns the river flood model of Iooss & Lemaître (2015),
// an eight-dimensional reliability benchmark: the output is the
// overflow height (in meters) of a river over a dyke; positive values
// mean flooding. Inputs, in order: Q (maximal annual flowrate), Ks
// (Strickler roughness), Zv and Zm (downstream and upstream river
// levels), Hd (dyke height), Cb (bank level), L and B (reach length
// and width).
func NewFlood() (*Func, error) {
	specs := []struct {
		family probinput.Family
		name   string
		params []float64
	}{
		{probinput.TruncGumbel, "Q", []float64{1013, 558, 500, 3000}},
		{probinput.TruncNormal, "Ks", []float64{30, 8, 15, 90}},
		{probinput.Triangular, "Zv", []float64{49, 51, 50}},
		{probinput.Triangular, "Zm", []float64{54, 56, 55}},
		{probinput.Uniform, "Hd", []float64{7, 9}},
		{probinput.Triangular, "Cb", []float64{55, 56, 55.5}},
		{probinput.Triangular, "L", []float64{4990, 5010, 5000}},
		{probinput.Triangular, "B", []float64{295, 305, 300}},
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
		Name:        "flood",
		Description: "river overflow over a dyke (Iooss & Lemaitre 2015)",
		Tags:        []string{"reliability", "sensitivity"},
		Input:       im,
		eval: func(x []float64) float64 {
			q, ks, zv, zm, hd, cb, l, b := x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7]
			h := math.Pow(q/(ks*b*math.Sqrt((zm-zv)/l)), 0.6)
			return zv + h - hd - cb
		},
	}, nil
}
