// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "fmt"

// Transform maps points from the symmetric hypercube [minVal, maxVal]^d
// into the model's native domain, dimension by dimension: each
// coordinate is rescaled to a probability through the reference uniform
// CDF on [minVal, maxVal] and pushed through the corresponding
// marginal's InvCDF.
//
// This is a deterministic, stateless operation, not sampling: it never
// touches the model's generator. Coordinates outside the cube clamp to
// the marginal's support bounds. Experiment-design and quadrature
// tooling conventionally emit points in [-1, 1]^d.
func (im *InputModel) Transform(points [][]float64, minVal, maxVal float64) ([][]float64, error) {
	if minVal >= maxVal {
		return nil, &ValidationError{Msg: fmt.Sprintf("degenerate hypercube: min %g >= max %g", minVal, maxVal)}
	}
	d := len(im.marginals)
	out := make([][]float64, len(points))
	for i, pt := range points {
		if len(pt) != d {
			return nil, &ValidationError{
				Msg: fmt.Sprintf("point %d has dimension %d, model has %d", i, len(pt), d),
			}
		}
		row := make([]float64, d)
		for j, x := range pt {
			y, err := im.marginals[j].InvCDF(cubeCDF(minVal, maxVal, x))
			if err != nil {
				return nil, err
			}
			row[j] = y
		}
		out[i] = row
	}
	return out, nil
}

// cubeCDF is the reference uniform CDF on [lo, hi], reusing the uniform
// family kernel rather than restating the affine map.
func cubeCDF(lo, hi, x float64) float64 {
	switch {
	case x <= lo:
		return 0
	case x >= hi:
		return 1
	}
	return uniformOps.cdf([]float64{lo, hi}, x)
}
