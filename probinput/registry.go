// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import "sort"

// A Family tags one of the supported univariate distribution families.
// The set is closed: adding a family means adding its ops file and one
// entry in the families table below.
type Family string

const (
	Uniform     Family = "uniform"
	Normal      Family = "normal"
	LogNormal   Family = "lognormal"
	LogitNormal Family = "logitnormal"
	Exponential Family = "exponential"
	Gumbel      Family = "gumbel"
	Beta        Family = "beta"
	Triangular  Family = "triangular"
	TruncNormal Family = "truncnormal"
	TruncGumbel Family = "truncgumbel"
)

// familyOps bundles the per-family kernels behind the Marginal type.
//
// validate checks the parameter constraints and derives the support
// bounds. pdf and cdf are only ever called with x inside the support;
// quantile is only ever called with u strictly inside (0, 1). The
// piecewise clamping outside those ranges lives in Marginal.
type familyOps struct {
	nparams    int
	paramNames []string
	validate   func(p []float64) (lower, upper float64, err error)
	pdf        func(p []float64, x float64) float64
	cdf        func(p []float64, x float64) float64
	quantile   func(p []float64, u float64) (float64, error)
}

// families is the distribution registry. It is a static compile-time
// table rather than an open registration mechanism: the family set is
// fixed and small.
var families = map[Family]*familyOps{
	Uniform:     &uniformOps,
	Normal:      &normalOps,
	LogNormal:   &logNormalOps,
	LogitNormal: &logitNormalOps,
	Exponential: &exponentialOps,
	Gumbel:      &gumbelOps,
	Beta:        &betaOps,
	Triangular:  &triangularOps,
	TruncNormal: &truncNormalOps,
	TruncGumbel: &truncGumbelOps,
}

func lookupFamily(f Family) (*familyOps, error) {
	ops, ok := families[f]
	if !ok {
		return nil, &UnknownDistributionError{Family: f}
	}
	return ops, nil
}

// Families returns the tags of all supported distribution families in
// lexical order.
func Families() []Family {
	fs := make([]Family, 0, len(families))
	for f := range families {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}
