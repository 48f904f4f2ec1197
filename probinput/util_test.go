// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		if want, got := vals[x], f(x); !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}

func mustNew(t *testing.T, f Family, params ...float64) *Marginal {
	t.Helper()
	m, err := New(f, params...)
	if err != nil {
		t.Fatalf("New(%s, %v): %v", f, params, err)
	}
	return m
}

// invCDF unwraps the error return for families whose quantile cannot
// fail, so the result fits testFunc.
func invCDF(t *testing.T, m *Marginal) func(float64) float64 {
	return func(u float64) float64 {
		t.Helper()
		x, err := m.InvCDF(u)
		if err != nil {
			t.Fatalf("InvCDF(%v): %v", u, err)
		}
		return x
	}
}
