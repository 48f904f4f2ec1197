// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestTruncNormal(t *testing.T) {
	m := mustNew(t, TruncNormal, 0, 1, -2, 2)
	testFunc(t, "truncnormal(0,1,-2,2).CDF", m.CDF, map[float64]float64{
		-3: 0, -2: 0, 0: 0.5, 2: 1, 3: 1,
	})
	// Density is the standard normal's rescaled by the mass in [-2, 2].
	testFunc(t, "truncnormal(0,1,-2,2).PDF", m.PDF, map[float64]float64{
		-3: 0, 0: 0.4179596, 3: 0,
	})
	testFunc(t, "truncnormal(0,1,-2,2).InvCDF", invCDF(t, m), map[float64]float64{
		0: -2, 0.5: 0, 1: 2,
	})
}

func TestTruncGumbel(t *testing.T) {
	m := mustNew(t, TruncGumbel, 1, 2, 0, 5)
	testFunc(t, "truncgumbel(1,2,0,5).CDF", m.CDF, map[float64]float64{
		-1: 0, 0: 0, 5: 1, 6: 1,
	})
	if x, _ := m.InvCDF(0); x != 0 {
		t.Errorf("InvCDF(0): want 0, got %v", x)
	}
	if x, _ := m.InvCDF(1); x != 5 {
		t.Errorf("InvCDF(1): want 5, got %v", x)
	}
}

// TestTruncationContainment draws from both truncated families and
// checks every sample lies inside the truncation window.
func TestTruncationContainment(t *testing.T) {
	cases := []struct {
		family Family
		params []float64
	}{
		{TruncNormal, []float64{0, 1, -2, 2}},
		{TruncNormal, []float64{30, 8, 15, 90}},
		{TruncGumbel, []float64{1013, 558, 500, 3000}},
	}
	rng := rand.New(rand.NewSource(7))
	for _, c := range cases {
		m := mustNew(t, c.family, c.params...)
		a, b := m.Bounds()
		xs, err := m.Sample(10000, rng)
		if err != nil {
			t.Fatal(err)
		}
		for _, x := range xs {
			if x < a || x > b {
				t.Fatalf("%s: sample %v outside [%v, %v]", m, x, a, b)
			}
		}
	}
}

// TestTruncationZeroMass puts the window so far into the tail that the
// parent mass underflows to zero, which must surface as a
// ComputationError instead of a division by zero.
func TestTruncationZeroMass(t *testing.T) {
	_, err := New(TruncNormal, 0, 1, 40, 41)
	var ce *ComputationError
	if !errors.As(err, &ce) {
		t.Fatalf("want ComputationError, got %v", err)
	}
	if ce.Family != TruncNormal {
		t.Errorf("error carries family %q, want %q", ce.Family, TruncNormal)
	}
}
