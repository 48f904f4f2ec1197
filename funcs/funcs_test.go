// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	require.Equal(t, []string{"ackley", "borehole", "flood", "ishigami", "sobol-g"}, names)

	for _, name := range names {
		f, err := New(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name)
		assert.NotEmpty(t, f.Description)
		assert.NotEmpty(t, f.Tags)
		assert.Equal(t, f.Input.SpatialDimension(), f.Dimension())
	}

	_, err := New("no-such-function")
	require.Error(t, err)
}

func TestIshigami(t *testing.T) {
	f, err := NewIshigami()
	require.NoError(t, err)
	assert.Equal(t, 3, f.Dimension())

	assert.InDelta(t, 0, f.Eval([]float64{0, 0, 0}), 1e-12)
	assert.InDelta(t, 8, f.Eval([]float64{math.Pi / 2, math.Pi / 2, 0}), 1e-12)
	// At x3 = 1 the third term adds b*sin(x1).
	assert.InDelta(t, 1+7+0.1, f.Eval([]float64{math.Pi / 2, math.Pi / 2, 1}), 1e-12)
}

func TestSobolG(t *testing.T) {
	f, err := NewSobolG()
	require.NoError(t, err)
	assert.Equal(t, 6, f.Dimension())

	// At x_i = 0.5 every factor collapses to a_i/(1+a_i).
	want := 1.0
	for _, a := range []float64{0, 1, 4.5, 9, 99, 99} {
		want *= a / (1 + a)
	}
	assert.InDelta(t, want, f.Eval([]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}), 1e-12)

	// At x_i = 0 every factor is (2+a_i)/(1+a_i) >= 1.
	assert.Greater(t, f.Eval(make([]float64, 6)), 1.0)
}

func TestAckley(t *testing.T) {
	f, err := NewAckleyDim(5)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Dimension())

	// Global minimum at the origin.
	assert.InDelta(t, 0, f.Eval(make([]float64, 5)), 1e-12)
	assert.Greater(t, f.Eval([]float64{1, 1, 1, 1, 1}), 0.0)
}

func TestBorehole(t *testing.T) {
	f, err := NewBorehole()
	require.NoError(t, err)
	assert.Equal(t, 8, f.Dimension())

	// Flow at the domain-central point, against the closed form
	// evaluated independently.
	x := []float64{0.10, math.Exp(7.71), 89335, 1050, 89.55, 760, 1400, 10950}
	lnRrw := math.Log(x[1] / x[0])
	want := 2 * math.Pi * x[2] * (x[3] - x[5]) /
		(lnRrw * (1 + 2*x[6]*x[2]/(lnRrw*x[0]*x[0]*x[7]) + x[2]/x[4]))
	assert.InDelta(t, want, f.Eval(x), 1e-9)
	assert.Greater(t, f.Eval(x), 0.0)

	// More head difference means more flow.
	x2 := append([]float64(nil), x...)
	x2[3] += 50
	assert.Greater(t, f.Eval(x2), f.Eval(x))
}

func TestFlood(t *testing.T) {
	f, err := NewFlood()
	require.NoError(t, err)
	assert.Equal(t, 8, f.Dimension())

	// At the nominal point the dyke holds (negative overflow).
	x := []float64{1013, 30, 50, 55, 8, 55.5, 5000, 300}
	s := f.Eval(x)
	assert.Less(t, s, 0.0)

	// A much larger flowrate raises the overflow height.
	x2 := append([]float64(nil), x...)
	x2[0] = 3000
	assert.Greater(t, f.Eval(x2), s)
}

// TestSampleEvalPipeline runs the full consumer flow: sample the owned
// input model, evaluate, and check shapes and finiteness.
func TestSampleEvalPipeline(t *testing.T) {
	for _, name := range Names() {
		f, err := New(name)
		require.NoError(t, err, name)

		f.Input.ResetRNG(7)
		pts, err := f.Input.Sample(100)
		require.NoError(t, err, name)
		ys := f.EvalEach(pts)
		require.Len(t, ys, 100, name)
		for _, y := range ys {
			assert.False(t, math.IsNaN(y) || math.IsInf(y, 0), "%s produced %v", name, y)
		}
	}
}

// TestTransformEvalPipeline feeds canonical-cube quadrature-style
// points through the domain transform and evaluates.
func TestTransformEvalPipeline(t *testing.T) {
	f, err := NewIshigami()
	require.NoError(t, err)

	pts := [][]float64{
		{0, 0, 0},
		{-0.5, 0.5, 0.25},
		{0.9, -0.9, 0},
	}
	native, err := f.Input.Transform(pts, -1, 1)
	require.NoError(t, err)

	// The cube center maps to the domain center (0, 0, 0) for
	// symmetric uniforms, where Ishigami vanishes.
	assert.InDelta(t, 0, f.Eval(native[0]), 1e-12)
	for _, row := range native {
		for j, v := range row {
			lo, hi := f.Input.Marginal(j).Bounds()
			assert.GreaterOrEqual(t, v, lo)
			assert.LessOrEqual(t, v, hi)
		}
	}
}

func TestFuncString(t *testing.T) {
	f, err := NewIshigami()
	require.NoError(t, err)
	assert.Contains(t, f.String(), "ishigami (3D)")
}
