// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// funcs is a catalog of analytical test functions for benchmarking
// uncertainty-quantification algorithms. Each function pairs a pure
// deterministic formula with the probabilistic input model it is
// conventionally studied under.
package funcs // import "github.com/uqlab/go-uqfuns/funcs"

import (
	"fmt"
	"sort"

	"github.com/uqlab/go-uqfuns/probinput"
)

// A Func is one analytical test function together with its owned input
// model. Evaluation is pure array arithmetic; all randomness lives in
// the input model.
type Func struct {
	// Name is the catalog key.
	Name string

	// Description is a one-line summary for listings.
	Description string

	// Tags name the UQ settings the function is conventionally used
	// to benchmark (sensitivity, reliability, metamodeling,
	// optimization, integration).
	Tags []string

	// Input is the function's probabilistic input model. The model is
	// exclusively owned: each New call builds a fresh one.
	Input *probinput.InputModel

	eval func(x []float64) float64
}

// Dimension returns the function's input dimension.
func (f *Func) Dimension() int { return f.Input.SpatialDimension() }

// Eval evaluates the function at one point. x must have length
// Dimension(); points normally come from Input.Sample or
// Input.Transform, which guarantee that.
func (f *Func) Eval(x []float64) float64 { return f.eval(x) }

// EvalEach returns Eval(points[i]) for each i.
func (f *Func) EvalEach(points [][]float64) []float64 {
	res := make([]float64, len(points))
	for i, x := range points {
		res[i] = f.eval(x)
	}
	return res
}

func (f *Func) String() string {
	return fmt.Sprintf("%s (%dD): %s", f.Name, f.Dimension(), f.Description)
}

// builders is the function registry: a static table like probinput's
// distribution registry.
var builders = map[string]func() (*Func, error){
	"ackley":   NewAckley,
	"borehole": NewBorehole,
	"flood":    NewFlood,
	"ishigami": NewIshigami,
	"sobol-g":  NewSobolG,
}

// Names returns all catalog keys in lexical order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named test function with a fresh, entropy-seeded input
// model.
func New(name string) (*Func, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("funcs: unknown test function %q", name)
	}
	return build()
}
