// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// probinput declares probabilistic input models for UQ test functions:
// univariate marginal distributions, independent joint input models with
// reproducible sampling, and isoprobabilistic transforms from canonical
// hypercubes into a model's native domain.
package probinput // import "github.com/uqlab/go-uqfuns/probinput"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
