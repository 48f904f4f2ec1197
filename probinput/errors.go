// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probinput

import (
	"errors"
	"fmt"
)

// A ValidationError reports malformed construction input: bad parameter
// counts or constraints, mismatched dimensions, non-positive sample
// counts, or degenerate hypercube bounds. It is returned eagerly at the
// point of construction or call, never deferred into array computation.
type ValidationError struct {
	// Family is the distribution family being validated, if any.
	Family Family

	// Params is the offending parameter vector, if any.
	Params []float64

	// Msg describes the violated constraint.
	Msg string
}

func (e *ValidationError) Error() string {
	if e.Family == "" {
		return "probinput: " + e.Msg
	}
	return fmt.Sprintf("probinput: %s%v: %s", e.Family, e.Params, e.Msg)
}

// A DomainError reports an evaluation-time argument outside a function's
// mathematical domain, such as a quantile argument outside [0, 1].
type DomainError struct {
	Family Family

	// Value is the out-of-domain argument.
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("probinput: %s: quantile argument %v outside [0, 1]", e.Family, e.Value)
}

// An UnknownDistributionError reports a family tag that is not in the
// distribution registry.
type UnknownDistributionError struct {
	Family Family
}

func (e *UnknownDistributionError) Error() string {
	return fmt.Sprintf("probinput: unknown distribution family %q", string(e.Family))
}

// A ComputationError reports numerical degeneracy during evaluation or
// support derivation, such as zero truncation mass or a non-convergent
// quantile root-find.
type ComputationError struct {
	Family Family
	Params []float64
	Msg    string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("probinput: %s%v: %s", e.Family, e.Params, e.Msg)
}

func validationf(f Family, params []float64, format string, args ...interface{}) error {
	return &ValidationError{Family: f, Params: params, Msg: fmt.Sprintf(format, args...)}
}

// retag stamps family and parameters onto a taxonomy error produced by a
// family kernel that does not know which tag it is registered under
// (e.g. a truncated family delegating to its parent's validator).
func retag(err error, f Family, params []float64) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		ve.Family, ve.Params = f, params
		return ve
	}
	var ce *ComputationError
	if errors.As(err, &ce) {
		ce.Family, ce.Params = f, params
		return ce
	}
	return err
}
