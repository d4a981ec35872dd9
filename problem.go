// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import "gonum.org/v1/gonum/mat"

// Problem is the capability set the solver consumes, per §4.1. Hessian is
// only invoked in NEWTON mode; every other method is required in all
// modes. Implementations may signal evaluation failure by returning a
// non-nil error; the solver wraps it in an *EvaluationError.
type Problem interface {
	// Objective evaluates f(x).
	Objective(x []float64) (float64, error)
	// Gradient evaluates ∇f(x).
	Gradient(x []float64) ([]float64, error)
	// Hessian evaluates ∇²f(x). Only called when the solver is
	// constructed with mode NEWTON.
	Hessian(x []float64) (*mat.SymDense, error)
	// Constraints evaluates c(x) ∈ ℝᵐ.
	Constraints(x []float64) ([]float64, error)
	// Jacobian evaluates J = ∂c/∂x ∈ ℝᵐˣⁿ.
	Jacobian(x []float64) (*mat.Dense, error)
	// LagrangianHessian evaluates W = Σᵢ zᵢ∇²cᵢ(x) ∈ ℝⁿˣⁿ.
	LagrangianHessian(x, z []float64) (*mat.SymDense, error)
}

// FuncBundle is the second provisioning form of §4.1/§6: a bundle of six
// callables with identical semantics to Problem, for callers who would
// rather not define a named type. Hessian may be left nil when the
// solver's mode is not NEWTON.
type FuncBundle struct {
	Objective         func(x []float64) (float64, error)
	Gradient          func(x []float64) ([]float64, error)
	Hessian           func(x []float64) (*mat.SymDense, error)
	Constraints       func(x []float64) ([]float64, error)
	Jacobian          func(x []float64) (*mat.Dense, error)
	LagrangianHessian func(x, z []float64) (*mat.SymDense, error)
}

// funcProblem adapts a FuncBundle to the Problem interface.
type funcProblem struct {
	b FuncBundle
}

// NewFuncProblem synthesizes a Problem from a FuncBundle. It returns a
// *ConfigurationError if any of Objective, Gradient, Constraints,
// Jacobian, or LagrangianHessian is nil; Hessian may be nil for
// non-NEWTON modes.
func NewFuncProblem(b FuncBundle) (Problem, error) {
	field := ""
	switch {
	case b.Objective == nil:
		field = "Objective"
	case b.Gradient == nil:
		field = "Gradient"
	case b.Constraints == nil:
		field = "Constraints"
	case b.Jacobian == nil:
		field = "Jacobian"
	case b.LagrangianHessian == nil:
		field = "LagrangianHessian"
	}
	if field != "" {
		return nil, &ConfigurationError{Field: field, Reason: "required callback is absent"}
	}
	return &funcProblem{b: b}, nil
}

func (p *funcProblem) Objective(x []float64) (float64, error) { return p.b.Objective(x) }
func (p *funcProblem) Gradient(x []float64) ([]float64, error) { return p.b.Gradient(x) }

func (p *funcProblem) Hessian(x []float64) (*mat.SymDense, error) {
	if p.b.Hessian == nil {
		return nil, &EvaluationError{Callback: "Hessian", Err: errMissingCallback}
	}
	return p.b.Hessian(x)
}

func (p *funcProblem) Constraints(x []float64) ([]float64, error) { return p.b.Constraints(x) }
func (p *funcProblem) Jacobian(x []float64) (*mat.Dense, error)   { return p.b.Jacobian(x) }

func (p *funcProblem) LagrangianHessian(x, z []float64) (*mat.SymDense, error) {
	return p.b.LagrangianHessian(x, z)
}

var errMissingCallback = errMissing("required callback is absent")

type errMissing string

func (e errMissing) Error() string { return string(e) }
