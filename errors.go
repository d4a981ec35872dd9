// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import "fmt"

// ConfigurationError reports that a Config setter received a value outside
// its accepted domain, or that a required callback was absent at
// construction. It is raised at the call site that introduced it and never
// consumes iteration budget. Reason, when set, replaces the default
// "must be positive" wording for non-numeric-domain cases such as a
// missing callback.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("ipm: configuration field %q invalid: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("ipm: configuration field %q must be positive, got %v", e.Field, e.Value)
}

// EvaluationError reports that a Problem callback produced a non-finite or
// otherwise refused result. During a trial point this is treated as an
// unacceptable candidate by the line search; at the current iterate it is
// fatal and is returned from Solve.
type EvaluationError struct {
	Callback string
	Err      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("ipm: evaluating %s: %v", e.Callback, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// NumericalError reports a failure internal to the linear algebra façade or
// the BFGS updater: an indefinite or non-finite factorization, a
// non-finite solve, or a BFGS update whose curvature precondition yᵀs > 0
// was violated.
type NumericalError struct {
	Stage string
	Err   error
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("ipm: numerical failure in %s: %v", e.Stage, e.Err)
}

func (e *NumericalError) Unwrap() error { return e.Err }

// LineSearchFailure reports that backtracking reduced the step length below
// the configured α_min (Config.SetAlphaMin) without finding an acceptable
// trial point.
type LineSearchFailure struct {
	Alpha float64
}

func (e *LineSearchFailure) Error() string {
	return fmt.Sprintf("ipm: line search step size %.3e too small", e.Alpha)
}

// NotConvergedError reports that Solve reached Config.MaxIterations without
// satisfying the convergence tolerance. It is not fatal: the caller
// receives it alongside the last accepted x, per the solver's contract
// that a non-convergent run is reported rather than treated as an error
// condition that discards the iterate.
type NotConvergedError struct {
	Iterations   int
	ResidualNorm float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("ipm: did not converge after %d iterations (residual norm %.3e)", e.Iterations, e.ResidualNorm)
}

// errIndefinite and errNonFinite are the two failure modes the linear
// algebra façade can signal, wrapped into a NumericalError by the caller.
var (
	errIndefinite = fmt.Errorf("symmetric factorization is indefinite")
	errNonFinite  = fmt.Errorf("result contains a non-finite entry")
)
