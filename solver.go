// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mode selects the descent strategy used to populate the Hessian source B
// of the reduced system (§4.5), per §3/§9. The zero value is STEEPEST, so
// a zero-value Mode never silently behaves like NEWTON or BFGS.
type Mode int

const (
	// STEEPEST treats B as the identity matrix every iteration; it is the
	// zero value of Mode.
	STEEPEST Mode = iota
	// NEWTON reassigns B from Problem.Hessian(x) every iteration.
	NEWTON
	// BFGS maintains B as a quasi-Newton approximation, updated in place
	// starting at the second iteration.
	BFGS
)

// Solver drives the primal-dual interior-point iteration of §4.7. A
// Solver is not safe for concurrent use, and a single B is never shared
// across two calls to Solve (§3, §5).
type Solver struct {
	mode    Mode
	problem Problem
	config  *Config
}

// NewSolver constructs a Solver for the given descent mode and Problem.
func NewSolver(mode Mode, problem Problem) *Solver {
	return &Solver{mode: mode, problem: problem, config: NewConfig()}
}

// NewSolverFunc constructs a Solver from a FuncBundle, the callable-bundle
// provisioning form of §4.1/§6. It returns a *ConfigurationError if bundle
// is missing a required callback.
func NewSolverFunc(mode Mode, bundle FuncBundle) (*Solver, error) {
	p, err := NewFuncProblem(bundle)
	if err != nil {
		return nil, err
	}
	return NewSolver(mode, p), nil
}

// Config returns the Solver's configuration surface for use with its
// validated setters (§4.8).
func (s *Solver) Config() *Config { return s.config }

// Result is the outcome of a Solve call: the primal and dual iterates and
// the statistics of the run that produced them.
type Result struct {
	X            []float64
	Z            []float64
	Iterations   int
	ResidualNorm float64
}

// Solve runs the iteration of §4.7 from xGuess. It returns the converged
// (or last accepted) Result together with a nil error on convergence, or
// a non-nil error otherwise: *NotConvergedError if Config.MaxIterations
// was reached, or one of *EvaluationError, *NumericalError,
// *LineSearchFailure on a fatal failure, per §7's propagation rules.
//
// xGuess must be strictly feasible (c(xGuess) < 0 componentwise); the
// solver does not attempt to restore feasibility from an infeasible
// guess (§9).
func (s *Solver) Solve(xGuess []float64) (*Result, error) {
	return s.SolveContext(xGuess, nil)
}

// SolveContext is Solve with an explicit Recorder for telemetry. When
// Config.Verbose is false, recorder is never invoked. When recorder is
// nil and Verbose is true, telemetry is written to os.Stdout.
func (s *Solver) SolveContext(xGuess []float64, recorder Recorder) (*Result, error) {
	cfg := s.config
	n := len(xGuess)

	x := append([]float64(nil), xGuess...)

	c, err := s.problem.Constraints(x)
	if err != nil {
		return nil, &EvaluationError{Callback: "Constraints", Err: err}
	}
	m := len(c)
	nu := float64(n + m)

	z := make([]float64, m)
	for i := range z {
		z[i] = 1
	}

	var B *mat.SymDense
	if s.mode == BFGS {
		B = identitySym(n)
	}

	if cfg.verbose {
		if recorder == nil {
			recorder = defaultRecorder()
		}
		if err := recorder.Header(); err != nil {
			return nil, err
		}
	}

	w := newWorkspace(n, m)

	var (
		gOld       []float64
		pxAccepted []float64
		alpha      float64
		lsSteps    int
		lastNorm   float64
	)

	for iter := 0; iter < cfg.maxIterations; iter++ {
		f, g, c, J, W, Bcur, err := s.evaluate(x, z, n, m, B)
		if err != nil {
			return nil, err
		}

		q := computeIterationQuantities(w, g, c, z, J, cfg)
		lastNorm = q.r0Norm / nu

		if cfg.verbose {
			if err := recorder.Row(TelemetryRow{
				Iteration: iter + 1, F: f, Mu: q.mu, Sigma: q.sigma,
				RxNorm: floats.Norm(q.rx, 2), RcNorm: floats.Norm(q.rc, 2), Alpha: alpha, LineSearch: lsSteps,
			}); err != nil {
				return nil, err
			}
		}

		if lastNorm < cfg.tolerance {
			return &Result{X: x, Z: z, Iterations: iter, ResidualNorm: lastNorm}, nil
		}

		if s.mode == BFGS && iter > 0 {
			sStep, yStep := w.sStep, w.yStep
			for i := range sStep {
				sStep[i] = alpha * pxAccepted[i]
				yStep[i] = g[i] - gOld[i]
			}
			if err := (bfgsUpdater{}).update(B, sStep, yStep); err != nil {
				return nil, err
			}
			Bcur = B
		}

		dir, err := computeStep(w, g, c, z, J, W, Bcur, q.mu, cfg)
		if err != nil {
			return nil, err
		}

		psi := meritValue(f, c, z, q.mu, cfg.eps)
		dPsi := meritDirectionalDerivative(dir.px, dir.pz, g, c, z, J, q.mu, cfg.eps)

		res, err := lineSearch(s.problem, x, z, dir.px, dir.pz, f, psi, dPsi, q.eta, q.mu, cfg)
		if err != nil {
			return nil, err
		}

		gOld = g
		pxAccepted = dir.px
		alpha = res.alpha
		lsSteps = res.backtracks
		x = res.x
		z = res.z
	}

	return &Result{X: x, Z: z, Iterations: cfg.maxIterations, ResidualNorm: lastNorm},
		&NotConvergedError{Iterations: cfg.maxIterations, ResidualNorm: lastNorm}
}

// evaluate performs the EVAL state of §4.7: it calls every Problem
// callback needed for the current mode at (x, z) and validates that
// returned sizes match (n, m), per §6's "sizes must remain stable"
// contract.
func (s *Solver) evaluate(x, z []float64, n, m int, B *mat.SymDense) (f float64, g, c []float64, J *mat.Dense, W, Bcur *mat.SymDense, err error) {
	f, err = s.problem.Objective(x)
	if err != nil {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Objective", Err: err}
	}
	g, err = s.problem.Gradient(x)
	if err != nil {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Gradient", Err: err}
	}
	if len(g) != n {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Gradient", Err: errSizeMismatch}
	}
	c, err = s.problem.Constraints(x)
	if err != nil {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Constraints", Err: err}
	}
	if len(c) != m {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Constraints", Err: errSizeMismatch}
	}
	J, err = s.problem.Jacobian(x)
	if err != nil {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Jacobian", Err: err}
	}
	if r, cc := J.Dims(); r != m || cc != n {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Jacobian", Err: errSizeMismatch}
	}
	W, err = s.problem.LagrangianHessian(x, z)
	if err != nil {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "LagrangianHessian", Err: err}
	}
	if W.SymmetricDim() != n {
		return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "LagrangianHessian", Err: errSizeMismatch}
	}

	switch s.mode {
	case NEWTON:
		Bcur, err = s.problem.Hessian(x)
		if err != nil {
			return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Hessian", Err: err}
		}
		if Bcur.SymmetricDim() != n {
			return 0, nil, nil, nil, nil, nil, &EvaluationError{Callback: "Hessian", Err: errSizeMismatch}
		}
	case BFGS:
		Bcur = B
	default: // STEEPEST
		Bcur = identitySym(n)
	}

	return f, g, c, J, W, Bcur, nil
}

var errSizeMismatch = errMissing("callback result size does not match the problem dimensions established at Solve entry")
