// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFractionToBoundary(t *testing.T) {
	z := []float64{1.0, 2.0, 0.5}
	pz := []float64{-0.5, 1.0, -0.4}
	alphaMax := 0.995

	got := fractionToBoundary(z, pz, alphaMax)

	// The negative components give i=2: alphaMax*0.5/0.4 = 1.24375 and
	// i=0: alphaMax*1/0.5 = 1.99. Both exceed the starting value alphaMax,
	// so neither binds and alphaMax itself wins.
	want := alphaMax
	if got != want {
		t.Errorf("fractionToBoundary = %v, want %v", got, want)
	}
}

func TestFractionToBoundaryNoNegativeComponents(t *testing.T) {
	z := []float64{1.0, 2.0}
	pz := []float64{0.1, 0.2}
	alphaMax := 0.995

	got := fractionToBoundary(z, pz, alphaMax)
	if got != alphaMax {
		t.Errorf("fractionToBoundary = %v, want alphaMax = %v", got, alphaMax)
	}
}

// lineSearchProblem is a minimal Problem implementation that only needs
// Objective and Constraints to be meaningful: lineSearch never calls the
// other four callbacks.
type lineSearchProblem struct {
	objective   func(x []float64) (float64, error)
	constraints func(x []float64) ([]float64, error)
}

func (p *lineSearchProblem) Objective(x []float64) (float64, error) { return p.objective(x) }
func (p *lineSearchProblem) Gradient([]float64) ([]float64, error)  { panic("unused") }
func (p *lineSearchProblem) Hessian([]float64) (*mat.SymDense, error) {
	panic("unused")
}
func (p *lineSearchProblem) Constraints(x []float64) ([]float64, error) { return p.constraints(x) }
func (p *lineSearchProblem) Jacobian([]float64) (*mat.Dense, error)     { panic("unused") }
func (p *lineSearchProblem) LagrangianHessian([]float64, []float64) (*mat.SymDense, error) {
	panic("unused")
}

func TestLineSearchFailureOnUnboundedMonotoneFunction(t *testing.T) {
	// §8 scenario 5: f(x) = x, c(x) = x from x_guess = -1, monotone and
	// unbounded below on the feasible side. A direction that moves toward
	// infeasibility at every step length above alphaMin drives
	// backtracking to exhaustion.
	cfg := NewConfig()
	x := []float64{-1.0}
	z := []float64{1.0}
	px := []float64{1.0} // moves x toward 0, i.e. toward c(x) = x > 0
	pz := []float64{0.0}

	p := &lineSearchProblem{
		objective:   func(x []float64) (float64, error) { return x[0], nil },
		constraints: func(x []float64) ([]float64, error) { return []float64{x[0]}, nil },
	}

	_, err := lineSearch(p, x, z, px, pz, -1.0, -1.0, -1.0, 0.1, 0.1, cfg)
	if err == nil {
		t.Fatal("lineSearch succeeded, want *LineSearchFailure")
	}
	if _, ok := err.(*LineSearchFailure); !ok {
		t.Fatalf("got error %v (%T), want *LineSearchFailure", err, err)
	}
}
