// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// iterationQuantities holds the centering/duality values computed once per
// outer iteration, per §4.5 step 2 and §4.7's TEST state.
type iterationQuantities struct {
	rx         []float64 // r_x = g + Jᵀz
	rc         []float64 // r_c = c ⊙ z
	r0Norm     float64   // ‖(r_x, r_c)‖
	eta        float64
	sigma      float64
	dualityGap float64
	mu         float64
}

// workspace holds the scratch buffers computeIterationQuantities and
// computeStep write into, sized once at Solve entry and reused (not
// reallocated) across every outer iteration of that call, per the
// teacher's `resize`/`resizeSymDense` pattern (see DESIGN.md). n and m are
// fixed for the lifetime of a Solve call (§6), so resizing is a one-time
// concern handled by newWorkspace rather than a per-iteration check.
type workspace struct {
	rx, rc        []float64
	jtz           []float64
	cEps, invCEps []float64
	weights       []float64
	jtInvC        []float64
	gb            []float64
	jpx           []float64
	px, pz        []float64
	sStep, yStep  []float64
}

// newWorkspace allocates the scratch buffers for one Solve call over an
// n-variable, m-constraint problem.
func newWorkspace(n, m int) *workspace {
	return &workspace{
		rx:      make([]float64, n),
		rc:      make([]float64, m),
		jtz:     make([]float64, n),
		cEps:    make([]float64, m),
		invCEps: make([]float64, m),
		weights: make([]float64, m),
		jtInvC:  make([]float64, n),
		gb:      make([]float64, n),
		jpx:     make([]float64, m),
		px:      make([]float64, n),
		pz:      make([]float64, m),
		sStep:   make([]float64, n),
		yStep:   make([]float64, n),
	}
}

// computeIterationQuantities implements §4.5 steps 1-2, writing into w's
// rx/rc buffers rather than allocating fresh ones each iteration.
func computeIterationQuantities(w *workspace, g, c, z []float64, J *mat.Dense, cfg *Config) *iterationQuantities {
	n, m := len(g), len(c)
	nu := float64(n + m)

	rx := w.rx
	jtz := la{}.matTransVec(w.jtz, J, z)
	floats.AddTo(rx, g, jtz)

	rc := w.rc
	floats.MulTo(rc, c, z)

	r0Norm := math.Hypot(floats.Norm(rx, 2), floats.Norm(rc, 2))

	eta := math.Min(cfg.etaMax, r0Norm/nu)
	sigma := math.Min(cfg.sigMax, math.Sqrt(r0Norm/nu))

	dualityGap := -floats.Dot(c, z)
	mu := math.Max(cfg.muMin, sigma*dualityGap/float64(m))

	return &iterationQuantities{
		rx: rx, rc: rc, r0Norm: r0Norm,
		eta: eta, sigma: sigma, dualityGap: dualityGap, mu: mu,
	}
}

// stepDirection holds the primal and dual search directions of §4.5.
type stepDirection struct {
	px []float64
	pz []float64
}

// computeStep implements §4.5 steps 3-6: diagonal scaling, the reduced
// gradient and Hessian, the Schur-complement solve for pₓ, and the
// algebraic recovery of p_z. B is the current Hessian source: ∇²f(x) in
// NEWTON mode, the maintained quasi-Newton approximation in BFGS mode, or
// the identity in STEEPEST mode (§3's "treated as the identity
// (implicit)" — represented here as a concrete identity matrix so the
// reduced system is assembled the same way in all three modes).
func computeStep(w *workspace, g, c, z []float64, J *mat.Dense, W, B *mat.SymDense, mu float64, cfg *Config) (*stepDirection, error) {
	n, m := len(g), len(c)
	var l la

	// c_ε = c − ε; S·(−1) weight, i.e. T_i = z_i/(ε − c_i), positive under
	// the strict-feasibility invariant (c_i < 0).
	cEps := w.cEps
	for i, ci := range c {
		cEps[i] = ci - cfg.eps
	}
	invCEps := l.reciprocal(w.invCEps, cEps)

	weights := w.weights
	for i := range weights {
		weights[i] = z[i] / (cfg.eps - c[i])
	}

	gram := l.weightedGram(nil, J, weights)

	Hr := l.addSym(nil, B, W)
	Hr.AddSym(Hr, gram)

	// g_b = g − μ·Jᵀ(1/c_ε); solve Hr·pₓ = −g_b.
	jtInvC := l.matTransVec(w.jtInvC, J, invCEps)
	gb := w.gb
	copy(gb, g)
	floats.AddScaled(gb, -mu, jtInvC)
	rhs := gb
	floats.Scale(-1, rhs)

	px, err := l.factorizeAndSolve(w.px, Hr, rhs)
	if err != nil {
		return nil, &NumericalError{Stage: "step_solve", Err: err}
	}

	// p_z = −( z + μ·(1/c_ε) + S·J·pₓ ), S = diag(z/c_ε) = -diag(weights)
	Jpx := resizeFloats(w.jpx, m)
	jv := mat.NewVecDense(m, Jpx)
	jv.MulVec(J, mat.NewVecDense(n, px))

	pz := w.pz
	for i := range pz {
		sJpx := -weights[i] * Jpx[i]
		pz[i] = -(z[i] + mu*invCEps[i] + sJpx)
	}

	return &stepDirection{px: px, pz: pz}, nil
}
