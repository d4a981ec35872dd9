// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

// fractionToBoundary caps α so that z + α·p_z stays strictly positive,
// per §4.6: for each i with p_zi < 0, α ← min(α, α_max·zᵢ/(−p_zi)).
func fractionToBoundary(z, pz []float64, alphaMax float64) float64 {
	alpha := alphaMax
	for i, pzi := range pz {
		if pzi < 0 {
			cand := alphaMax * z[i] / -pzi
			if cand < alpha {
				alpha = cand
			}
		}
	}
	return alpha
}

// lineSearchResult holds the accepted step and the telemetry fields that
// depend on it.
type lineSearchResult struct {
	backtracks int // number of step-size reductions by β performed (the "ls" telemetry column)
	alpha      float64
	x          []float64
	z          []float64
}

// lineSearch implements §4.6: it starts from the fraction-to-boundary cap
// and backtracks by β until the trial point is both feasible (c⁺ ≤ 0
// componentwise) and satisfies the sufficient-decrease test
//
//	ψ⁺ < ψ + τ·η·α·Dψ
//
// or until α falls below α_min, which is reported as a *LineSearchFailure.
func lineSearch(problem Problem, x, z, px, pz []float64, f, psi, dPsi, eta, mu float64, cfg *Config) (*lineSearchResult, error) {
	alpha := fractionToBoundary(z, pz, cfg.alfMax)

	n, m := len(x), len(z)
	xTrial := make([]float64, n)
	zTrial := make([]float64, m)

	backtracks := 0
	for {
		for i := range xTrial {
			xTrial[i] = x[i] + alpha*px[i]
		}
		for i := range zTrial {
			zTrial[i] = z[i] + alpha*pz[i]
		}

		ok := acceptableTrial(problem, xTrial, zTrial, psi, dPsi, eta, mu, alpha, cfg)
		if ok {
			return &lineSearchResult{backtracks: backtracks, alpha: alpha, x: xTrial, z: zTrial}, nil
		}

		alpha *= cfg.beta
		backtracks++
		if alpha < cfg.alfMin {
			return nil, &LineSearchFailure{Alpha: alpha}
		}
	}
}

// acceptableTrial evaluates the trial point and reports whether it passes
// the feasibility filter and the sufficient-decrease test. A callback
// failure at the trial point is treated as an unacceptable candidate
// (§4.1), causing the caller to contract the step rather than fail.
func acceptableTrial(problem Problem, xTrial, zTrial []float64, psi, dPsi, eta, mu, alpha float64, cfg *Config) bool {
	cTrial, err := problem.Constraints(xTrial)
	if err != nil {
		return false
	}
	for _, ci := range cTrial {
		if ci > 0 {
			return false
		}
	}

	fTrial, err := problem.Objective(xTrial)
	if err != nil {
		return false
	}

	psiTrial := meritValue(fTrial, cTrial, zTrial, mu, cfg.eps)
	return psiTrial < psi+cfg.tau*eta*alpha*dPsi
}
