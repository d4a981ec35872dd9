// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// meritValue evaluates ψ(x,z;μ) = f(x) − c(x)ᵀz − μ·Σᵢ log(cᵢ²zᵢ+ε), per
// §4.4. The squared cᵢ is intentional and left verbatim per the open
// question in spec §9: it makes ψ insensitive to the sign of cᵢ, and it
// is the line search's feasibility filter (c⁺ ≤ 0), not ψ itself, that
// enforces strict interior feasibility.
func meritValue(f float64, c, z []float64, mu, eps float64) float64 {
	psi := f - floats.Dot(c, z)
	for i, ci := range c {
		psi -= mu * math.Log(ci*ci*z[i]+eps)
	}
	return psi
}

// meritDirectionalDerivative evaluates the directional derivative of ψ
// along (px, pz), per §4.4:
//
//	Dψ = pxᵀ[g − Jᵀz − 2μ·Jᵀ(1/(c−ε))] − pzᵀ[c + μ·(1/(z+ε))]
func meritDirectionalDerivative(px, pz, g, c, z []float64, J *mat.Dense, mu, eps float64) float64 {
	var l la

	cMinusEps := make([]float64, len(c))
	for i, ci := range c {
		cMinusEps[i] = ci - eps
	}
	invCMinusEps := l.reciprocal(nil, cMinusEps)
	jtInvC := l.matTransVec(nil, J, invCMinusEps)

	jtz := l.matTransVec(nil, J, z)

	bracketX := make([]float64, len(g))
	copy(bracketX, g)
	floats.SubTo(bracketX, bracketX, jtz)
	floats.AddScaled(bracketX, -2*mu, jtInvC)

	bracketZ := make([]float64, len(c))
	copy(bracketZ, c)
	for i, zi := range z {
		bracketZ[i] += mu / (zi + eps)
	}

	return floats.Dot(px, bracketX) - floats.Dot(pz, bracketZ)
}
