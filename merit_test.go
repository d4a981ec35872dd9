// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestMeritValueSignInsensitiveToC(t *testing.T) {
	// §9 open question: the c² term makes ψ identical for c and -c. This
	// is intentional and must be preserved verbatim.
	f, z, mu, eps := 2.0, []float64{3.0}, 0.1, 1e-8

	psiPos := meritValue(f, []float64{0.5}, z, mu, eps)
	psiNeg := meritValue(f, []float64{-0.5}, z, mu, eps)
	if !floats.EqualWithinAbsOrRel(psiPos, psiNeg, 1e-12, 1e-12) {
		t.Errorf("meritValue(c=0.5) = %v, meritValue(c=-0.5) = %v, want equal", psiPos, psiNeg)
	}
}

func TestMeritDirectionalDerivativeMatchesContract(t *testing.T) {
	// meritDirectionalDerivative implements the §4.4 contract formula
	// verbatim; it is not the exact derivative of meritValue (whose c²
	// term makes the two formulas deliberately inconsistent, per the §9
	// open question), so this test checks the contract formula directly
	// rather than against a finite difference of ψ.
	g := []float64{1.0, -2.0}
	c := []float64{-0.5}
	z := []float64{2.0}
	px := []float64{0.3, -0.2}
	pz := []float64{0.1}
	mu, eps := 0.05, 1e-8
	J := mat.NewDense(1, 2, []float64{1, 1})

	cEps := c[0] - eps
	bracketX := []float64{
		g[0] - z[0]*1 - 2*mu*(1/cEps)*1,
		g[1] - z[0]*1 - 2*mu*(1/cEps)*1,
	}
	bracketZ := c[0] + mu/(z[0]+eps)
	want := px[0]*bracketX[0] + px[1]*bracketX[1] - pz[0]*bracketZ

	got := meritDirectionalDerivative(px, pz, g, c, z, J, mu, eps)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("meritDirectionalDerivative = %v, want %v", got, want)
	}
}
