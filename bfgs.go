// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// bfgsUpdater maintains a positive-definite approximation B ≈ ∇²f, per
// §4.3. It mirrors the rank-two structure of the teacher's BFGS.NextDirection
// (bfgs.go), applied here to B directly (rather than the inverse B⁻¹ the
// teacher tracks) since the Schur-complement step of §4.5 needs B itself.
type bfgsUpdater struct{}

// update computes B⁺ = B − (Bs)(Bs)ᵀ/(sᵀBs) + yyᵀ/(yᵀs) in place on B.
// It requires yᵀs > 0; on violation it returns a *NumericalError and
// leaves B unmodified, per §4.3's precondition and §4.7's failure policy
// ("the update fails... this is fatal during that iteration").
func (bfgsUpdater) update(B *mat.SymDense, s, y []float64) error {
	sDotY := floats.Dot(s, y)
	if sDotY <= 0 {
		return &NumericalError{Stage: "bfgs_update", Err: errNonPositiveCurvature}
	}

	n := len(s)
	sVec := mat.NewVecDense(n, s)
	yVec := mat.NewVecDense(n, y)

	var Bs mat.VecDense
	Bs.MulVec(B, sVec)
	sDotBs := mat.Dot(sVec, &Bs)
	if sDotBs <= 0 {
		return &NumericalError{Stage: "bfgs_update", Err: errNonPositiveCurvature}
	}

	B.SymRankOne(B, -1/sDotBs, &Bs)
	B.SymRankOne(B, 1/sDotY, yVec)
	return nil
}

var errNonPositiveCurvature = errMissing("curvature condition yᵀs > 0 violated")
