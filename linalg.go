// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// la bundles the dense linear algebra operations of §4.2. It holds no
// state; it exists so the rest of the solver reads as calls to a façade
// rather than scattered direct uses of mat/floats, and so a future
// backend swap touches one file.
type la struct{}

// weightedGram computes dst = Jᵀ·diag(weights)·J for a nonnegative weight
// vector of length m, where J is m×n. It scales a transposed copy of J by
// the elementwise square root of weights and calls SymOuterK, the same
// two-step construction stat.CovarianceMatrix uses to build a provably
// symmetric result from a non-square input.
func (la) weightedGram(dst *mat.SymDense, J *mat.Dense, weights []float64) *mat.SymDense {
	m, n := J.Dims()
	if len(weights) != m {
		panic("ipm: weight length mismatch")
	}

	var jt mat.Dense
	jt.CloneFrom(J.T())

	sqrtW := make([]float64, m)
	for i, w := range weights {
		sqrtW[i] = math.Sqrt(math.Max(w, 0))
	}
	for j := 0; j < n; j++ {
		row := jt.RawRowView(j)
		floats.Mul(row, sqrtW)
	}

	if dst == nil || dst.SymmetricDim() != n {
		dst = mat.NewSymDense(n, nil)
	}
	dst.SymOuterK(1, &jt)
	return dst
}

// addSym computes dst = a + b for two symmetric matrices of the same
// dimension, allocating dst if it is nil or mis-sized.
func (la) addSym(dst *mat.SymDense, a, b *mat.SymDense) *mat.SymDense {
	n := a.SymmetricDim()
	if dst == nil || dst.SymmetricDim() != n {
		dst = mat.NewSymDense(n, nil)
	}
	dst.AddSym(a, b)
	return dst
}

// matTransVec computes Jᵀv for J ∈ ℝᵐˣⁿ, v ∈ ℝᵐ, writing the length-n
// result into dst (reusing its backing array when it is already length n)
// and returning it.
func (la) matTransVec(dst []float64, J *mat.Dense, v []float64) []float64 {
	_, n := J.Dims()
	dst = resizeFloats(dst, n)
	vd := mat.NewVecDense(n, dst)
	vd.MulVec(J.T(), mat.NewVecDense(len(v), v))
	return dst
}

// factorizeAndSolve solves Hr·p = rhs via Cholesky factorization, writing
// the result into dst (reusing its backing array when already the right
// length), per §4.2's "symmetric factorization and triangular solve". A
// factorization that is not positive definite is reported as
// errIndefinite; a solution containing a non-finite entry is reported as
// errNonFinite. Both are the two failure modes §4.2 names, and both are
// fatal for the current solve.
func (la) factorizeAndSolve(dst []float64, Hr *mat.SymDense, rhs []float64) ([]float64, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(Hr); !ok {
		return nil, errIndefinite
	}

	dst = resizeFloats(dst, len(rhs))
	b := mat.NewVecDense(len(rhs), rhs)
	x := mat.NewVecDense(len(rhs), dst)
	if err := chol.SolveVecTo(x, b); err != nil {
		return nil, err
	}

	for _, v := range dst {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errNonFinite
		}
	}
	return dst, nil
}

// reciprocal writes the elementwise reciprocal of x into dst (reusing its
// backing array when it has enough capacity) and returns it.
// floats has no reciprocal helper, so this loop is the façade's one piece
// of hand-rolled elementwise algebra.
func (la) reciprocal(dst, x []float64) []float64 {
	dst = resizeFloats(dst, len(x))
	for i, v := range x {
		dst[i] = 1 / v
	}
	return dst
}

// identitySym returns the n×n identity matrix, used as the Hessian source
// in STEEPEST mode and as BFGS's initial B.
func identitySym(n int) *mat.SymDense {
	id := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		id.SetSym(i, i, 1)
	}
	return id
}

// resizeFloats returns a slice of length n, reusing dst's backing array
// when it has enough capacity, matching the teacher's own resize helper
// (optimize/minimize.go).
func resizeFloats(dst []float64, n int) []float64 {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]float64, n)
}
