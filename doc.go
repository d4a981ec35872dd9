// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipm implements a primal-dual interior-point method for convex
// nonlinear programs of the form
//
//	minimize   f(x)
//	subject to c(x) ≤ 0
//
// where f is a twice-differentiable convex objective and c is a vector of
// convex inequality constraints. Equality constraints are not supported.
//
// The solver perturbs the Karush-Kuhn-Tucker conditions with a barrier
// parameter driven to zero along a centering schedule, reduces each
// iteration to a symmetric linear system via the Schur complement, and
// globalizes the resulting direction with a fraction-to-boundary rule and
// a backtracking line search on a logarithmic-barrier merit function.
//
// Dense linear algebra is delegated to gonum.org/v1/gonum/mat and
// gonum.org/v1/gonum/floats; this package owns only the interior-point
// iteration itself.
package ipm
