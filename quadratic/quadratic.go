// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quadratic provides closed-form derivatives of the least-squares
// objective f(x, A, b) = (Ax − b)·(Ax − b), plus forward-mode and
// finite-difference evaluations of the same quantities. These are the
// references the autodiff results are validated against.
package quadratic

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradlab/internal/quadratic"
)

// Value returns f(x, A, b) = ‖Ax − b‖².
func Value(a *mat.Dense, x, b *mat.VecDense) float64 {
	return quadratic.Value(a, x, b)
}

// Gradient stores 2·Aᵀ(Ax − b) into dst (allocated when nil) and returns it.
func Gradient(dst *mat.VecDense, a *mat.Dense, x, b *mat.VecDense) *mat.VecDense {
	return quadratic.Gradient(dst, a, x, b)
}

// Hessian stores 2·AᵀA into dst (allocated when nil) and returns it.
func Hessian(dst *mat.Dense, a *mat.Dense) *mat.Dense {
	return quadratic.Hessian(dst, a)
}

// HessianForward computes the Hessian by forward-mode propagation of
// hyperdual numbers through f.
func HessianForward(a *mat.Dense, x, b *mat.VecDense) *mat.Dense {
	return quadratic.HessianForward(a, x, b)
}

// MaxRelError returns the worst per-entry relative error between two
// equally-shaped matrices.
func MaxRelError(got, want mat.Matrix) float64 {
	return quadratic.MaxRelError(got, want)
}
