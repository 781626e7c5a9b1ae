// Package quadratic implements the least-squares objective
//
//	f(x, A, b) = (Ax − b)·(Ax − b)
//
// and its closed-form derivatives. These analytic forms are the ground truth
// the autodiff demos are checked against:
//
//	∇ₓf = 2·Aᵀ(Ax − b)
//	∇ₐf = 2·(Ax − b)·xᵀ
//	∇ᵦf = −2·(Ax − b)
//	∇²ₓf = 2·AᵀA
//
// All inputs are immutable; every function is pure. Dimension mismatches
// panic, since they are programmer errors rather than runtime conditions.
package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// checkDims panics unless A is n×n with n = len(x) = len(b).
func checkDims(a *mat.Dense, x, b *mat.VecDense) int {
	r, c := a.Dims()
	if r != c {
		panic(fmt.Sprintf("quadratic: A must be square, got %d×%d", r, c))
	}
	if x.Len() != c || b.Len() != r {
		panic(fmt.Sprintf("quadratic: dimension mismatch: A is %d×%d, len(x)=%d, len(b)=%d",
			r, c, x.Len(), b.Len()))
	}
	return r
}

// residual computes Ax − b.
func residual(a *mat.Dense, x, b *mat.VecDense) *mat.VecDense {
	n := checkDims(a, x, b)
	r := mat.NewVecDense(n, nil)
	r.MulVec(a, x)
	r.SubVec(r, b)
	return r
}

// Value returns f(x, A, b) = ‖Ax − b‖².
func Value(a *mat.Dense, x, b *mat.VecDense) float64 {
	r := residual(a, x, b)
	return mat.Dot(r, r)
}

// Gradient stores 2·Aᵀ(Ax − b), the gradient with respect to x, into dst
// and returns dst. If dst is nil a new vector is allocated.
func Gradient(dst *mat.VecDense, a *mat.Dense, x, b *mat.VecDense) *mat.VecDense {
	n := checkDims(a, x, b)
	r := residual(a, x, b)
	if dst == nil {
		dst = mat.NewVecDense(n, nil)
	}
	dst.MulVec(a.T(), r)
	dst.ScaleVec(2, dst)
	return dst
}

// GradientA stores 2·(Ax − b)·xᵀ, the gradient with respect to A, into dst
// and returns dst. If dst is nil a new matrix is allocated.
func GradientA(dst *mat.Dense, a *mat.Dense, x, b *mat.VecDense) *mat.Dense {
	n := checkDims(a, x, b)
	r := residual(a, x, b)
	if dst == nil {
		dst = mat.NewDense(n, n, nil)
	}
	dst.Outer(2, r, x)
	return dst
}

// GradientB stores −2·(Ax − b), the gradient with respect to b, into dst
// and returns dst. If dst is nil a new vector is allocated.
func GradientB(dst *mat.VecDense, a *mat.Dense, x, b *mat.VecDense) *mat.VecDense {
	n := checkDims(a, x, b)
	r := residual(a, x, b)
	if dst == nil {
		dst = mat.NewVecDense(n, nil)
	}
	dst.ScaleVec(-2, r)
	return dst
}

// Hessian stores 2·AᵀA, the Hessian with respect to x, into dst and returns
// dst. The Hessian does not depend on x or b. If dst is nil a new matrix is
// allocated.
func Hessian(dst *mat.Dense, a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	if r != c {
		panic(fmt.Sprintf("quadratic: A must be square, got %d×%d", r, c))
	}
	if dst == nil {
		dst = mat.NewDense(r, c, nil)
	}
	dst.Mul(a.T(), a)
	dst.Scale(2, dst)
	return dst
}

// MaxRelError returns max_i |got_i − want_i| / max(1, |want_i|) over the
// flattened entries of two equally-shaped matrices. Used by demos and tests
// to compare derivative computations.
func MaxRelError(got, want mat.Matrix) float64 {
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		panic(fmt.Sprintf("quadratic: shape mismatch: %d×%d vs %d×%d", gr, gc, wr, wc))
	}
	var worst float64
	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			w := want.At(i, j)
			diff := got.At(i, j) - w
			if diff < 0 {
				diff = -diff
			}
			scale := w
			if scale < 0 {
				scale = -scale
			}
			if scale < 1 {
				scale = 1
			}
			if e := diff / scale; e > worst {
				worst = e
			}
		}
	}
	return worst
}
