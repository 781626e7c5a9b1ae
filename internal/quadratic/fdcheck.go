package quadratic

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Func returns f as a plain closure over slices, suitable for numerical
// differentiation packages.
func Func(a *mat.Dense, b *mat.VecDense) func(x []float64) float64 {
	return func(x []float64) float64 {
		return Value(a, mat.NewVecDense(len(x), x), b)
	}
}

// GradientFD approximates the gradient with respect to x by central finite
// differences. Unlike the dual-number and reverse-mode paths this is an
// approximation, good to roughly sqrt(machine epsilon); it serves as a
// library-independent sanity check.
func GradientFD(a *mat.Dense, x, b *mat.VecDense) *mat.VecDense {
	n := checkDims(a, x, b)
	dst := make([]float64, n)
	fd.Gradient(dst, Func(a, b), x.RawVector().Data, &fd.Settings{
		Formula:    fd.Central,
		Concurrent: true,
	})
	return mat.NewVecDense(n, dst)
}
