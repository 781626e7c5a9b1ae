package quadratic

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"

	"github.com/born-ml/gradlab/internal/parallel"
)

// GradientForward computes the gradient with respect to x by forward-mode
// propagation of dual numbers through the objective: entry i is the ϵ
// coefficient of f evaluated with x[i] perturbed. One full evaluation per
// entry, so O(n³) total; intended as an independent check of the
// reverse-mode result on small problems.
func GradientForward(a *mat.Dense, x, b *mat.VecDense) *mat.VecDense {
	n := checkDims(a, x, b)
	out := mat.NewVecDense(n, nil)
	parallel.For(n, func(i int) {
		out.SetVec(i, evalDual(a, x, b, i).Emag)
	}, parallel.DefaultConfig())
	return out
}

// evalDual evaluates f with a unit dual perturbation on x[i].
func evalDual(a *mat.Dense, x, b *mat.VecDense, i int) dual.Number {
	n := x.Len()
	var sum dual.Number
	for k := 0; k < n; k++ {
		r := dual.Number{Real: -b.AtVec(k)}
		for j := 0; j < n; j++ {
			xj := dual.Number{Real: x.AtVec(j)}
			if j == i {
				xj.Emag = 1
			}
			r = dual.Add(r, dual.Mul(dual.Number{Real: a.At(k, j)}, xj))
		}
		sum = dual.Add(sum, dual.Mul(r, r))
	}
	return sum
}

// HessianForward computes the Hessian with respect to x by forward-mode
// propagation of hyperdual numbers: entry (i, j) is the ϵ₁ϵ₂ coefficient of
// f evaluated with x[i] perturbed along ϵ₁ and x[j] along ϵ₂. Entries are
// independent of each other, so the upper triangle is filled in parallel and
// mirrored.
func HessianForward(a *mat.Dense, x, b *mat.VecDense) *mat.Dense {
	n := checkDims(a, x, b)
	out := mat.NewDense(n, n, nil)
	parallel.ForUpper(n, func(i, j int) {
		h := evalHyperdual(a, x, b, i, j).E1E2mag
		out.Set(i, j, h)
		out.Set(j, i, h)
	}, parallel.DefaultConfig())
	return out
}

// evalHyperdual evaluates f with unit ϵ₁ and ϵ₂ perturbations on x[i] and
// x[j]. When i == j both perturbations land on the same coordinate, which
// yields the diagonal second derivative.
func evalHyperdual(a *mat.Dense, x, b *mat.VecDense, i, j int) hyperdual.Number {
	n := x.Len()
	var sum hyperdual.Number
	for k := 0; k < n; k++ {
		r := hyperdual.Number{Real: -b.AtVec(k)}
		for l := 0; l < n; l++ {
			xl := hyperdual.Number{Real: x.AtVec(l)}
			if l == i {
				xl.E1mag = 1
			}
			if l == j {
				xl.E2mag = 1
			}
			r = hyperdual.Add(r, hyperdual.Mul(hyperdual.Number{Real: a.At(k, l)}, xl))
		}
		sum = hyperdual.Add(sum, hyperdual.Mul(r, r))
	}
	return sum
}
