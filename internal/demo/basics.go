package demo

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradlab/internal/grad"
	"github.com/born-ml/gradlab/internal/keyrand"
)

// runBasics is the warm-up cell: two seeded length-5 vectors, their dot
// product computed two ways, and their outer product.
func runBasics(w io.Writer, _ *grad.Engine) error {
	const n = 5
	keys := keyrand.New(0).Split(2)
	x := keyrand.NormalVec(keys[0], n)
	y := keyrand.NormalVec(keys[1], n)

	fmt.Fprintf(w, "x = %.4v\n", mat.Formatted(x.T()))
	fmt.Fprintf(w, "y = %.4v\n", mat.Formatted(y.T()))

	// x·y and xᵀy are the same number, spelled differently.
	dot := mat.Dot(x, y)
	var xty mat.Dense
	xty.Mul(x.T(), y)

	fmt.Fprintf(w, "dot(x, y)   = %.6f\n", dot)
	fmt.Fprintf(w, "x.T() * y   = %.6f\n", xty.At(0, 0))
	if math.Abs(dot-xty.At(0, 0)) > 1e-12 {
		return fmt.Errorf("dot product disagreement: %g vs %g", dot, xty.At(0, 0))
	}

	// outer(x, y)[i,j] = x[i]*y[j].
	var outer mat.Dense
	outer.Outer(1, x, y)
	fmt.Fprintf(w, "outer(x, y) =\n%.4v\n", mat.Formatted(&outer, mat.Prefix("              ")))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(outer.At(i, j)-x.AtVec(i)*y.AtVec(j)) > 1e-12 {
				return fmt.Errorf("outer[%d,%d] != x[%d]*y[%d]", i, j, i, j)
			}
		}
	}
	fmt.Fprintln(w, "outer product entries verified against x[i]*y[j]")
	return nil
}
