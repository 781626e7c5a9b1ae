package quadratic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradlab/quadratic"
)

// The public surface delegates to internal/quadratic; one known case keeps
// the wiring honest.
func TestPublicSurface(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	x := mat.NewVecDense(2, []float64{1, 1})
	b := mat.NewVecDense(2, []float64{1, 0})

	assert.InDelta(t, 53.0, quadratic.Value(a, x, b), 1e-12)

	g := quadratic.Gradient(nil, a, x, b)
	assert.InDelta(t, 46.0, g.AtVec(0), 1e-12)
	assert.InDelta(t, 64.0, g.AtVec(1), 1e-12)

	h := quadratic.Hessian(nil, a)
	hf := quadratic.HessianForward(a, x, b)
	assert.Less(t, quadratic.MaxRelError(hf, h), 1e-10)
}
