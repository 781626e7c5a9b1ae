package grad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradlab/grad"
)

// One end-to-end case through the public surface: A = [1 2; 3 4],
// x = [1 1], b = [1 0] gives ∇ₓf = [46 64].
func TestPublicSurface(t *testing.T) {
	grad.SetFloat64(true)
	t.Cleanup(func() { grad.SetFloat64(false) })
	require.True(t, grad.Float64Enabled())

	x := mat.NewVecDense(2, []float64{1, 1})
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewVecDense(2, []float64{1, 0})

	e := grad.New()
	g, err := e.Gradient(grad.WithRespectToX).Vec(x, a, b)
	require.NoError(t, err)

	assert.InDelta(t, 46.0, g.AtVec(0), 1e-10)
	assert.InDelta(t, 64.0, g.AtVec(1), 1e-10)
}
