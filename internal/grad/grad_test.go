package grad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradlab/internal/grad"
	"github.com/born-ml/gradlab/internal/keyrand"
	"github.com/born-ml/gradlab/internal/quadratic"
)

// problem generates a seeded instance of f(x, A, b).
func problem(seed uint64, n int) (*mat.VecDense, *mat.Dense, *mat.VecDense) {
	keys := keyrand.New(seed).Split(3)
	x := keyrand.NormalVec(keys[0], n)
	a := keyrand.NormalMat(keys[1], n, n)
	b := keyrand.NormalVec(keys[2], n)
	return x, a, b
}

func withFloat64(t *testing.T) {
	t.Helper()
	grad.SetFloat64(true)
	t.Cleanup(func() { grad.SetFloat64(false) })
}

func TestValue_MatchesAnalytic(t *testing.T) {
	withFloat64(t)
	x, a, b := problem(42, 50)

	e := grad.New()
	got, err := e.Value().Scalar(x, a, b)
	require.NoError(t, err)

	want := quadratic.Value(a, x, b)
	assert.InEpsilon(t, want, got, 1e-10)
}

func TestGradientX_MatchesAnalytic(t *testing.T) {
	withFloat64(t)
	x, a, b := problem(42, 1000)

	e := grad.New()
	got, err := e.Gradient(grad.WithRespectToX).Vec(x, a, b)
	require.NoError(t, err)

	want := quadratic.Gradient(nil, a, x, b)
	assert.Less(t, quadratic.MaxRelError(got, want), 1e-8)
}

func TestGradientA_MatchesAnalytic(t *testing.T) {
	withFloat64(t)
	x, a, b := problem(7, 64)

	e := grad.New()
	got, err := e.Gradient(grad.WithRespectToA).Mat(x, a, b)
	require.NoError(t, err)

	want := quadratic.GradientA(nil, a, x, b)
	assert.Less(t, quadratic.MaxRelError(got, want), 1e-9)
}

func TestGradientB_MatchesAnalytic(t *testing.T) {
	withFloat64(t)
	x, a, b := problem(7, 64)

	e := grad.New()
	got, err := e.Gradient(grad.WithRespectToB).Vec(x, a, b)
	require.NoError(t, err)

	want := quadratic.GradientB(nil, a, x, b)
	assert.Less(t, quadratic.MaxRelError(got, want), 1e-9)
}

func TestGradient_WrongRankAccessor(t *testing.T) {
	withFloat64(t)
	x, a, b := problem(3, 10)

	e := grad.New()
	// The gradient w.r.t. x is rank-1; asking for a matrix must fail.
	_, err := e.Gradient(grad.WithRespectToX).Mat(x, a, b)
	assert.Error(t, err)

	// And the gradient w.r.t. A is rank-2; asking for a vector must fail.
	_, err = e.Gradient(grad.WithRespectToA).Vec(x, a, b)
	assert.Error(t, err)
}

func TestGradient_ShapeMismatchIsError(t *testing.T) {
	withFloat64(t)
	x := mat.NewVecDense(4, nil)
	a := mat.NewDense(3, 3, nil) // incompatible with len(x)=4
	b := mat.NewVecDense(3, nil)

	e := grad.New()
	_, err := e.Gradient(grad.WithRespectToX).Vec(x, a, b)
	assert.Error(t, err, "backend shape panic must surface as an error")
}

func TestArg_String(t *testing.T) {
	assert.Equal(t, "x", grad.WithRespectToX.String())
	assert.Equal(t, "A", grad.WithRespectToA.String())
	assert.Equal(t, "b", grad.WithRespectToB.String())
}

func BenchmarkGradient(b *testing.B) {
	grad.SetFloat64(true)
	defer grad.SetFloat64(false)

	x, a, bb := problem(42, 1000)
	e := grad.New()

	b.Run("autodiff-compiled", func(b *testing.B) {
		f := e.Gradient(grad.WithRespectToX)
		if _, err := f.Vec(x, a, bb); err != nil { // warm-up compile
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := f.Vec(x, a, bb); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("analytic", func(b *testing.B) {
		dst := mat.NewVecDense(x.Len(), nil)
		for i := 0; i < b.N; i++ {
			quadratic.Gradient(dst, a, x, bb)
		}
	})
}
