package demo

import (
	"fmt"
	"io"

	"github.com/born-ml/gradlab/internal/grad"
	"github.com/born-ml/gradlab/internal/quadratic"
)

// runPrecision runs the same seeded gradient at 32-bit and 64-bit precision
// and compares both against the float64 analytic reference. Data generation
// is always float64, so the only difference between the runs is the dtype
// the compiled program executes under.
func runPrecision(w io.Writer, e *grad.Engine) error {
	const n = 200
	x, a, b := seededProblem(42, n)
	want := quadratic.Gradient(nil, a, x, b)

	prev := grad.Float64Enabled()
	defer grad.SetFloat64(prev)

	grad.SetFloat64(false)
	got32, err := e.Gradient(grad.WithRespectToX).Vec(x, a, b)
	if err != nil {
		return err
	}
	err32 := quadratic.MaxRelError(got32, want)

	grad.SetFloat64(true)
	got64, err := e.Gradient(grad.WithRespectToX).Vec(x, a, b)
	if err != nil {
		return err
	}
	err64 := quadratic.MaxRelError(got64, want)

	fmt.Fprintf(w, "gradient accuracy vs analytic reference, n = %d, fixed key\n\n", n)
	fmt.Fprintf(w, "float32 (default): max rel err %.2e\n", err32)
	fmt.Fprintf(w, "float64 (enabled): max rel err %.2e\n\n", err64)

	if err64 >= err32 {
		return fmt.Errorf("float64 did not improve accuracy: %g vs %g", err64, err32)
	}
	fmt.Fprintf(w, "64-bit precision improves accuracy by %.1e×\n", err32/err64)
	return nil
}
