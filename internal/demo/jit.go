package demo

import (
	"fmt"
	"io"

	"github.com/born-ml/gradlab/internal/bench"
	"github.com/born-ml/gradlab/internal/grad"
	"github.com/born-ml/gradlab/internal/quadratic"
)

// runJIT shows compile-once-call-many: the first call of a compiled
// function pays for graph compilation, warmed-up calls replay the program.
func runJIT(w io.Writer, e *grad.Engine) error {
	const n = 1000
	grad.SetFloat64(true)
	defer grad.SetFloat64(false)

	x, a, b := seededProblem(42, n)
	f := e.Gradient(grad.WithRespectToX)

	cold := bench.Once(func() {
		if _, err := f.Vec(x, a, b); err != nil {
			panic(err)
		}
	})
	warm := bench.Measure(0, 20, func() {
		if _, err := f.Vec(x, a, b); err != nil {
			panic(err)
		}
	})

	fmt.Fprintf(w, "gradient of f, n = %d, backend %s\n\n", n, e.Backend())
	fmt.Fprintf(w, "first call (compiles): %v\n", cold)
	fmt.Fprintf(w, "warm calls:            %v\n", warm)
	if warm.Best <= cold {
		fmt.Fprintf(w, "compilation amortized after one call (%.1fx)\n\n",
			float64(cold)/float64(warm.Best))
	} else {
		fmt.Fprintf(w, "warm calls slower than cold call; timing noise?\n\n")
	}

	// Compiled and uncompiled paths must agree numerically.
	got, err := f.Vec(x, a, b)
	if err != nil {
		return err
	}
	relErr := quadratic.MaxRelError(got, quadratic.Gradient(nil, a, x, b))
	fmt.Fprintf(w, "compiled vs analytic gradient: max rel err %.2e\n", relErr)
	if relErr > 1e-8 {
		return fmt.Errorf("compiled gradient diverged from analytic: %g", relErr)
	}
	return nil
}
