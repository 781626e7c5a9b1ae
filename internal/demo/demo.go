// Package demo contains gradlab's lesson cells: small, self-contained
// demonstrations of gradient and Hessian computation on the least-squares
// objective f(x, A, b) = ‖Ax − b‖². Each cell writes its narrative to an
// io.Writer so the CLI and the tests share the same entry points.
package demo

import (
	"fmt"
	"io"

	"github.com/born-ml/gradlab/internal/grad"
)

// Demo is one runnable lesson cell.
type Demo struct {
	Name    string
	Summary string
	Run     func(w io.Writer, e *grad.Engine) error
}

// Registry returns all demos in lesson order.
func Registry() []Demo {
	return []Demo{
		{
			Name:    "basics",
			Summary: "seeded vectors, dot products and outer products (n=5)",
			Run:     runBasics,
		},
		{
			Name:    "gradient",
			Summary: "autodiff gradient vs analytic 2·Aᵀ(Ax−b) on n=1000, with timings",
			Run:     runGradient,
		},
		{
			Name:    "hessian",
			Summary: "Hessian three ways: analytic, reverse-over-reverse, forward-mode",
			Run:     runHessian,
		},
		{
			Name:    "jit",
			Summary: "compile-once-call-many: cold vs warm latency of a compiled gradient",
			Run:     runJIT,
		},
		{
			Name:    "precision",
			Summary: "float32 vs float64 accuracy for a fixed random key",
			Run:     runPrecision,
		},
	}
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, error) {
	for _, d := range Registry() {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("unknown demo %q", name)
}
