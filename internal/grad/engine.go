// Package grad exposes automatic differentiation of the least-squares
// objective through a JIT-compiling numerical backend.
//
// The package builds computation graphs for f(x, A, b) = ‖Ax − b‖² and its
// derivatives, and wraps them in Func values. A Func compiles on its first
// call for a given input shape and dtype and reuses the compiled program on
// every later call, so repeated invocations pay only execution cost. All
// differentiation, compilation, and device dispatch happen inside the
// backend library; this package contributes only the objective definition
// and host-side data conversion.
package grad

import (
	"github.com/gomlx/gomlx/backends"
	"github.com/gomlx/gomlx/graph"

	_ "github.com/gomlx/gomlx/backends/simplego"
)

// Arg selects the argument of f(x, A, b) a gradient is taken with
// respect to.
type Arg int

const (
	// WithRespectToX differentiates against the vector x. Analytically
	// 2·Aᵀ(Ax − b).
	WithRespectToX Arg = iota
	// WithRespectToA differentiates against the matrix A. Analytically
	// 2·(Ax − b)·xᵀ.
	WithRespectToA
	// WithRespectToB differentiates against the vector b. Analytically
	// −2·(Ax − b).
	WithRespectToB
)

// String returns the argument name as written in f(x, A, b).
func (a Arg) String() string {
	switch a {
	case WithRespectToX:
		return "x"
	case WithRespectToA:
		return "A"
	case WithRespectToB:
		return "b"
	default:
		return "unknown"
	}
}

// Engine owns a backend and hands out compiled functions. Engines are safe
// for concurrent use; the demos share a single one per process.
type Engine struct {
	backend backends.Backend
}

// New creates an Engine on the default backend. The backend is selected by
// the GOMLX_BACKEND environment variable, falling back to the pure-Go
// backend linked into this binary.
func New() *Engine {
	return &Engine{backend: backends.MustNew()}
}

// Backend returns the name of the backend in use, for display.
func (e *Engine) Backend() string {
	return e.backend.Name()
}

// Value returns the compiled objective f itself. Output is a scalar.
func (e *Engine) Value() *Func {
	return &Func{exec: graph.NewExec(e.backend, func(x, a, b *graph.Node) *graph.Node {
		return Objective(x, a, b)
	})}
}

// Gradient returns the compiled gradient of f with respect to arg. The
// output has the shape of that argument, like the transform-with-argument-
// index surface of functional autodiff frameworks.
func (e *Engine) Gradient(arg Arg) *Func {
	return &Func{exec: graph.NewExec(e.backend, gradientGraph(arg))}
}

// Hessian returns the compiled n×n Hessian of f with respect to x,
// computed by composing the reverse-mode gradient transform with itself.
func (e *Engine) Hessian() *Func {
	return &Func{exec: graph.NewExec(e.backend, hessianGraph)}
}
