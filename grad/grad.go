// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad provides JIT-compiled derivatives of the least-squares
// objective f(x, A, b) = (Ax − b)·(Ax − b).
//
// Differentiation and compilation are delegated to the backing autodiff
// library; this package defines the objective and a small, typed surface
// over it.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradlab/grad"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    x := mat.NewVecDense(2, []float64{1, 1})
//	    a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
//	    b := mat.NewVecDense(2, []float64{1, 0})
//
//	    grad.SetFloat64(true)
//	    e := grad.New()
//	    g, err := e.Gradient(grad.WithRespectToX).Vec(x, a, b)
//	    // g equals 2·Aᵀ(Ax − b) up to floating point.
//	}
package grad

import (
	"github.com/born-ml/gradlab/internal/grad"
)

// Engine owns a backend and hands out compiled functions.
type Engine = grad.Engine

// New creates an Engine on the default backend.
func New() *Engine {
	return grad.New()
}

// Func is a compiled function of (x, A, b); it compiles on first call per
// input shape and dtype, then replays the compiled program.
type Func = grad.Func

// Arg selects which argument of f(x, A, b) to differentiate against.
type Arg = grad.Arg

// Argument selectors for Engine.Gradient.
const (
	WithRespectToX Arg = grad.WithRespectToX
	WithRespectToA Arg = grad.WithRespectToA
	WithRespectToB Arg = grad.WithRespectToB
)

// SetFloat64 switches computations between 32-bit (default) and 64-bit
// floating point, process-wide.
func SetFloat64(enabled bool) {
	grad.SetFloat64(enabled)
}

// Float64Enabled reports whether 64-bit precision is active.
func Float64Enabled() bool {
	return grad.Float64Enabled()
}
