package grad

import (
	"github.com/gomlx/gomlx/graph"
)

// Objective builds the computation graph of the least-squares objective
//
//	f(x, A, b) = (Ax − b)·(Ax − b)
//
// where x and b are rank-1 and a is rank-2. The result is a scalar node.
func Objective(x, a, b *graph.Node) *graph.Node {
	r := graph.Sub(graph.Einsum("ij,j->i", a, x), b)
	return graph.ReduceAllSum(graph.Mul(r, r))
}

// gradientGraph builds ∂f/∂(arg) by reverse-mode differentiation.
func gradientGraph(arg Arg) func(x, a, b *graph.Node) *graph.Node {
	return func(x, a, b *graph.Node) *graph.Node {
		wrt := x
		switch arg {
		case WithRespectToA:
			wrt = a
		case WithRespectToB:
			wrt = b
		}
		return graph.Gradient(Objective(x, a, b), wrt)[0]
	}
}

// hessianGraph builds ∂²f/∂x² by differentiating each component of the
// reverse-mode gradient again, i.e. reverse-over-reverse. The row count is
// read from the gradient's static shape, so one compiled program serves one
// problem size.
func hessianGraph(x, a, b *graph.Node) *graph.Node {
	g := graph.Gradient(Objective(x, a, b), x)[0]
	n := g.Shape().Dimensions[0]
	rows := make([]*graph.Node, n)
	for i := range rows {
		gi := graph.ReduceAllSum(graph.Slice(g, graph.AxisRange(i, i+1)))
		rows[i] = graph.InsertAxes(graph.Gradient(gi, x)[0], 0)
	}
	return graph.Concatenate(rows, 0)
}
