// Package bench provides a small wall-clock measurement harness for the
// demo cells. It exists to make the demos' timing comparisons directional
// and warm-up aware, not to replace go test benchmarks, which remain the
// precise tool.
package bench

import (
	"fmt"
	"time"
)

// Result summarizes repeated timed invocations of a function.
type Result struct {
	Iters int
	Total time.Duration
	Mean  time.Duration
	Best  time.Duration
}

// Measure runs fn warmup times untimed, then iters times timed, and
// returns the aggregate. Warm-up runs absorb one-time costs such as JIT
// compilation so the steady state is what gets reported.
func Measure(warmup, iters int, fn func()) Result {
	for i := 0; i < warmup; i++ {
		fn()
	}

	res := Result{Iters: iters, Best: time.Duration(1<<63 - 1)}
	for i := 0; i < iters; i++ {
		start := time.Now()
		fn()
		d := time.Since(start)
		res.Total += d
		if d < res.Best {
			res.Best = d
		}
	}
	if iters > 0 {
		res.Mean = res.Total / time.Duration(iters)
	} else {
		res.Best = 0
	}
	return res
}

// Once times a single invocation, including any one-time setup cost it
// triggers. Used to show cold-start (compilation) latency.
func Once(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// String formats a Result for demo output.
func (r Result) String() string {
	return fmt.Sprintf("%d iters, mean %v, best %v", r.Iters, r.Mean, r.Best)
}

// Speedup returns how many times faster b is than a, by mean time.
// Returns 0 when b was not measured.
func Speedup(a, b Result) float64 {
	if b.Mean <= 0 {
		return 0
	}
	return float64(a.Mean) / float64(b.Mean)
}
