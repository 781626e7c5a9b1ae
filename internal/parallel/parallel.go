// Package parallel provides parallel execution utilities for gradlab's
// host-side numerics, such as filling the entries of a Hessian matrix.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForUpper executes f(i, j) for every upper-triangle index pair i <= j of an
// n×n matrix. The n(n+1)/2 pairs are flattened and distributed with For, so
// work balances evenly even though row lengths shrink with i.
// Used for symmetric matrices where f fills both [i][j] and [j][i].
func ForUpper(n int, f func(i, j int), cfg Config) {
	total := n * (n + 1) / 2
	For(total, func(k int) {
		i, j := upperIndex(k, n)
		f(i, j)
	}, cfg)
}

// upperIndex maps a flat index k in [0, n(n+1)/2) to the k-th upper-triangle
// pair (i, j) with i <= j, in row-major order.
func upperIndex(k, n int) (int, int) {
	i := 0
	rowLen := n
	for k >= rowLen {
		k -= rowLen
		i++
		rowLen--
	}
	return i, i + k
}
