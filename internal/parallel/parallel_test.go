package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForUpper(t *testing.T) {
	cfg := DefaultConfig()
	n := 13

	visited := make([][]int32, n)
	for i := range visited {
		visited[i] = make([]int32, n)
	}

	ForUpper(n, func(i, j int) {
		if i > j {
			t.Errorf("ForUpper visited lower-triangle pair (%d, %d)", i, j)
		}
		atomic.AddInt32(&visited[i][j], 1)
	}, cfg)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := int32(0)
			if i <= j {
				want = 1
			}
			if visited[i][j] != want {
				t.Errorf("Pair (%d, %d) visited %d times, want %d", i, j, visited[i][j], want)
			}
		}
	}
}

func TestUpperIndex(t *testing.T) {
	n := 5
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			gi, gj := upperIndex(k, n)
			if gi != i || gj != j {
				t.Errorf("upperIndex(%d, %d) = (%d, %d), want (%d, %d)", k, n, gi, gj, i, j)
			}
			k++
		}
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
