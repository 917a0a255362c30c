// Package parallel splits independent kernel work across goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
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

// chunkSize returns the number of items per chunk, or n when the work runs
// sequentially.
func chunkSize(n int, cfg Config) int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return n
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// Workers returns how many chunks ForChunks uses for n items. Callers size
// per-worker scratch buffers with it.
func Workers(n int, cfg Config) int {
	size := chunkSize(n, cfg)
	if size == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ForChunks calls f once per contiguous chunk [start, end) of [0, n).
// worker is the chunk ordinal, always below Workers(n, cfg), so f may index
// per-worker state with it. It waits for every chunk and returns the first
// error any of them returned.
func ForChunks(n int, cfg Config, f func(worker, start, end int) error) error {
	size := chunkSize(n, cfg)
	if size >= n {
		// Sequential fallback.
		return f(0, 0, n)
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for worker, start := 0, 0; start < n; worker, start = worker+1, start+size {
		w, s, e := worker, start, min(start+size, n)
		g.Go(func() error {
			return f(w, s, e)
		})
	}
	return g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	_ = ForChunks(n, cfg, func(_, start, end int) error {
		for i := start; i < end; i++ {
			f(i)
		}
		return nil
	})
}

// ForBatch optimized for batch*channels iteration pattern.
// Common in per-image, per-channel kernels.
func ForBatch(batch, channels int, f func(b, c int), cfg Config) {
	n := batch * channels
	For(n, func(k int) {
		f(k/channels, k%channels)
	}, cfg)
}
