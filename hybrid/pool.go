package hybrid

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool is the persistent, fixed-size worker pool established at traversal
// start (spec.md §5). It holds no goroutines of its own between calls —
// Go's scheduler multiplexes a handful of short-lived goroutines onto
// Workers OS threads far more cheaply than a hand-rolled task queue would
// — but it fixes the parallelism width for the traversal's lifetime and is
// the single place both steps go to fork work and join on it.
type Pool struct {
	// Workers is the number of concurrent partitions ParallelFor divides
	// work into; it is also the number of per-worker shards callers should
	// size frontier.Shards to.
	Workers int
}

// NewPool returns a Pool sized to workers, or to runtime.NumCPU() if
// workers <= 0.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{Workers: workers}
}

// ParallelFor partitions [0, n) into up to p.Workers contiguous chunks and
// invokes body(workerID, lo, hi) for each chunk concurrently, blocking
// until every chunk has returned (the fork-join barrier spec.md §5
// requires between a step's work and the next synchronization point). The
// first non-nil error from any chunk is returned after all chunks finish;
// since steps themselves cannot fail (see errors.go), this only ever
// surfaces a genuine programmer bug.
func (p *Pool) ParallelFor(n int, body func(workerID, lo, hi int) error) error {
	if n == 0 {
		return nil
	}

	chunk := (n + p.Workers - 1) / p.Workers
	if chunk < 1 {
		chunk = 1
	}

	g := new(errgroup.Group)
	for w := 0; w*chunk < n; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		w, lo, hi := w, lo, hi
		g.Go(func() error {
			return body(w, lo, hi)
		})
	}

	return g.Wait()
}
