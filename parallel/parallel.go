package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Runner fans a half-open index range out to workers.
//
// For must invoke fn over sub-ranges [lo₀,hi₀), [lo₁,hi₁), … that are
// pairwise disjoint and whose union is exactly [lo,hi), and must return
// only once every invocation has completed. Implementations are free to
// run sub-ranges concurrently; callers rely only on disjointness and the
// completion barrier.
type Runner interface {
	For(lo, hi int, fn func(lo, hi int))
}

// Grain returns the static partition grain max(1, n/workers) used by the
// pooled runners.
func Grain(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	g := n / workers
	if g < 1 {
		g = 1
	}
	return g
}

// Sequential runs the entire range inline on the calling goroutine.
// It is the fallback when no parallel substrate is configured, and the
// zero value is ready to use.
type Sequential struct{}

// For invokes fn once with the full range.
func (Sequential) For(lo, hi int, fn func(lo, hi int)) {
	if hi <= lo {
		return
	}
	fn(lo, hi)
}

// Pool fans sub-ranges out to goroutines, one per grain, and waits for all
// of them. Workers ≤ 0 means runtime.NumCPU().
type Pool struct {
	Workers int
}

// For partitions [lo,hi) into grain-sized sub-ranges and runs each on its
// own goroutine, returning after the last one finishes.
func (p Pool) For(lo, hi int, fn func(lo, hi int)) {
	n := hi - lo
	if n <= 0 {
		return
	}
	w := p.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	grain := Grain(n, w)

	var wg sync.WaitGroup
	for start := lo; start < hi; start += grain {
		end := min(start+grain, hi)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Group fans sub-ranges out through an errgroup with at most Limit workers
// running at once. Limit ≤ 0 means runtime.NumCPU(). Useful when the grid
// pass shares a process with other load and must not oversubscribe.
type Group struct {
	Limit int
}

// For partitions [lo,hi) like Pool.For but schedules the sub-ranges
// through a bounded errgroup.
func (g Group) For(lo, hi int, fn func(lo, hi int)) {
	n := hi - lo
	if n <= 0 {
		return
	}
	limit := g.Limit
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var eg errgroup.Group
	eg.SetLimit(limit)
	grain := Grain(n, limit)
	for start := lo; start < hi; start += grain {
		s, e := start, min(start+grain, hi)
		eg.Go(func() error {
			fn(s, e)
			return nil
		})
	}
	// Workers never return errors; Wait serves purely as the barrier.
	_ = eg.Wait()
}
