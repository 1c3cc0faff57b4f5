// Package parallel partitions a contiguous index range across workers for
// the data-parallel loops in gridop and poisson.
//
// What:
//
//   - Runner: the single abstraction call sites depend on — For(lo, hi, fn)
//     invokes fn over sub-ranges that exactly partition [lo,hi) and returns
//     only after every sub-range has completed (a full barrier).
//   - Sequential: runs the whole range inline on the calling goroutine.
//   - Pool: WaitGroup fan-out, one goroutine per grain-sized sub-range.
//   - Group: errgroup-backed fan-out with a bound on concurrently running
//     workers.
//
// Why:
//
//   - The grid kernels partition the slowest (z) axis; correctness of the
//     red-black Poisson passes rests on sub-ranges being disjoint and on
//     the barrier between color passes, both of which are the Runner
//     contract.
//   - Concurrency is a value threaded through each call, never a mutable
//     process-wide processor count, so tests get deterministic,
//     reproducible partitioning.
//
// Grain size is the static heuristic max(1, n/workers), recomputed per
// call and not adaptive to runtime load.
package parallel
