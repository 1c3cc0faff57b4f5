// Package poisson iteratively solves the discretized vector Poisson
// equation D·soln = rhs on a uniform grid, where D is the finite-difference
// vector Laplacian.
//
// What:
//
//   - Solve advances a caller-supplied candidate solution in place using
//     red-black Gauss-Seidel relaxation with successive over-relaxation
//     (SOR), reading a fixed right-hand-side grid each iteration.
//   - Two boundary-condition policies: Neumann (zero normal derivative,
//     enforced by propagating interior values outward after each
//     iteration) and Dirichlet (caller-prescribed boundary samples, never
//     touched).
//   - Residual statistics — min/max/mean/stddev of per-point update
//     magnitudes — are optionally collected via per-worker partial
//     accumulators merged after each pass.
//
// Algorithm outline (one iteration):
//
//  1. Red pass: for every interior point whose (iy+iz) parity is even,
//     solve the discrete equation locally — the reciprocal-spacing-weighted
//     average of the six axis neighbors minus the rhs sample — and blend
//     it in place: new = (1−ω)·old + ω·candidate.
//  2. Black pass: the same over odd-parity points. It starts only after
//     every red worker finished (the runner's barrier) and reads the
//     values red just wrote.
//  3. Neumann only: copy each boundary sample from its nearest clamped
//     interior neighbor — strictly interior → boundary, so a Dirichlet
//     condition is never imposed on top of the Neumann one.
//
// Within one color pass, workers own disjoint z-ranges and every written
// point has neighbors only of the opposite color, so the pass is race-free
// without locks; correctness rests on the checkerboard partition plus the
// inter-pass barrier.
//
// Iteration budget: information propagates one cell per iteration, so the
// default of 2·max(nx,ny,nz) steps lets influence cross the longest grid
// dimension twice. Convergence is driven by this fixed budget, not a
// residual threshold.
//
// Complexity: O(steps · nx·ny·nz) time, O(1) extra memory.
//
// Errors:
//
//   - ErrBadSteps: negative iteration count.
//   - ErrBadRelax: relaxation factor outside [1, 2).
//   - ErrBadBoundary: unknown boundary-condition value.
//
// Mismatched grid dimensions or a domain under 3 samples on an axis are
// caller bugs and panic (see gridop).
package poisson
