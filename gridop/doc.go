// Package gridop implements the finite-difference operators and field
// statistics of fieldgrid.
//
// What:
//
//   - Gradient, GradientConditionally: scalar grid → vector grid.
//   - Jacobian: vector grid → 3×3 tensor grid, J.A.B = d(v_B)/dA.
//   - CurlFromJacobian: tensor grid → vector grid, the antisymmetric part
//     of the Jacobian.
//   - Laplacian: vector grid → vector grid, sum of second differences.
//   - ValueRange, ValueStats, MagnitudeRange, MatRange: single-pass
//     aggregates over a grid.
//
// Stencil policy:
//
//   - Interior points use centered differences; the six domain faces use
//     one-sided first differences (gradient, Jacobian) or an extrapolated
//     two-layer second difference (Laplacian) on the face-normal axis.
//   - Degenerate axes — spacing 0 or a single sample — contribute a zero
//     derivative instead of dividing by zero.
//   - GradientConditionally tolerates partially populated fields: samples
//     marked grid.Invalid never participate, and each axis component falls
//     back from centered to one-sided to Invalid as neighbors drop out.
//
// Concurrency:
//
//   - Operators taking a parallel.Runner fan the interior out over the
//     slowest (z) axis; every sub-range writes a disjoint output slab from
//     a read-only input, so no synchronization beyond the runner's barrier
//     is needed. A nil runner means sequential execution.
//
// Complexity: every operator and statistic is one pass, O(nx·ny·nz).
//
// Contract violations — mismatched grid dimensions, or a domain too small
// for an operator's stencil — are caller bugs and panic rather than
// returning an error.
package gridop
