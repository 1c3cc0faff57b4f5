// Package fieldgrid is a numerical toolkit for sampled 3D fields on
// uniform grids — finite-difference operators, field statistics, and an
// iterative vector Poisson solver with checkerboard parallelism.
//
// 🚀 What is fieldgrid?
//
//	A library of grid-kernel building blocks for fluid and vortex
//	simulations:
//		• Uniform grids: flat, row-major sample containers (scalar, 3-vector, 3×3 tensor)
//		• Differential operators: gradient, Jacobian, curl, Laplacian
//		• Field statistics: value range, mean & standard deviation, magnitude range
//		• Poisson solver: red-black Gauss-Seidel with successive over-relaxation
//		• Parallel decomposition: pluggable range runners (sequential, pooled, bounded)
//
// ✨ Why choose fieldgrid?
//
//   - Cache-friendly – flat buffers, linear-offset stencils, no per-sample boxing
//   - Race-free parallelism – checkerboard coloring keeps each pass's reads and writes disjoint
//   - Deterministic – concurrency is an explicit value you pass in, never a process-wide global
//   - Caller-owned memory – grids are borrowed, never resized or freed by the library
//
// Everything is organized under five subpackages:
//
//	vec3/     — 3-vector and 3×3 matrix sample types
//	grid/     — the uniform grid container, offsets, stencils
//	parallel/ — range-partitioning runners used by the operators and solver
//	gridop/   — differential operators and field statistics
//	poisson/  — the red-black SOR vector Poisson solver
//
// Quick sketch — reconstruct velocity from vorticity:
//
//	vort ──Jacobian──▶ jac ──CurlFromJacobian──▶ rhs
//	                                              │
//	            vel ◀──poisson.Solve(vel, rhs)────┘
//
// Each operator borrows caller-owned grids of matching shape, mutates only
// its output grid, and returns once the full pass (or iteration budget) has
// completed.
//
//	go get github.com/katalvlaran/fieldgrid
package fieldgrid
