// Package grid provides the uniform sample container every fieldgrid
// operator works on: a flat, row-major lattice of typed samples with
// per-axis physical spacing.
//
// What:
//
//   - Grid[T] wraps a contiguous buffer of nx·ny·nz samples (scalar,
//     vec3.Vec or vec3.Mat) with cell spacing (sx,sy,sz).
//   - Linear offset of logical index (ix,iy,iz) is ix + nx·(iy + ny·iz);
//     x is the fastest axis.
//   - Stencil and ExtStencil bundle the neighbor offsets finite-difference
//     kernels read, so call sites never repeat the offset arithmetic.
//   - A spacing of 0 on one axis denotes a degenerate (2D) domain;
//     InvSpacing reports a zero reciprocal there instead of dividing by zero.
//
// Why:
//
//   - Differential operators and the Poisson solver index neighbor samples
//     millions of times per step; a flat buffer with precomputed strides
//     keeps each access one add and one load.
//   - Grids are created and owned by the caller: the operators borrow them,
//     never allocate, resize or free them.
//
// Complexity:
//
//   - Offset, Indices, At, Set, StencilAt: O(1).
//   - Fill, EachFacePoint: O(n) in the touched samples.
//
// Errors:
//
//   - ErrBadDims: a dimension is less than 1.
//   - ErrBadSpacing: a spacing is negative, NaN or infinite.
//
// Partially populated fields mark absent samples with Invalid (a quiet
// NaN); see IsInvalid and gridop.GradientConditionally.
package grid
