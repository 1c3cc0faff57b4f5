// Package vec3 defines the small value types sampled on fieldgrid grids:
// Vec, a 3-vector of float64, and Mat, a 3×3 matrix stored as three row
// vectors.
//
// What:
//
//   - Vec: component-wise arithmetic, dot, cross, magnitude.
//   - Mat: the Jacobian sample type. Row A holds the partial derivatives
//     taken with respect to axis A, so M.X.Y = d(v_y)/dx.
//
// Why:
//
//   - Stencil loops index flat buffers of these values millions of times
//     per step; plain structs keep every access a direct load with no
//     interface indirection or per-sample allocation.
//
// All operations are value-receiver and allocation-free.
package vec3
