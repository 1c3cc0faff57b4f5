package grid

import "math"

// Grid is a uniform rectangular lattice of samples of type T, stored in a
// flat row-major buffer (x fastest). It is sized once at construction and
// never reallocated; operators borrow it and mutate samples in place.
type Grid[T any] struct {
	nx, ny, nz int
	sx, sy, sz float64
	data       []T
}

// New constructs a Grid with the given dimensions and cell spacing,
// allocating a zeroed sample buffer of nx·ny·nz entries.
// Returns ErrBadDims if any dimension is less than 1, ErrBadSpacing if any
// spacing is negative, NaN or infinite. A spacing of 0 is valid and marks
// that axis as degenerate (2D domain).
// Complexity: O(nx·ny·nz) time and memory.
func New[T any](nx, ny, nz int, sx, sy, sz float64) (*Grid[T], error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, ErrBadDims
	}
	for _, s := range [3]float64{sx, sy, sz} {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, ErrBadSpacing
		}
	}
	return &Grid[T]{
		nx: nx, ny: ny, nz: nz,
		sx: sx, sy: sy, sz: sz,
		data: make([]T, nx*ny*nz),
	}, nil
}

// Dims returns the number of sample points along each axis.
func (g *Grid[T]) Dims() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Spacing returns the physical cell spacing along each axis.
func (g *Grid[T]) Spacing() (sx, sy, sz float64) { return g.sx, g.sy, g.sz }

// Shape returns the grid's dimensions and spacing as one value.
func (g *Grid[T]) Shape() Shape {
	return Shape{NX: g.nx, NY: g.ny, NZ: g.nz, SX: g.sx, SY: g.sy, SZ: g.sz}
}

// Len returns the total number of samples, nx·ny·nz.
func (g *Grid[T]) Len() int { return len(g.data) }

// Data exposes the underlying sample buffer. Kernels iterate it directly;
// the slice header must not be retained across a grid's lifetime boundary.
func (g *Grid[T]) Data() []T { return g.data }

// Offset maps logical index (ix,iy,iz) to its linear buffer offset:
// ix + nx·(iy + ny·iz). Complexity: O(1).
func (g *Grid[T]) Offset(ix, iy, iz int) int {
	return ix + g.nx*(iy+g.ny*iz)
}

// Indices converts a linear buffer offset back to (ix,iy,iz).
// Complexity: O(1).
func (g *Grid[T]) Indices(off int) (ix, iy, iz int) {
	ix = off % g.nx
	rest := off / g.nx
	return ix, rest % g.ny, rest / g.ny
}

// At returns the sample at linear offset off.
func (g *Grid[T]) At(off int) T { return g.data[off] }

// Set stores v at linear offset off.
func (g *Grid[T]) Set(off int, v T) { g.data[off] = v }

// AtIndex returns the sample at logical index (ix,iy,iz).
func (g *Grid[T]) AtIndex(ix, iy, iz int) T { return g.data[g.Offset(ix, iy, iz)] }

// SetIndex stores v at logical index (ix,iy,iz).
func (g *Grid[T]) SetIndex(ix, iy, iz int, v T) { g.data[g.Offset(ix, iy, iz)] = v }

// Fill assigns v to every sample.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Strides returns the linear-offset increments for a unit step along each
// axis: (1, nx, nx·ny).
func (g *Grid[T]) Strides() (dx, dy, dz int) {
	return 1, g.nx, g.nx * g.ny
}

// InvSpacing returns the reciprocal cell spacing per axis, substituting 0
// on degenerate axes (spacing ≤ machine epsilon) so stencil weights vanish
// there instead of dividing by zero.
func (g *Grid[T]) InvSpacing() (rx, ry, rz float64) {
	return invSpacing(g.sx), invSpacing(g.sy), invSpacing(g.sz)
}

func invSpacing(s float64) float64 {
	if s <= epsSpacing {
		return 0
	}
	return 1 / s
}

// SameShape reports whether a and b have identical dimensions, regardless
// of their sample types or spacing.
func SameShape[A, B any](a *Grid[A], b *Grid[B]) bool {
	return a.Shape().DimsMatch(b.Shape())
}

// EachFacePoint visits every sample lying on at least one of the six
// domain faces, calling fn with its logical indices and linear offset.
// Faces are visited in the order −X, −Y, −Z, +X, +Y, +Z, so points on
// edges and corners are visited more than once; callbacks must therefore
// be idempotent per point. Complexity: O(surface samples).
func (g *Grid[T]) EachFacePoint(fn func(ix, iy, iz, off int)) {
	nx, ny, nz := g.nx, g.ny, g.nz
	face := func(ix int) {
		for iz := 0; iz < nz; iz++ {
			for iy := 0; iy < ny; iy++ {
				fn(ix, iy, iz, g.Offset(ix, iy, iz))
			}
		}
	}
	faceY := func(iy int) {
		for iz := 0; iz < nz; iz++ {
			for ix := 0; ix < nx; ix++ {
				fn(ix, iy, iz, g.Offset(ix, iy, iz))
			}
		}
	}
	faceZ := func(iz int) {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				fn(ix, iy, iz, g.Offset(ix, iy, iz))
			}
		}
	}
	face(0)
	faceY(0)
	faceZ(0)
	face(nx - 1)
	faceY(ny - 1)
	faceZ(nz - 1)
}
