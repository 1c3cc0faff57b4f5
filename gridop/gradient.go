package gridop

import (
	"github.com/katalvlaran/fieldgrid/grid"
	"github.com/katalvlaran/fieldgrid/parallel"
	"github.com/katalvlaran/fieldgrid/vec3"
)

// mustSameShape panics when dst and src differ in dimensions.
// Shape mismatches are integration bugs, not runtime conditions.
func mustSameShape[A, B any](op string, dst *grid.Grid[A], src *grid.Grid[B]) {
	if !grid.SameShape(dst, src) {
		panic("gridop: " + op + ": grids must have matching dimensions")
	}
}

func orSequential(r parallel.Runner) parallel.Runner {
	if r == nil {
		return parallel.Sequential{}
	}
	return r
}

// Gradient computes the spatial gradient of a scalar field into dst:
// dst[p] = (df/dx, df/dy, df/dz) at p.
//
// Interior points use centered differences; points on a domain face use a
// one-sided difference on the face-normal axis and centered differences
// tangentially. Axes with zero spacing or a single sample yield a zero
// derivative component. The interior is fanned out over z through r
// (nil ⇒ sequential). Panics on mismatched dimensions.
func Gradient(dst *grid.Grid[vec3.Vec], src *grid.Grid[float64], r parallel.Runner) {
	mustSameShape("Gradient", dst, src)
	_, _, nz := src.Dims()
	if nz > 2 {
		orSequential(r).For(1, nz-1, func(zlo, zhi int) {
			gradientInterior(dst, src, zlo, zhi)
		})
	}
	gradientFaces(dst, src)
}

// gradientInterior fills dst on z-slices [izStart,izEnd), which must lie
// strictly inside the domain along every axis.
func gradientInterior(dst *grid.Grid[vec3.Vec], src *grid.Grid[float64], izStart, izEnd int) {
	nx, ny, _ := src.Dims()
	_, dy, dz := src.Strides()
	rx, ry, rz := src.InvSpacing()
	hx, hy, hz := 0.5*rx, 0.5*ry, 0.5*rz
	f := src.Data()
	out := dst.Data()

	for iz := izStart; iz < izEnd; iz++ {
		for iy := 1; iy < ny-1; iy++ {
			off := src.Offset(1, iy, iz)
			for ix := 1; ix < nx-1; ix++ {
				out[off] = vec3.Vec{
					X: (f[off+1] - f[off-1]) * hx,
					Y: (f[off+dy] - f[off-dy]) * hy,
					Z: (f[off+dz] - f[off-dz]) * hz,
				}
				off++
			}
		}
	}
}

// gradientFaces fills dst on the six domain faces, choosing per axis
// between one-sided and centered differences.
func gradientFaces(dst *grid.Grid[vec3.Vec], src *grid.Grid[float64]) {
	nx, ny, nz := src.Dims()
	mx, my, mz := nx-1, ny-1, nz-1
	rx, ry, rz := src.InvSpacing()
	hx, hy, hz := 0.5*rx, 0.5*ry, 0.5*rz
	f := src.Data()
	out := dst.Data()

	src.EachFacePoint(func(ix, iy, iz, off int) {
		s := src.StencilAt(ix, iy, iz)
		var g vec3.Vec
		switch {
		case mx == 0:
			// single sample along x: no difference to take
		case ix == 0:
			g.X = (f[s.XP] - f[s.C]) * rx
		case ix == mx:
			g.X = (f[s.C] - f[s.XM]) * rx
		default:
			g.X = (f[s.XP] - f[s.XM]) * hx
		}
		switch {
		case my == 0:
		case iy == 0:
			g.Y = (f[s.YP] - f[s.C]) * ry
		case iy == my:
			g.Y = (f[s.C] - f[s.YM]) * ry
		default:
			g.Y = (f[s.YP] - f[s.YM]) * hy
		}
		switch {
		case mz == 0:
		case iz == 0:
			g.Z = (f[s.ZP] - f[s.C]) * rz
		case iz == mz:
			g.Z = (f[s.C] - f[s.ZM]) * rz
		default:
			g.Z = (f[s.ZP] - f[s.ZM]) * hz
		}
		out[off] = g
	})
}

// GradientConditionally computes the gradient of a scalar field that may
// contain grid.Invalid samples (a field assembled from disjoint valid
// sub-regions).
//
// Per point: if the center sample is Invalid, all three output components
// are Invalid. Otherwise each axis component is resolved independently
// from the axis neighbors that are both inside the domain and valid —
// centered difference when both are usable, one-sided when exactly one
// is, Invalid when neither is. Runs sequentially over the whole domain.
// Panics on mismatched dimensions.
func GradientConditionally(dst *grid.Grid[vec3.Vec], src *grid.Grid[float64]) {
	mustSameShape("GradientConditionally", dst, src)
	nx, ny, nz := src.Dims()
	mx, my, mz := nx-1, ny-1, nz-1
	_, dy, dz := src.Strides()
	rx, ry, rz := src.InvSpacing()
	f := src.Data()
	out := dst.Data()

	off := 0
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				c := f[off]
				if grid.IsInvalid(c) {
					// Values span domains across this point; no derivative exists here.
					nan := grid.Invalid()
					out[off] = vec3.Vec{X: nan, Y: nan, Z: nan}
				} else {
					out[off] = vec3.Vec{
						X: conditionalDiff(f, off, ix, mx, 1, c, rx),
						Y: conditionalDiff(f, off, iy, my, dy, c, ry),
						Z: conditionalDiff(f, off, iz, mz, dz, c, rz),
					}
				}
				off++
			}
		}
	}
}

// conditionalDiff resolves one axis component of the conditional gradient
// at buffer offset off, where i is the logical index on that axis, last
// its maximum, stride the buffer stride and r the reciprocal spacing.
func conditionalDiff(f []float64, off, i, last, stride int, center, r float64) float64 {
	upOK := i < last && !grid.IsInvalid(f[off+stride])
	downOK := i > 0 && !grid.IsInvalid(f[off-stride])
	switch {
	case upOK && downOK:
		return (f[off+stride] - f[off-stride]) * 0.5 * r
	case upOK:
		return (f[off+stride] - center) * r
	case downOK:
		return (center - f[off-stride]) * r
	default:
		return grid.Invalid()
	}
}
