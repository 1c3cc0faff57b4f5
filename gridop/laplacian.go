package gridop

import (
	"github.com/katalvlaran/fieldgrid/grid"
	"github.com/katalvlaran/fieldgrid/parallel"
	"github.com/katalvlaran/fieldgrid/vec3"
)

// secondDiff is the three-point second-difference stencil (p + m − 2c)·q,
// where q is the squared reciprocal spacing of the axis.
func secondDiff(p, m, c vec3.Vec, q float64) vec3.Vec {
	return vec3.Vec{
		X: (p.X + m.X - 2*c.X) * q,
		Y: (p.Y + m.Y - 2*c.Y) * q,
		Z: (p.Z + m.Z - 2*c.Z) * q,
	}
}

// Laplacian computes the vector Laplacian of a vector field into dst:
// the sum over axes of the second differences of each component.
//
// Every axis needs at least 3 samples (the stencil reads two neighbors);
// smaller domains panic. Interior points use the centered second
// difference. Points on a domain face use an extrapolated stencil that
// reaches two layers into the interior on the face-normal axis —
// evaluating the second difference one layer in rather than assuming zero
// curvature at the face. Degenerate axes (zero spacing) contribute zero.
// The interior is fanned out over z through r (nil ⇒ sequential).
// Panics on mismatched dimensions.
func Laplacian(dst, src *grid.Grid[vec3.Vec], r parallel.Runner) {
	mustSameShape("Laplacian", dst, src)
	nx, ny, nz := src.Dims()
	if nx < 3 || ny < 3 || nz < 3 {
		panic("gridop: Laplacian: every axis needs at least 3 samples")
	}
	orSequential(r).For(1, nz-1, func(zlo, zhi int) {
		laplacianInterior(dst, src, zlo, zhi)
	})
	laplacianFaces(dst, src)
}

func laplacianInterior(dst, src *grid.Grid[vec3.Vec], izStart, izEnd int) {
	nx, ny, _ := src.Dims()
	_, dy, dz := src.Strides()
	rx, ry, rz := src.InvSpacing()
	qx, qy, qz := rx*rx, ry*ry, rz*rz
	v := src.Data()
	out := dst.Data()

	for iz := izStart; iz < izEnd; iz++ {
		for iy := 1; iy < ny-1; iy++ {
			off := src.Offset(1, iy, iz)
			for ix := 1; ix < nx-1; ix++ {
				c := v[off]
				lap := secondDiff(v[off+1], v[off-1], c, qx)
				lap = lap.Add(secondDiff(v[off+dy], v[off-dy], c, qy))
				lap = lap.Add(secondDiff(v[off+dz], v[off-dz], c, qz))
				out[off] = lap
				off++
			}
		}
	}
}

func laplacianFaces(dst, src *grid.Grid[vec3.Vec]) {
	nx, ny, nz := src.Dims()
	mx, my, mz := nx-1, ny-1, nz-1
	rx, ry, rz := src.InvSpacing()
	qx, qy, qz := rx*rx, ry*ry, rz*rz
	v := src.Data()
	out := dst.Data()

	src.EachFacePoint(func(ix, iy, iz, off int) {
		s := src.ExtStencilAt(ix, iy, iz)
		var lap vec3.Vec
		switch {
		case ix == 0:
			lap = secondDiff(v[s.XPP], v[s.C], v[s.XP], qx)
		case ix == mx:
			lap = secondDiff(v[s.C], v[s.XMM], v[s.XM], qx)
		default:
			lap = secondDiff(v[s.XP], v[s.XM], v[s.C], qx)
		}
		switch {
		case iy == 0:
			lap = lap.Add(secondDiff(v[s.YPP], v[s.C], v[s.YP], qy))
		case iy == my:
			lap = lap.Add(secondDiff(v[s.C], v[s.YMM], v[s.YM], qy))
		default:
			lap = lap.Add(secondDiff(v[s.YP], v[s.YM], v[s.C], qy))
		}
		switch {
		case iz == 0:
			lap = lap.Add(secondDiff(v[s.ZPP], v[s.C], v[s.ZP], qz))
		case iz == mz:
			lap = lap.Add(secondDiff(v[s.C], v[s.ZMM], v[s.ZM], qz))
		default:
			lap = lap.Add(secondDiff(v[s.ZP], v[s.ZM], v[s.C], qz))
		}
		out[off] = lap
	})
}
