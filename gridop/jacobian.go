package gridop

import (
	"github.com/katalvlaran/fieldgrid/grid"
	"github.com/katalvlaran/fieldgrid/parallel"
	"github.com/katalvlaran/fieldgrid/vec3"
)

// Jacobian computes the matrix of first partial derivatives of a vector
// field into dst. Row A of each output sample holds the derivatives taken
// with respect to axis A, so dst[p].X.Y = d(v_y)/dx at p.
//
// The stencil policy matches Gradient: centered differences in the
// interior (fanned out over z through r; nil ⇒ sequential), one-sided on
// the face-normal axis at domain faces, zero on degenerate axes.
// Panics on mismatched dimensions.
func Jacobian(dst *grid.Grid[vec3.Mat], src *grid.Grid[vec3.Vec], r parallel.Runner) {
	mustSameShape("Jacobian", dst, src)
	_, _, nz := src.Dims()
	if nz > 2 {
		orSequential(r).For(1, nz-1, func(zlo, zhi int) {
			jacobianInterior(dst, src, zlo, zhi)
		})
	}
	jacobianFaces(dst, src)
}

func jacobianInterior(dst *grid.Grid[vec3.Mat], src *grid.Grid[vec3.Vec], izStart, izEnd int) {
	nx, ny, _ := src.Dims()
	_, dy, dz := src.Strides()
	rx, ry, rz := src.InvSpacing()
	hx, hy, hz := 0.5*rx, 0.5*ry, 0.5*rz
	v := src.Data()
	out := dst.Data()

	for iz := izStart; iz < izEnd; iz++ {
		for iy := 1; iy < ny-1; iy++ {
			off := src.Offset(1, iy, iz)
			for ix := 1; ix < nx-1; ix++ {
				out[off] = vec3.Mat{
					X: v[off+1].Sub(v[off-1]).Scale(hx),
					Y: v[off+dy].Sub(v[off-dy]).Scale(hy),
					Z: v[off+dz].Sub(v[off-dz]).Scale(hz),
				}
				off++
			}
		}
	}
}

func jacobianFaces(dst *grid.Grid[vec3.Mat], src *grid.Grid[vec3.Vec]) {
	nx, ny, nz := src.Dims()
	mx, my, mz := nx-1, ny-1, nz-1
	rx, ry, rz := src.InvSpacing()
	hx, hy, hz := 0.5*rx, 0.5*ry, 0.5*rz
	v := src.Data()
	out := dst.Data()

	src.EachFacePoint(func(ix, iy, iz, off int) {
		s := src.StencilAt(ix, iy, iz)
		var m vec3.Mat
		switch {
		case mx == 0:
		case ix == 0:
			m.X = v[s.XP].Sub(v[s.C]).Scale(rx)
		case ix == mx:
			m.X = v[s.C].Sub(v[s.XM]).Scale(rx)
		default:
			m.X = v[s.XP].Sub(v[s.XM]).Scale(hx)
		}
		switch {
		case my == 0:
		case iy == 0:
			m.Y = v[s.YP].Sub(v[s.C]).Scale(ry)
		case iy == my:
			m.Y = v[s.C].Sub(v[s.YM]).Scale(ry)
		default:
			m.Y = v[s.YP].Sub(v[s.YM]).Scale(hy)
		}
		switch {
		case mz == 0:
		case iz == 0:
			m.Z = v[s.ZP].Sub(v[s.C]).Scale(rz)
		case iz == mz:
			m.Z = v[s.C].Sub(v[s.ZM]).Scale(rz)
		default:
			m.Z = v[s.ZP].Sub(v[s.ZM]).Scale(hz)
		}
		out[off] = m
	})
}

// CurlFromJacobian extracts the curl of the underlying vector field from
// its Jacobian: curl = (J.Y.Z−J.Z.Y, J.Z.X−J.X.Z, J.X.Y−J.Y.X).
//
// A purely local per-point transform — no neighbor access — so it runs as
// a single sequential sweep. Panics on mismatched dimensions.
func CurlFromJacobian(dst *grid.Grid[vec3.Vec], src *grid.Grid[vec3.Mat]) {
	mustSameShape("CurlFromJacobian", dst, src)
	j := src.Data()
	out := dst.Data()
	for off := range j {
		m := j[off]
		out[off] = vec3.Vec{
			X: m.Y.Z - m.Z.Y,
			Y: m.Z.X - m.X.Z,
			Z: m.X.Y - m.Y.X,
		}
	}
}
