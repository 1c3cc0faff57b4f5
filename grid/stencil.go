package grid

// Stencil bundles the linear offsets of a grid point and its six axis
// neighbors. Offsets of neighbors that fall outside the domain are still
// computed arithmetically; callers on a boundary must branch on the
// logical index before dereferencing them.
type Stencil struct {
	C      int // center
	XM, XP int // x−1, x+1
	YM, YP int // y−1, y+1
	ZM, ZP int // z−1, z+1
}

// ExtStencil extends Stencil with the ±2 axis neighbors needed by the
// boundary second-difference formulas.
type ExtStencil struct {
	Stencil
	XMM, XPP int // x−2, x+2
	YMM, YPP int // y−2, y+2
	ZMM, ZPP int // z−2, z+2
}

// StencilAt returns the six-neighbor stencil centered at (ix,iy,iz).
// Complexity: O(1).
func (g *Grid[T]) StencilAt(ix, iy, iz int) Stencil {
	c := g.Offset(ix, iy, iz)
	dy := g.nx
	dz := g.nx * g.ny
	return Stencil{
		C:  c,
		XM: c - 1, XP: c + 1,
		YM: c - dy, YP: c + dy,
		ZM: c - dz, ZP: c + dz,
	}
}

// ExtStencilAt returns the extended stencil centered at (ix,iy,iz),
// including the ±2 neighbors along each axis. Complexity: O(1).
func (g *Grid[T]) ExtStencilAt(ix, iy, iz int) ExtStencil {
	s := g.StencilAt(ix, iy, iz)
	dy := g.nx
	dz := g.nx * g.ny
	return ExtStencil{
		Stencil: s,
		XMM:     s.C - 2, XPP: s.C + 2,
		YMM: s.C - 2*dy, YPP: s.C + 2*dy,
		ZMM: s.C - 2*dz, ZPP: s.C + 2*dz,
	}
}
