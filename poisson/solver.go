package poisson

import (
	"sync"

	"github.com/katalvlaran/fieldgrid/grid"
	"github.com/katalvlaran/fieldgrid/parallel"
	"github.com/katalvlaran/fieldgrid/vec3"
)

// Solve advances soln in place toward satisfying D·soln = rhs, where D is
// the discrete vector Laplacian, running opts.Steps full iterations (Red
// pass, then Black pass, then the Neumann boundary sweep if selected).
//
// soln holds the caller's initial candidate — Solve never zeroes it, so a
// warm start (or prescribed Dirichlet faces) survives. rhs supplies the
// cell spacing for the stencil weights. The returned Residual describes
// the final iteration's updates and is zero unless opts.CollectResiduals
// is set.
//
// Returns a sentinel error for out-of-range options. Mismatched grid
// dimensions or a domain under 3 samples on an axis panic.
func Solve(soln, rhs *grid.Grid[vec3.Vec], opts Options) (Residual, error) {
	if err := opts.validate(); err != nil {
		return Residual{}, err
	}
	if !grid.SameShape(soln, rhs) {
		panic("poisson: Solve: solution and rhs grids must have matching dimensions")
	}
	nx, ny, nz := soln.Dims()
	if nx < 3 || ny < 3 || nz < 3 {
		panic("poisson: Solve: every axis needs at least 3 samples")
	}

	runner := opts.Runner
	if runner == nil {
		runner = parallel.Sequential{}
	}
	steps := opts.Steps
	if steps == 0 {
		// Each iteration propagates influence by one cell; crossing the
		// longest dimension twice reaches a globally consistent solution.
		steps = 2 * max(nx, ny, nz)
	}

	var last Residual
	for iter := 0; iter < steps; iter++ {
		acc := relaxPass(soln, rhs, Red, opts, runner)
		blackAcc := relaxPass(soln, rhs, Black, opts, runner)
		if opts.CollectResiduals {
			acc.merge(blackAcc)
			last = acc.stats()
		}
		if opts.Boundary == Neumann {
			propagateBoundary(soln)
		}
	}
	return last, nil
}

// relaxPass fans one color pass out over the z axis and returns the
// merged residual tally. The runner's completion barrier is what
// separates this pass's writes from the next pass's reads.
func relaxPass(soln, rhs *grid.Grid[vec3.Vec], color Color, opts Options, r parallel.Runner) residualAcc {
	_, _, nz := soln.Dims()
	total := newResidualAcc()
	var mu sync.Mutex
	r.For(0, nz, func(zlo, zhi int) {
		acc := relaxSlice(soln, rhs, zlo, zhi, color, opts.Relax, opts.CollectResiduals)
		if opts.CollectResiduals {
			mu.Lock()
			total.merge(acc)
			mu.Unlock()
		}
	})
	return total
}

// relaxSlice runs one Gauss-Seidel/SOR sweep of color over the interior
// points of z-slices [izStart,izEnd) ∩ [1,nz−1).
//
// Every point written belongs to color; all six neighbors it reads belong
// to the opposite color (or are boundary samples no pass writes), so
// concurrent slices never touch each other's writes.
func relaxSlice(soln, rhs *grid.Grid[vec3.Vec], izStart, izEnd int, color Color, relax float64, collect bool) residualAcc {
	nx, ny, nz := soln.Dims()
	_, dy, dz := soln.Strides()
	rx, ry, rz := rhs.InvSpacing()
	qx, qy, qz := rx*rx, ry*ry, rz*rz
	// Weight of the local solve: degenerate axes have q = 0 and drop out
	// of both the neighbor sum and the normalization.
	halfWeight := 0.5 / (qx + qy + qz)
	omr := 1 - relax

	zlo := max(1, izStart)
	zhi := min(nz-1, izEnd)
	s := soln.Data()
	b := rhs.Data()
	acc := newResidualAcc()

	for iz := zlo; iz < zhi; iz++ {
		ys, ystep := color.yStart(1, iz)
		for iy := ys; iy < ny-1; iy += ystep {
			off := soln.Offset(1, iy, iz)
			for ix := 1; ix < nx-1; ix++ {
				old := s[off]
				cand := vec3.Vec{
					X: ((s[off+1].X+s[off-1].X)*qx + (s[off+dy].X+s[off-dy].X)*qy + (s[off+dz].X+s[off-dz].X)*qz - b[off].X) * halfWeight,
					Y: ((s[off+1].Y+s[off-1].Y)*qx + (s[off+dy].Y+s[off-dy].Y)*qy + (s[off+dz].Y+s[off-dz].Y)*qz - b[off].Y) * halfWeight,
					Z: ((s[off+1].Z+s[off-1].Z)*qx + (s[off+dy].Z+s[off-dy].Z)*qy + (s[off+dz].Z+s[off-dz].Z)*qz - b[off].Z) * halfWeight,
				}
				next := vec3.Vec{
					X: omr*old.X + relax*cand.X,
					Y: omr*old.Y + relax*cand.Y,
					Z: omr*old.Z + relax*cand.Z,
				}
				if collect {
					acc.add(next.Sub(old).Mag())
				}
				// Overwrite immediately: the in-place update is what makes
				// the Black pass read values the Red pass just wrote.
				s[off] = next
				off++
			}
		}
	}
	return acc
}

// propagateBoundary enforces the Neumann condition by copying each face
// sample from its nearest strictly interior neighbor. Propagation runs
// interior → boundary only; the reverse would impose Dirichlet and
// Neumann conditions simultaneously.
func propagateBoundary(soln *grid.Grid[vec3.Vec]) {
	nx, ny, nz := soln.Dims()
	s := soln.Data()
	soln.EachFacePoint(func(ix, iy, iz, off int) {
		src := soln.Offset(clampInterior(ix, nx), clampInterior(iy, ny), clampInterior(iz, nz))
		s[off] = s[src]
	})
}

// clampInterior maps a face index onto the nearest strictly interior
// index on an axis of n samples.
func clampInterior(i, n int) int {
	if i < 1 {
		return 1
	}
	if i > n-2 {
		return n - 2
	}
	return i
}
