package poisson_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldgrid/grid"
	"github.com/katalvlaran/fieldgrid/parallel"
	"github.com/katalvlaran/fieldgrid/poisson"
	"github.com/katalvlaran/fieldgrid/vec3"
)

// newVecGrid builds an nx×ny×nz vector grid with uniform spacing s.
func newVecGrid(t *testing.T, nx, ny, nz int, s float64) *grid.Grid[vec3.Vec] {
	t.Helper()
	g, err := grid.New[vec3.Vec](nx, ny, nz, s, s, s)
	require.NoError(t, err)
	return g
}

// cloneVecGrid copies g so two solver runs can start from the same state.
func cloneVecGrid(t *testing.T, g *grid.Grid[vec3.Vec]) *grid.Grid[vec3.Vec] {
	t.Helper()
	nx, ny, nz := g.Dims()
	sx, sy, sz := g.Spacing()
	c, err := grid.New[vec3.Vec](nx, ny, nz, sx, sy, sz)
	require.NoError(t, err)
	copy(c.Data(), g.Data())
	return c
}

// dirichletProblem prepares a 5³ domain whose faces hold v and whose
// interior starts at zero, with a zero right-hand side. The unique
// solution of that problem is the uniform field v.
func dirichletProblem(t *testing.T, v vec3.Vec) (soln, rhs *grid.Grid[vec3.Vec]) {
	t.Helper()
	soln = newVecGrid(t, 5, 5, 5, 0.25)
	rhs = newVecGrid(t, 5, 5, 5, 0.25)
	soln.EachFacePoint(func(_, _, _, off int) {
		soln.Set(off, v)
	})
	return soln, rhs
}

func TestSolve_OptionValidation(t *testing.T) {
	soln := newVecGrid(t, 5, 5, 5, 1)
	rhs := newVecGrid(t, 5, 5, 5, 1)

	tests := []struct {
		name   string
		mutate func(*poisson.Options)
		want   error
	}{
		{"negative steps", func(o *poisson.Options) { o.Steps = -1 }, poisson.ErrBadSteps},
		{"relax below one", func(o *poisson.Options) { o.Relax = 0.5 }, poisson.ErrBadRelax},
		{"relax at two", func(o *poisson.Options) { o.Relax = 2.0 }, poisson.ErrBadRelax},
		{"unknown boundary", func(o *poisson.Options) { o.Boundary = poisson.BoundaryCondition(7) }, poisson.ErrBadBoundary},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := poisson.DefaultOptions()
			tc.mutate(&opts)
			_, err := poisson.Solve(soln, rhs, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_PanicsOnShapeMismatch(t *testing.T) {
	soln := newVecGrid(t, 5, 5, 5, 1)
	rhs := newVecGrid(t, 5, 5, 4, 1)
	require.Panics(t, func() { _, _ = poisson.Solve(soln, rhs, poisson.DefaultOptions()) })
}

func TestSolve_PanicsOnTinyDomain(t *testing.T) {
	soln := newVecGrid(t, 5, 2, 5, 1)
	rhs := newVecGrid(t, 5, 2, 5, 1)
	require.Panics(t, func() { _, _ = poisson.Solve(soln, rhs, poisson.DefaultOptions()) })
}

// With many iterations the interior relaxes to the face value to machine
// precision, and the faces themselves stay untouched under Dirichlet.
func TestSolve_DirichletConvergesToFaceValue(t *testing.T) {
	v := vec3.Vec{X: 2, Y: -1, Z: 0.5}
	soln, rhs := dirichletProblem(t, v)

	opts := poisson.DefaultOptions()
	opts.Boundary = poisson.Dirichlet
	opts.Steps = 300
	_, err := poisson.Solve(soln, rhs, opts)
	require.NoError(t, err)

	for off, got := range soln.Data() {
		require.InDelta(t, v.X, got.X, 1e-9, "off=%d", off)
		require.InDelta(t, v.Y, got.Y, 1e-9, "off=%d", off)
		require.InDelta(t, v.Z, got.Z, 1e-9, "off=%d", off)
	}
	require.Equal(t, v, soln.At(soln.Offset(0, 2, 2)), "Dirichlet faces must stay prescribed")
}

// The heuristic step count (2·max dim) has to get at least close on a
// small domain; the deliberately loose delta leaves room for the slow
// start of over-relaxation.
func TestSolve_DirichletHeuristicBudget(t *testing.T) {
	v := vec3.Vec{X: 2}
	soln, rhs := dirichletProblem(t, v)

	opts := poisson.DefaultOptions()
	opts.Boundary = poisson.Dirichlet
	_, err := poisson.Solve(soln, rhs, opts)
	require.NoError(t, err)

	for off, got := range soln.Data() {
		require.InDelta(t, v.X, got.X, 0.5, "off=%d", off)
	}
}

// The zero field with zero right-hand side is an exact fixed point under
// either boundary condition: Solve must reproduce it bit for bit.
func TestSolve_ZeroFixedPoint(t *testing.T) {
	soln := newVecGrid(t, 6, 5, 7, 0.1)
	rhs := newVecGrid(t, 6, 5, 7, 0.1)

	_, err := poisson.Solve(soln, rhs, poisson.DefaultOptions())
	require.NoError(t, err)
	for off, got := range soln.Data() {
		require.Equal(t, vec3.Vec{}, got, "off=%d", off)
	}
}

// After a Neumann solve every face sample must equal its nearest
// strictly interior neighbor, whatever the interior converged to.
func TestSolve_NeumannFacesMirrorInterior(t *testing.T) {
	soln := newVecGrid(t, 6, 5, 7, 0.5)
	rhs := newVecGrid(t, 6, 5, 7, 0.5)
	nx, ny, nz := rhs.Dims()
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				rhs.SetIndex(ix, iy, iz, vec3.Vec{
					X: float64(ix - iy),
					Y: float64(iy * iz),
					Z: float64(ix + iz),
				})
			}
		}
	}

	_, err := poisson.Solve(soln, rhs, poisson.DefaultOptions())
	require.NoError(t, err)

	clamp := func(i, n int) int {
		if i < 1 {
			return 1
		}
		if i > n-2 {
			return n - 2
		}
		return i
	}
	soln.EachFacePoint(func(ix, iy, iz, off int) {
		want := soln.At(soln.Offset(clamp(ix, nx), clamp(iy, ny), clamp(iz, nz)))
		require.Equal(t, want, soln.At(off), "face (%d,%d,%d)", ix, iy, iz)
	})
}

// Residual statistics describe the final iteration, so running longer
// must report smaller updates. Each interior point is relaxed exactly
// once per iteration across the two color passes, which fixes Count.
func TestSolve_ResidualShrinksWithSteps(t *testing.T) {
	v := vec3.Vec{X: 3}

	run := func(steps int) poisson.Residual {
		soln, rhs := dirichletProblem(t, v)
		opts := poisson.DefaultOptions()
		opts.Boundary = poisson.Dirichlet
		opts.Steps = steps
		opts.CollectResiduals = true
		res, err := poisson.Solve(soln, rhs, opts)
		require.NoError(t, err)
		return res
	}

	short := run(1)
	long := run(30)

	require.Equal(t, 3*3*3, short.Count)
	require.Equal(t, short.Count, long.Count)
	require.Less(t, long.Mean, short.Mean)
	require.Less(t, long.Max, short.Max)
	for _, res := range []poisson.Residual{short, long} {
		require.LessOrEqual(t, res.Min, res.Mean)
		require.LessOrEqual(t, res.Mean, res.Max)
		require.GreaterOrEqual(t, res.StdDev, 0.0)
	}
}

func TestSolve_NoCollectReturnsZeroResidual(t *testing.T) {
	soln, rhs := dirichletProblem(t, vec3.Vec{X: 1})
	opts := poisson.DefaultOptions()
	opts.Boundary = poisson.Dirichlet
	res, err := poisson.Solve(soln, rhs, opts)
	require.NoError(t, err)
	require.Equal(t, poisson.Residual{}, res)
}

// Same-color points never read each other within a pass, so the result
// is independent of how the z range is partitioned — parallel runs must
// match the sequential one bit for bit.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	base := newVecGrid(t, 8, 7, 9, 0.5)
	rhs := newVecGrid(t, 8, 7, 9, 0.5)
	nx, ny, nz := rhs.Dims()
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				rhs.SetIndex(ix, iy, iz, vec3.Vec{
					X: float64(ix*iy - iz),
					Y: float64(iz*iz - ix),
					Z: float64(iy + 2*iz),
				})
			}
		}
	}

	run := func(r parallel.Runner) (*grid.Grid[vec3.Vec], poisson.Residual) {
		soln := cloneVecGrid(t, base)
		opts := poisson.DefaultOptions()
		opts.Boundary = poisson.Dirichlet
		opts.Steps = 20
		opts.Runner = r
		opts.CollectResiduals = true
		res, err := poisson.Solve(soln, rhs, opts)
		require.NoError(t, err)
		return soln, res
	}

	seqSoln, seqRes := run(nil)
	for _, r := range []parallel.Runner{
		parallel.Sequential{},
		parallel.Pool{Workers: 3},
		parallel.Pool{Workers: 16},
		parallel.Group{Limit: 4},
	} {
		gotSoln, gotRes := run(r)
		require.Equal(t, seqSoln.Data(), gotSoln.Data(), "runner %T", r)

		// Min, max and count merge exactly; the mean and stddev sums may
		// round differently across partitions.
		require.Equal(t, seqRes.Min, gotRes.Min)
		require.Equal(t, seqRes.Max, gotRes.Max)
		require.Equal(t, seqRes.Count, gotRes.Count)
		require.Empty(t, cmp.Diff(seqRes, gotRes, cmpopts.EquateApprox(1e-12, 0)))
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := poisson.DefaultOptions()
	require.Zero(t, opts.Steps)
	require.Equal(t, poisson.DefaultRelax, opts.Relax)
	require.Equal(t, poisson.Neumann, opts.Boundary)
	require.Nil(t, opts.Runner)
	require.False(t, opts.CollectResiduals)
}
