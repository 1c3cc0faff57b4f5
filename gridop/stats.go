package gridop

import (
	"math"

	"github.com/katalvlaran/fieldgrid/grid"
	"github.com/katalvlaran/fieldgrid/vec3"
)

// Stats aggregates a scalar field in a single pass.
type Stats struct {
	Min, Max, Mean, StdDev float64
}

// ValueRange returns the minimum and maximum sample of a scalar grid.
// Complexity: O(n), one pass.
func ValueRange(g *grid.Grid[float64]) (vmin, vmax float64) {
	vmin, vmax = math.Inf(1), math.Inf(-1)
	for _, v := range g.Data() {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}
	return vmin, vmax
}

// ValueStats returns min, max, mean and standard deviation of a scalar
// grid in a single forward pass, accumulating the running sum and sum of
// squares. The variance (sum²/N − mean²) is clamped to ≥ 0 before the
// square root to absorb floating-point round-off.
// Complexity: O(n), one pass.
func ValueStats(g *grid.Grid[float64]) Stats {
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum, sum2 float64
	for _, v := range g.Data() {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
		sum2 += v * v
	}

	n := float64(g.Len())
	st.Mean = sum / n
	variance := sum2/n - st.Mean*st.Mean
	if variance < 0 {
		variance = 0
	}
	st.StdDev = math.Sqrt(variance)
	return st
}

// MagnitudeRange returns the minimum and maximum magnitude of a vector
// grid. Squared magnitudes are compared during the pass and the square
// roots taken once at the end — valid because sqrt is monotonic over
// non-negative inputs. Complexity: O(n), one pass, no per-sample sqrt.
func MagnitudeRange(g *grid.Grid[vec3.Vec]) (magMin, magMax float64) {
	min2, max2 := math.Inf(1), math.Inf(-1)
	for _, v := range g.Data() {
		m2 := v.Mag2()
		if m2 < min2 {
			min2 = m2
		}
		if m2 > max2 {
			max2 = m2
		}
	}
	return math.Sqrt(min2), math.Sqrt(max2)
}

// MatRange returns the component-wise minimum and maximum over a tensor
// grid. Complexity: O(n), one pass.
func MatRange(g *grid.Grid[vec3.Mat]) (mmin, mmax vec3.Mat) {
	inf := vec3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	mmin = vec3.Mat{X: inf, Y: inf, Z: inf}
	mmax = mmin.Scale(-1)
	for _, m := range g.Data() {
		mmin = vec3.Mat{
			X: minVec(mmin.X, m.X),
			Y: minVec(mmin.Y, m.Y),
			Z: minVec(mmin.Z, m.Z),
		}
		mmax = vec3.Mat{
			X: maxVec(mmax.X, m.X),
			Y: maxVec(mmax.Y, m.Y),
			Z: maxVec(mmax.Z, m.Z),
		}
	}
	return mmin, mmax
}

func minVec(a, b vec3.Vec) vec3.Vec {
	return vec3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxVec(a, b vec3.Vec) vec3.Vec {
	return vec3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
