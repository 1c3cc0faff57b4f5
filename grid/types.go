// Package grid defines the container type, sentinel errors and the
// Invalid sample marker for the grid subpackage of
// github.com/katalvlaran/fieldgrid.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDims indicates a grid dimension smaller than 1.
	ErrBadDims = errors.New("grid: dimensions must each be at least 1")
	// ErrBadSpacing indicates a negative, NaN or infinite cell spacing.
	ErrBadSpacing = errors.New("grid: cell spacing must be finite and non-negative")
)

// epsSpacing is the threshold below which an axis spacing is treated as
// degenerate (2D domain): its reciprocal becomes 0 rather than dividing
// by (near) zero.
const epsSpacing = 0x1p-52

// Invalid returns the sentinel sample value meaning "no data at this
// location", used by fields that are the union of disjoint valid
// sub-regions. It is a quiet NaN; compare with IsInvalid, never with ==.
func Invalid() float64 { return math.NaN() }

// IsInvalid reports whether v is the Invalid sentinel.
func IsInvalid(v float64) bool { return math.IsNaN(v) }

// Shape describes the dimensions and spacing of a grid, independent of
// its sample type. Two grids participate in the same operator only when
// their dimensions match; spacing is taken from one designated input.
type Shape struct {
	NX, NY, NZ int
	SX, SY, SZ float64
}

// DimsMatch reports whether s and t have identical dimensions.
// Spacing is deliberately not compared.
func (s Shape) DimsMatch(t Shape) bool {
	return s.NX == t.NX && s.NY == t.NY && s.NZ == t.NZ
}
