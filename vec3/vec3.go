package vec3

import "math"

// Vec is a 3-vector of float64 components.
type Vec struct {
	X, Y, Z float64
}

// Add returns v + u component-wise.
func (v Vec) Add(u Vec) Vec {
	return Vec{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v − u component-wise.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the scalar product v · u.
func (v Vec) Dot(u Vec) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the vector product v × u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Mag2 returns the squared magnitude |v|².
// Cheaper than Mag when only an ordering of magnitudes is needed.
func (v Vec) Mag2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Mag returns the magnitude |v|.
func (v Vec) Mag() float64 {
	return math.Sqrt(v.Mag2())
}

// IsNaN reports whether any component is NaN.
func (v Vec) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsInf reports whether any component is infinite.
func (v Vec) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// Mat is a 3×3 matrix stored as three row vectors.
// When used as a Jacobian sample, row A holds the partial derivatives
// taken with respect to axis A: M.X.Y = d(v_y)/dx.
type Mat struct {
	X, Y, Z Vec
}

// Add returns m + n component-wise.
func (m Mat) Add(n Mat) Mat {
	return Mat{m.X.Add(n.X), m.Y.Add(n.Y), m.Z.Add(n.Z)}
}

// Sub returns m − n component-wise.
func (m Mat) Sub(n Mat) Mat {
	return Mat{m.X.Sub(n.X), m.Y.Sub(n.Y), m.Z.Sub(n.Z)}
}

// Scale returns m scaled by s.
func (m Mat) Scale(s float64) Mat {
	return Mat{m.X.Scale(s), m.Y.Scale(s), m.Z.Scale(s)}
}

// MulVec returns the matrix-vector product m · v.
func (m Mat) MulVec(v Vec) Vec {
	return Vec{m.X.Dot(v), m.Y.Dot(v), m.Z.Dot(v)}
}
