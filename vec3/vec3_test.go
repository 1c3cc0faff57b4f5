package vec3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fieldgrid/vec3"
)

// TestVec_Arithmetic exercises Add, Sub and Scale on simple operands.
func TestVec_Arithmetic(t *testing.T) {
	a := vec3.Vec{X: 1, Y: 2, Z: 3}
	b := vec3.Vec{X: -1, Y: 0.5, Z: 2}

	assert.Equal(t, vec3.Vec{X: 0, Y: 2.5, Z: 5}, a.Add(b))
	assert.Equal(t, vec3.Vec{X: 2, Y: 1.5, Z: 1}, a.Sub(b))
	assert.Equal(t, vec3.Vec{X: 2, Y: 4, Z: 6}, a.Scale(2))
}

// TestVec_DotCross checks dot and cross products against hand-computed values,
// including the orthogonality of a cross product to both operands.
func TestVec_DotCross(t *testing.T) {
	a := vec3.Vec{X: 1, Y: 2, Z: 3}
	b := vec3.Vec{X: 4, Y: 5, Z: 6}

	assert.Equal(t, 32.0, a.Dot(b))

	c := a.Cross(b)
	assert.Equal(t, vec3.Vec{X: -3, Y: 6, Z: -3}, c)
	assert.Zero(t, c.Dot(a))
	assert.Zero(t, c.Dot(b))
}

// TestVec_Magnitude verifies Mag2 and Mag on a 3-4-12 triple.
func TestVec_Magnitude(t *testing.T) {
	v := vec3.Vec{X: 3, Y: 4, Z: 12}
	assert.Equal(t, 169.0, v.Mag2())
	assert.Equal(t, 13.0, v.Mag())
}

// TestVec_NaNInf checks component-wise NaN and Inf detection.
func TestVec_NaNInf(t *testing.T) {
	assert.False(t, vec3.Vec{}.IsNaN())
	assert.False(t, vec3.Vec{}.IsInf())
	assert.True(t, vec3.Vec{Y: math.NaN()}.IsNaN())
	assert.True(t, vec3.Vec{Z: math.Inf(-1)}.IsInf())
}

// TestMat_Arithmetic exercises Mat Add, Sub, Scale and MulVec.
func TestMat_Arithmetic(t *testing.T) {
	ident := vec3.Mat{
		X: vec3.Vec{X: 1},
		Y: vec3.Vec{Y: 1},
		Z: vec3.Vec{Z: 1},
	}
	v := vec3.Vec{X: 2, Y: -3, Z: 5}

	assert.Equal(t, v, ident.MulVec(v))
	assert.Equal(t, ident.Scale(2), ident.Add(ident))
	assert.Equal(t, vec3.Mat{}, ident.Sub(ident))
}
