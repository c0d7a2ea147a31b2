package vmath

import (
	"math"
)

// Mat4 is a row-major 4x4 matrix used with row vectors: v' = v * M
// Composition reads left to right, a full transform is Model * View * Projection
type Mat4 [4][4]float64

// Identity returns the multiplicative identity
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul4 returns a * b
func Mul4(a, b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Chain multiplies matrices left to right, Chain() is the identity
func Chain(ms ...Mat4) Mat4 {
	r := Identity()
	for _, m := range ms {
		r = Mul4(r, m)
	}
	return r
}

// Translate places the offset in the bottom row
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

// RotateX rotates about the X axis by angle radians, right-hand rule
func RotateX(angle float64) Mat4 {
	m := Identity()
	s, c := math.Sincos(angle)
	m[1][1], m[1][2] = c, s
	m[2][1], m[2][2] = -s, c
	return m
}

// RotateY rotates about the Y axis by angle radians
func RotateY(angle float64) Mat4 {
	m := Identity()
	s, c := math.Sincos(angle)
	m[0][0], m[0][2] = c, -s
	m[2][0], m[2][2] = s, c
	return m
}

// RotateZ rotates about the Z axis by angle radians
func RotateZ(angle float64) Mat4 {
	m := Identity()
	s, c := math.Sincos(angle)
	m[0][0], m[0][1] = c, s
	m[1][0], m[1][1] = -s, c
	return m
}

// ScaleMat scales each axis independently
func ScaleMat(x, y, z float64) Mat4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// Perspective builds a symmetric projection from vertical FOV (radians), aspect ratio
// and near/far planes. Camera looks down -Z, w' = -z
func Perspective(fovY, aspect, near, far float64) Mat4 {
	var m Mat4
	tanHalf := math.Tan(fovY / 2)
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

// Transform applies m to v as the homogeneous point (x, y, z, 1) and divides by w.
// A w of exactly zero skips the divide and returns the raw coordinates
func Transform(v Vec3F, m Mat4) Vec3F {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2]
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]

	if w == 0 {
		return Vec3F{x, y, z}
	}
	return Vec3F{x / w, y / w, z / w}
}

// Near4 reports whether every element differs by at most eps
func Near4(a, b Mat4, eps float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
