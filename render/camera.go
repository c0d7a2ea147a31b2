package render

import (
	"github.com/lixenwraith/tread/vmath"
)

// Camera is a fixed camera on the +Z axis looking at the origin
type Camera struct {
	Distance   float64 // translation back along the view axis
	FovDegrees float64 // vertical field of view
	Near       float64
	Far        float64
	CellAspect float64 // cell width / cell height, terminal cells are about twice as tall as wide
}

// DefaultCamera is five units back with a 45 degree lens
func DefaultCamera() Camera {
	return Camera{
		Distance:   5,
		FovDegrees: 45,
		Near:       0.1,
		Far:        100,
		CellAspect: 0.5,
	}
}

// View moves the world away from the camera
func (c Camera) View() vmath.Mat4 {
	return vmath.Translate(0, 0, -c.Distance)
}

// Projection builds the perspective for a width x height cell grid
func (c Camera) Projection(width, height int) vmath.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return vmath.Perspective(vmath.Radians(c.FovDegrees), aspect*c.CellAspect, c.Near, c.Far)
}

// MVP composes model, view and projection, applied left to right
func (c Camera) MVP(model vmath.Mat4, width, height int) vmath.Mat4 {
	return vmath.Chain(model, c.View(), c.Projection(width, height))
}

// ModelMatrix scales, rotates about X then Y then Z, then translates
func ModelMatrix(position, size, rotation vmath.Vec3F) vmath.Mat4 {
	return vmath.Chain(
		vmath.ScaleMat(size.X, size.Y, size.Z),
		vmath.RotateX(rotation.X),
		vmath.RotateY(rotation.Y),
		vmath.RotateZ(rotation.Z),
		vmath.Translate(position.X, position.Y, position.Z),
	)
}
