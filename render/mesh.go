package render

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/tread/vmath"
)

// Triangle holds three indices into a mesh's vertex list
type Triangle [3]int

// Mesh is static indexed triangle data
type Mesh struct {
	Vertices []vmath.Vec3F
	Faces    []Triangle
}

// Validate reports the first face with an index outside Vertices
func (m Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return errors.Errorf("face %d: vertex index %d out of range [0,%d)", i, v, len(m.Vertices))
			}
		}
	}
	return nil
}

// face returns the vertices of face i, false if any index is invalid
func (m Mesh) face(i int) (a, b, c vmath.Vec3F, ok bool) {
	f := m.Faces[i]
	n := len(m.Vertices)
	for _, v := range f {
		if v < 0 || v >= n {
			return a, b, c, false
		}
	}
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]], true
}

// cubeVertices is a unit cube centered at the origin
var cubeVertices = [8]vmath.Vec3F{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
}

// cubeFaces is two triangles per face
var cubeFaces = [12]Triangle{
	{0, 1, 2}, {0, 2, 3}, // front
	{4, 6, 5}, {4, 7, 6}, // back
	{1, 5, 6}, {1, 6, 2}, // right
	{4, 0, 3}, {4, 3, 7}, // left
	{3, 2, 6}, {3, 6, 7}, // top
	{0, 4, 5}, {0, 5, 1}, // bottom
}

// CubeMesh returns a fresh copy of the unit cube
func CubeMesh() Mesh {
	m := Mesh{
		Vertices: make([]vmath.Vec3F, len(cubeVertices)),
		Faces:    make([]Triangle, len(cubeFaces)),
	}
	copy(m.Vertices, cubeVertices[:])
	copy(m.Faces, cubeFaces[:])
	return m
}
