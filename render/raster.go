package render

import (
	"math"

	"github.com/lixenwraith/tread/terminal"
	"github.com/lixenwraith/tread/vmath"
)

// lineGuard bounds projected line endpoints. Vertices at or behind the camera plane project
// to huge coordinates and their segments are skipped instead of stepped
const lineGuard = 1 << 15

// Rasterizer draws projected triangles into a frame buffer with depth testing
type Rasterizer struct {
	fb    *FrameBuffer
	depth *DepthBuffer
}

// NewRasterizer allocates a depth buffer matching fb
func NewRasterizer(fb *FrameBuffer) (*Rasterizer, error) {
	d, err := NewDepthBuffer(fb.Width(), fb.Height())
	if err != nil {
		return nil, err
	}
	return &Rasterizer{fb: fb, depth: d}, nil
}

// Depth exposes the depth buffer
func (r *Rasterizer) Depth() *DepthBuffer {
	return r.depth
}

// ResetDepth sets every depth entry to far
func (r *Rasterizer) ResetDepth() {
	r.depth.Reset()
}

// ProjectToScreen transforms v by mvp and maps NDC [-1,1] to [0,width) x [0,height)
// with Y inverted. Z keeps the NDC depth
func (r *Rasterizer) ProjectToScreen(v vmath.Vec3F, mvp vmath.Mat4) vmath.Vec3F {
	return projectToScreen(v, mvp, r.fb.Width(), r.fb.Height())
}

func projectToScreen(v vmath.Vec3F, mvp vmath.Mat4, width, height int) vmath.Vec3F {
	ndc := vmath.Transform(v, mvp)
	return vmath.Vec3F{
		X: (ndc.X + 1) * 0.5 * float64(width),
		Y: (1 - ndc.Y) * 0.5 * float64(height),
		Z: ndc.Z,
	}
}

// DrawLine steps an integer Bresenham line, pixels outside the buffer are dropped
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, color terminal.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		r.fb.DrawPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTriangleWireframe projects the vertices and draws the three edges
func (r *Rasterizer) DrawTriangleWireframe(v1, v2, v3 vmath.Vec3F, mvp vmath.Mat4, color terminal.Color) {
	p := [3]vmath.Vec3F{
		r.ProjectToScreen(v1, mvp),
		r.ProjectToScreen(v2, mvp),
		r.ProjectToScreen(v3, mvp),
	}
	for i := 0; i < 3; i++ {
		a, b := p[i], p[(i+1)%3]
		if !drawable(a) || !drawable(b) {
			continue
		}
		r.DrawLine(floorInt(a.X), floorInt(a.Y), floorInt(b.X), floorInt(b.Y), color)
	}
}

// DrawTriangleFilled projects the vertices and fills the triangle scanline by scanline.
// Each row spans the leftmost and rightmost edge crossings, depth is interpolated
// linearly across the span and a cell is drawn only when nearer than the stored depth
func (r *Rasterizer) DrawTriangleFilled(v1, v2, v3 vmath.Vec3F, mvp vmath.Mat4, color terminal.Color) {
	p := [3]vmath.Vec3F{
		r.ProjectToScreen(v1, mvp),
		r.ProjectToScreen(v2, mvp),
		r.ProjectToScreen(v3, mvp),
	}
	for _, v := range p {
		if !drawable(v) {
			return
		}
	}

	// Sort by ascending screen Y
	if p[0].Y > p[1].Y {
		p[0], p[1] = p[1], p[0]
	}
	if p[0].Y > p[2].Y {
		p[0], p[2] = p[2], p[0]
	}
	if p[1].Y > p[2].Y {
		p[1], p[2] = p[2], p[1]
	}

	width, height := r.fb.Width(), r.fb.Height()
	yStart := max(floorInt(p[0].Y), 0)
	yEnd := min(floorInt(p[2].Y), height-1)

	for y := yStart; y <= yEnd; y++ {
		xLeft, xRight := float64(width), 0.0
		zLeft, zRight := FarDepth, 0.0
		hit := false

		for i := 0; i < 3; i++ {
			cur, next := p[i], p[(i+1)%3]
			cy, ny := floorInt(cur.Y), floorInt(next.Y)
			if !((y >= cy && y < ny) || (y >= ny && y < cy)) {
				continue
			}
			if cur.Y == next.Y {
				continue
			}
			// Rows are sampled at integer Y, clamp so the crossing stays on the edge segment
			t := min(max((float64(y)-cur.Y)/(next.Y-cur.Y), 0), 1)
			ix := cur.X + t*(next.X-cur.X)
			iz := cur.Z + t*(next.Z-cur.Z)
			if !hit || ix < xLeft {
				xLeft, zLeft = ix, iz
			}
			if !hit || ix > xRight {
				xRight, zRight = ix, iz
			}
			hit = true
		}
		if !hit {
			continue
		}

		xStart := max(floorInt(xLeft), 0)
		xEnd := min(floorInt(xRight), width-1)
		for x := xStart; x <= xEnd; x++ {
			z := zLeft
			if xEnd != xStart {
				z = zLeft + float64(x-xStart)/float64(xEnd-xStart)*(zRight-zLeft)
			}
			if r.depth.TestAndSet(x, y, z) {
				r.fb.DrawPixel(x, y, color)
			}
		}
	}
}

// DrawMeshWireframe draws every face of m, faces with invalid indices are skipped
func (r *Rasterizer) DrawMeshWireframe(m Mesh, mvp vmath.Mat4, color terminal.Color) {
	for i := range m.Faces {
		if a, b, c, ok := m.face(i); ok {
			r.DrawTriangleWireframe(a, b, c, mvp, color)
		}
	}
}

// DrawMeshFilled fills every face of m, faces with invalid indices are skipped
func (r *Rasterizer) DrawMeshFilled(m Mesh, mvp vmath.Mat4, color terminal.Color) {
	for i := range m.Faces {
		if a, b, c, ok := m.face(i); ok {
			r.DrawTriangleFilled(a, b, c, mvp, color)
		}
	}
}

// DrawCubeWireframe draws a unit cube scaled, rotated and placed in front of cam
func (r *Rasterizer) DrawCubeWireframe(cam Camera, position, size, rotation vmath.Vec3F, color terminal.Color) {
	mvp := cam.MVP(ModelMatrix(position, size, rotation), r.fb.Width(), r.fb.Height())
	for _, f := range cubeFaces {
		r.DrawTriangleWireframe(cubeVertices[f[0]], cubeVertices[f[1]], cubeVertices[f[2]], mvp, color)
	}
}

// DrawCubeFilled is the depth-tested filled version of DrawCubeWireframe
func (r *Rasterizer) DrawCubeFilled(cam Camera, position, size, rotation vmath.Vec3F, color terminal.Color) {
	mvp := cam.MVP(ModelMatrix(position, size, rotation), r.fb.Width(), r.fb.Height())
	for _, f := range cubeFaces {
		r.DrawTriangleFilled(cubeVertices[f[0]], cubeVertices[f[1]], cubeVertices[f[2]], mvp, color)
	}
}

// drawable rejects NaN, infinite and runaway projected coordinates
func drawable(v vmath.Vec3F) bool {
	return math.Abs(v.X) < lineGuard && math.Abs(v.Y) < lineGuard && !math.IsNaN(v.Z)
}

func floorInt(f float64) int {
	return int(math.Floor(f))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
