package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/tread/terminal"
	"github.com/lixenwraith/tread/vmath"
)

func newTestRasterizer(t *testing.T, w, h int) (*FrameBuffer, *Rasterizer) {
	t.Helper()
	fb, err := NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	r, err := NewRasterizer(fb)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	return fb, r
}

func TestProjectOriginToCenter(t *testing.T) {
	sizes := [][2]int{{80, 24}, {81, 25}, {10, 10}}
	cam := DefaultCamera()
	for _, sz := range sizes {
		_, r := newTestRasterizer(t, sz[0], sz[1])
		mvp := cam.MVP(vmath.Identity(), sz[0], sz[1])
		p := r.ProjectToScreen(vmath.Vec3F{}, mvp)
		if math.Abs(p.X-float64(sz[0])/2) > 1e-9 || math.Abs(p.Y-float64(sz[1])/2) > 1e-9 {
			t.Errorf("%dx%d: origin projected to (%v,%v)", sz[0], sz[1], p.X, p.Y)
		}
		if p.Z <= -1 || p.Z >= 1 {
			t.Errorf("%dx%d: origin depth %v outside clip range", sz[0], sz[1], p.Z)
		}
	}
}

func TestProjectIdentityCorners(t *testing.T) {
	_, r := newTestRasterizer(t, 20, 10)
	tests := []struct {
		in     vmath.Vec3F
		wx, wy float64
	}{
		{vmath.Vec3F{X: -1, Y: 1}, 0, 0},
		{vmath.Vec3F{X: 1, Y: -1}, 20, 10},
		{vmath.Vec3F{X: 0, Y: 0}, 10, 5},
	}
	for _, tt := range tests {
		p := r.ProjectToScreen(tt.in, vmath.Identity())
		if p.X != tt.wx || p.Y != tt.wy {
			t.Errorf("project %+v = (%v,%v), want (%v,%v)", tt.in, p.X, p.Y, tt.wx, tt.wy)
		}
	}
}

func TestDepthTestOrderIndependent(t *testing.T) {
	tri := func(z float64) (vmath.Vec3F, vmath.Vec3F, vmath.Vec3F) {
		return vmath.Vec3F{X: -0.9, Y: -0.9, Z: z}, vmath.Vec3F{X: 0.9, Y: -0.9, Z: z}, vmath.Vec3F{X: 0, Y: 0.9, Z: z}
	}
	tests := []struct {
		name      string
		nearFirst bool
	}{
		{"near first", true},
		{"far first", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, r := newTestRasterizer(t, 20, 20)
			na, nb, nc := tri(0.2)
			fa, fbv, fc := tri(0.5)
			if tt.nearFirst {
				r.DrawTriangleFilled(na, nb, nc, vmath.Identity(), terminal.Red)
				r.DrawTriangleFilled(fa, fbv, fc, vmath.Identity(), terminal.Blue)
			} else {
				r.DrawTriangleFilled(fa, fbv, fc, vmath.Identity(), terminal.Blue)
				r.DrawTriangleFilled(na, nb, nc, vmath.Identity(), terminal.Red)
			}
			c, _ := fb.Cell(10, 10)
			if !c.Bg.Equal(terminal.Red) {
				t.Errorf("center = %v, want near triangle color", c.Bg)
			}
			if d := r.Depth().At(10, 10); math.Abs(d-0.2) > 1e-9 {
				t.Errorf("stored depth = %v, want 0.2", d)
			}
		})
	}
}

func TestResetDepth(t *testing.T) {
	_, r := newTestRasterizer(t, 4, 4)
	if !r.Depth().TestAndSet(1, 1, 0.3) {
		t.Fatal("first write rejected")
	}
	if r.Depth().TestAndSet(1, 1, 0.3) {
		t.Error("equal depth accepted")
	}
	r.ResetDepth()
	if d := r.Depth().At(1, 1); d != FarDepth {
		t.Errorf("depth after reset = %v, want far", d)
	}
	if r.Depth().TestAndSet(-1, 0, 0) || r.Depth().TestAndSet(0, 4, 0) {
		t.Error("out-of-range write accepted")
	}
}

func TestCubeProjectionSymmetric(t *testing.T) {
	const w, h = 80, 40
	cam := DefaultCamera()
	mvp := cam.MVP(ModelMatrix(vmath.Vec3F{}, vmath.Vec3F{X: 1, Y: 1, Z: 1}, vmath.Vec3F{}), w, h)

	for i, v := range cubeVertices {
		mirror := -1
		for j, m := range cubeVertices {
			if m.X == -v.X && m.Y == v.Y && m.Z == v.Z {
				mirror = j
			}
		}
		if mirror < 0 {
			t.Fatalf("vertex %d has no mirror", i)
		}
		a := projectToScreen(v, mvp, w, h)
		b := projectToScreen(cubeVertices[mirror], mvp, w, h)
		if math.Abs(a.X+b.X-w) > 1e-9 {
			t.Errorf("vertices %d/%d: x %v + %v != %d", i, mirror, a.X, b.X, w)
		}
		if math.Abs(a.Y-b.Y) > 1e-9 {
			t.Errorf("vertices %d/%d: y %v != %v", i, mirror, a.Y, b.Y)
		}
	}
}

func TestFilledCubeSilhouetteSymmetric(t *testing.T) {
	const w, h = 80, 40
	fb, r := newTestRasterizer(t, w, h)
	fb.Clear(terminal.Black)
	r.DrawCubeFilled(DefaultCamera(), vmath.Vec3F{}, vmath.Vec3F{X: 1, Y: 1, Z: 1}, vmath.Vec3F{}, terminal.White)

	rows := 0
	for y := 0; y < h; y++ {
		left, right := -1, -1
		for x := 0; x < w; x++ {
			c, _ := fb.Cell(x, y)
			if !c.Bg.Equal(terminal.White) {
				continue
			}
			if left < 0 {
				left = x
			}
			right = x
		}
		if left < 0 {
			continue
		}
		rows++
		if d := left + right - (w - 1); d < -1 || d > 1 {
			t.Errorf("row %d: span [%d,%d] off center by %d", y, left, right, d)
		}
	}
	if rows == 0 {
		t.Fatal("cube drew nothing")
	}
}

func TestWireframeCubeStaysInBounds(t *testing.T) {
	tests := []struct {
		name string
		pos  vmath.Vec3F
		rot  vmath.Vec3F
	}{
		{"centered", vmath.Vec3F{}, vmath.Vec3F{X: 0.4, Y: 0.7}},
		{"off screen", vmath.Vec3F{X: 40}, vmath.Vec3F{}},
		{"straddling camera", vmath.Vec3F{Z: 5}, vmath.Vec3F{Y: 0.3}},
		{"behind camera", vmath.Vec3F{Z: 20}, vmath.Vec3F{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, r := newTestRasterizer(t, 40, 20)
			r.DrawCubeWireframe(DefaultCamera(), tt.pos, vmath.Vec3F{X: 1, Y: 1, Z: 1}, tt.rot, terminal.Green)
			r.DrawCubeFilled(DefaultCamera(), tt.pos, vmath.Vec3F{X: 1, Y: 1, Z: 1}, tt.rot, terminal.Green)
			s := &recordingSurface{}
			fb.Flush(s)
			for _, wr := range s.writes {
				if wr.x < 0 || wr.x >= 40 || wr.y < 0 || wr.y >= 20 {
					t.Fatalf("write outside buffer at (%d,%d)", wr.x, wr.y)
				}
			}
		})
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
	}{
		{0, 0, 5, 3},
		{5, 3, 0, 0},
		{2, 7, 2, 1},
		{0, 4, 9, 4},
		{3, 3, 3, 3},
	}
	for _, tt := range tests {
		fb, r := newTestRasterizer(t, 10, 10)
		r.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, terminal.Red)
		for _, p := range [][2]int{{tt.x0, tt.y0}, {tt.x1, tt.y1}} {
			if c, _ := fb.Cell(p[0], p[1]); !c.Bg.Equal(terminal.Red) {
				t.Errorf("line %v: endpoint (%d,%d) not drawn", tt, p[0], p[1])
			}
		}
		want := max(abs(tt.x1-tt.x0), abs(tt.y1-tt.y0)) + 1
		if n := fb.Flush(&recordingSurface{}); n != want {
			t.Errorf("line %v: %d pixels, want %d", tt, n, want)
		}
	}
}

func TestMeshValidate(t *testing.T) {
	if err := CubeMesh().Validate(); err != nil {
		t.Fatalf("cube mesh invalid: %v", err)
	}
	bad := Mesh{
		Vertices: []vmath.Vec3F{{}, {X: 1}, {Y: 1}},
		Faces:    []Triangle{{0, 1, 2}, {0, 1, 3}},
	}
	if err := bad.Validate(); err == nil {
		t.Error("out-of-range face accepted")
	}

	// Invalid faces are skipped, the valid one still draws
	fb, r := newTestRasterizer(t, 10, 10)
	bad.Vertices = []vmath.Vec3F{{X: -0.9, Y: -0.9}, {X: 0.9, Y: -0.9}, {Y: 0.9}}
	r.DrawMeshFilled(bad, vmath.Identity(), terminal.Red)
	if n := fb.Flush(&recordingSurface{}); n == 0 {
		t.Error("valid face not drawn")
	}
}

func TestCubeMeshIsCopy(t *testing.T) {
	m := CubeMesh()
	m.Vertices[0].X = 99
	if cubeVertices[0].X == 99 {
		t.Error("CubeMesh shares vertex storage")
	}
}
