package vmath

import (
	"math"
	"testing"
)

func TestMul4Identity(t *testing.T) {
	m := Chain(RotateX(0.3), RotateY(-1.1), Translate(2, -3, 4), ScaleMat(2, 3, 4))
	if !Near4(Mul4(Identity(), m), m, 1e-12) {
		t.Error("I * M != M")
	}
	if !Near4(Mul4(m, Identity()), m, 1e-12) {
		t.Error("M * I != M")
	}
	if Chain() != Identity() {
		t.Error("empty chain is not identity")
	}
}

func TestZeroRotationsAreIdentity(t *testing.T) {
	for name, m := range map[string]Mat4{
		"x": RotateX(0),
		"y": RotateY(0),
		"z": RotateZ(0),
	} {
		if m != Identity() {
			t.Errorf("Rotate%s(0) = %v", name, m)
		}
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3F
		m    Mat4
		want Vec3F
	}{
		{"identity", V3F(1, 2, 3), Identity(), V3F(1, 2, 3)},
		{"translate", V3F(1, 2, 3), Translate(1, -1, 0.5), V3F(2, 1, 3.5)},
		{"scale", V3F(1, 2, 3), ScaleMat(2, 0.5, -1), V3F(2, 1, -3)},
		{"rotate x quarter", V3F(0, 1, 0), RotateX(math.Pi / 2), V3F(0, 0, 1)},
		{"rotate y quarter", V3F(0, 0, 1), RotateY(math.Pi / 2), V3F(1, 0, 0)},
		{"rotate z quarter", V3F(1, 0, 0), RotateZ(math.Pi / 2), V3F(0, 1, 0)},
		{"scale then translate", V3F(1, 1, 1), Chain(ScaleMat(2, 2, 2), Translate(1, 0, 0)), V3F(3, 2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.v, tt.m); !V3FNear(got, tt.want, 1e-12) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransformZeroW(t *testing.T) {
	m := Identity()
	m[3][3] = 0
	got := Transform(V3F(1, 2, 3), m)
	if got != V3F(1, 2, 3) {
		t.Errorf("w=0 transform = %+v, want raw coordinates", got)
	}
}

func TestPerspective(t *testing.T) {
	const near, far = 0.1, 100.0
	p := Perspective(Radians(90), 2, near, far)

	// On-axis points keep the center
	c := Transform(V3F(0, 0, -5), p)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("axis point projected off center: %+v", c)
	}

	// Near and far planes map to -1 and 1
	if z := Transform(V3F(0, 0, -near), p).Z; math.Abs(z+1) > 1e-9 {
		t.Errorf("near plane depth = %v, want -1", z)
	}
	if z := Transform(V3F(0, 0, -far), p).Z; math.Abs(z-1) > 1e-9 {
		t.Errorf("far plane depth = %v, want 1", z)
	}

	// 90 degree vertical FOV: y = -z is the top edge, aspect 2 halves x
	e := Transform(V3F(2, 2, -2), p)
	if math.Abs(e.Y-1) > 1e-9 || math.Abs(e.X-0.5) > 1e-9 {
		t.Errorf("edge point = %+v, want x=0.5 y=1", e)
	}

	// Nearer points get smaller depth
	if Transform(V3F(0, 0, -1), p).Z >= Transform(V3F(0, 0, -10), p).Z {
		t.Error("depth not increasing with distance")
	}
}
