package main

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/tread/terminal"
	"github.com/lixenwraith/tread/vmath"
)

// canvas is the part of engine.Session the demo draws through
type canvas interface {
	Clear(color terminal.Color)
	DrawText(text string, x, y int, fg, bg terminal.Color)
	DrawRectangle(x, y, w, h int, fg, bg terminal.Color)
	DrawRectangleLines(x, y, w, h int, fg, bg terminal.Color)
	DrawCubeWireframe(position, size, rotation vmath.Vec3F, color terminal.Color)
	DrawCubeFilled(position, size, rotation vmath.Vec3F, color terminal.Color)
	FrameTime() time.Duration
}

const (
	boxWidth  = 6
	boxHeight = 3
	spinStep  = 0.01
	hudRow    = 1
)

// demo is a bouncing box plus two spinning cubes
type demo struct {
	width, height int
	enable3D      bool

	boxX, boxY   int
	boxVX, boxVY int

	angle  float64
	spin   float64
	filled bool
	paused bool
	frames int

	lastKey terminal.Key
}

func newDemo(width, height int, enable3D bool) *demo {
	return &demo{
		width:    width,
		height:   height,
		enable3D: enable3D,
		boxX:     2,
		boxY:     3,
		boxVX:    1,
		boxVY:    1,
		spin:     0.03,
		filled:   true,
	}
}

func (d *demo) handleKey(k terminal.Key) {
	if k == terminal.KeyNone {
		return
	}
	d.lastKey = k
	switch k {
	case terminal.KeySpace:
		d.paused = !d.paused
	case 'f':
		d.filled = !d.filled
	case terminal.KeyUp:
		d.spin += spinStep
	case terminal.KeyDown:
		d.spin = math.Max(0, d.spin-spinStep)
	}
}

// step advances one frame, the box reflects off the inner border
func (d *demo) step() {
	if d.paused {
		return
	}
	d.frames++
	d.angle += d.spin

	minX, minY := 1, hudRow+1
	maxX, maxY := d.width-1-boxWidth, d.height-1-boxHeight
	if maxX < minX || maxY < minY {
		return
	}
	d.boxX += d.boxVX
	d.boxY += d.boxVY
	if d.boxX <= minX || d.boxX >= maxX {
		d.boxVX = -d.boxVX
		d.boxX = min(max(d.boxX, minX), maxX)
	}
	if d.boxY <= minY || d.boxY >= maxY {
		d.boxVY = -d.boxVY
		d.boxY = min(max(d.boxY, minY), maxY)
	}
}

func (d *demo) draw(c canvas) {
	c.Clear(terminal.TreadGray)
	c.DrawRectangleLines(0, 0, d.width, d.height, terminal.Gray, terminal.Blank)
	c.DrawText(" tread sandbox ", 2, 0, terminal.RayWhite, terminal.DarkBlue)

	c.DrawText(d.hud(c.FrameTime()), 2, hudRow, terminal.LightGray, terminal.Blank)
	c.DrawRectangle(d.boxX, d.boxY, boxWidth, boxHeight, terminal.Red, terminal.Red)

	if !d.enable3D {
		c.DrawText("start with -3d for cubes", 2, d.height-1, terminal.Yellow, terminal.Blank)
		return
	}
	one := vmath.V3F(1, 1, 1)
	rot := vmath.V3F(d.angle*0.7, d.angle, d.angle*0.3)
	left := vmath.V3F(-1.2, 0, 0)
	right := vmath.V3F(1.2, 0, 0)
	if d.filled {
		c.DrawCubeFilled(left, one, rot, terminal.Orange)
		c.DrawCubeFilled(right, vmath.V3F(0.8, 0.8, 0.8), vmath.V3F(-rot.X, rot.Y, 0), terminal.SkyBlue)
	}
	c.DrawCubeWireframe(left, one, rot, terminal.Gold)
	c.DrawCubeWireframe(right, vmath.V3F(0.8, 0.8, 0.8), vmath.V3F(-rot.X, rot.Y, 0), terminal.Blue)
}

func (d *demo) hud(frameTime time.Duration) string {
	key := terminal.KeyName(d.lastKey)
	if key == "" {
		key = "-"
	}
	state := "run"
	if d.paused {
		state = "paused"
	}
	return fmt.Sprintf("frame %d  %s  work %s  key %s  [space] pause [f] fill [up/down] spin [q] quit",
		d.frames, state, frameTime.Round(time.Microsecond), key)
}
