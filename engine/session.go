package engine

import (
	"log"
	"slices"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tread/render"
	"github.com/lixenwraith/tread/terminal"
	"github.com/lixenwraith/tread/vmath"
)

// sessionOpen allows one open session per process
var sessionOpen atomic.Bool

// Session owns the backend, both frame grids and the optional depth buffer for one
// open window. It is not safe for concurrent use
type Session struct {
	backend  terminal.Backend
	fb       *render.FrameBuffer
	raster   *render.Rasterizer // nil unless 3D is enabled
	camera   render.Camera
	pacer    *Pacer
	quitKeys []terminal.Key

	// Size captured at open, any later difference is fatal
	width  int
	height int

	lastKey  terminal.Key
	open     bool
	warned3D bool
}

// Open initializes b and allocates buffers sized to the terminal. The requested
// width and height are advisory, a smaller terminal only logs a warning
func Open(b terminal.Backend, cfg Config, width, height int, title string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	quitKeys, _ := cfg.quitKeys()
	clearColor, _ := cfg.clearColor()

	if !sessionOpen.CompareAndSwap(false, true) {
		return nil, ErrAlreadyOpen
	}

	s, err := open(b, cfg, width, height, title)
	if err != nil {
		sessionOpen.Store(false)
		return nil, err
	}
	s.quitKeys = quitKeys
	s.fb.Clear(clearColor)
	return s, nil
}

func open(b terminal.Backend, cfg Config, width, height int, title string) (*Session, error) {
	if err := b.Init(); err != nil {
		return nil, errors.Wrap(err, "backend init")
	}

	cols, rows := b.Size()
	if cols <= 0 || rows <= 0 {
		b.Fini()
		return nil, ErrNoTerminalSize
	}
	if width > cols || height > rows {
		log.Printf("engine: requested %dx%d, terminal is %dx%d", width, height, cols, rows)
	}

	fb, err := render.NewFrameBuffer(cols, rows)
	if err != nil {
		b.Fini()
		return nil, errors.Wrap(err, "frame buffer")
	}

	s := &Session{
		backend: b,
		fb:      fb,
		camera:  cfg.camera(),
		pacer:   NewPacer(b.Now, nil),
		width:   cols,
		height:  rows,
		open:    true,
	}
	s.pacer.SetTargetFPS(cfg.TargetFPS)

	if cfg.Enable3D {
		if s.raster, err = render.NewRasterizer(fb); err != nil {
			b.Fini()
			return nil, errors.Wrap(err, "depth buffer")
		}
	}

	b.SetCursorVisible(false)
	b.SetTitle(title)
	b.Clear(terminal.Black)
	if err := b.Flush(); err != nil {
		log.Printf("engine: initial flush: %v", err)
	}
	return s, nil
}

// Close restores the terminal and releases the process-wide open slot
func (s *Session) Close() error {
	if !s.open {
		return ErrNotOpen
	}
	s.open = false
	defer sessionOpen.Store(false)

	b := s.backend
	b.ResetAttributes()
	b.SetCursorVisible(true)
	b.MoveCursor(0, 0)
	b.Clear(terminal.Black)
	b.ResetAttributes()
	err := b.Flush()
	b.Fini()
	return errors.Wrap(err, "close flush")
}

// ShouldClose is true when the last key read is a quit key
func (s *Session) ShouldClose() bool {
	return s.lastKey != terminal.KeyNone && slices.Contains(s.quitKeys, s.lastKey)
}

// SetTargetFPS changes frame pacing, 0 disables it
func (s *Session) SetTargetFPS(fps int) {
	s.pacer.SetTargetFPS(fps)
}

// BeginFrame checks for a resize, samples one key and re-primes the frame with the
// current background. A *ResizeError is fatal, the terminal has already been restored
// to a visible state when it is returned
func (s *Session) BeginFrame() error {
	if !s.open {
		return ErrNotOpen
	}
	if cols, rows := s.backend.Size(); cols != s.width || rows != s.height {
		s.restoreVisible()
		return &ResizeError{FromWidth: s.width, FromHeight: s.height, ToWidth: cols, ToHeight: rows}
	}

	s.pacer.StartFrame()
	if k := s.backend.ReadKey(); k != terminal.KeyNone {
		s.lastKey = k
	}
	s.fb.Reset()
	if s.raster != nil {
		s.raster.ResetDepth()
	}
	return nil
}

// EndFrame writes changed cells to the backend and sleeps out the frame period
func (s *Session) EndFrame() error {
	if !s.open {
		return ErrNotOpen
	}
	s.fb.Flush(s.backend)
	err := s.backend.Flush()
	s.pacer.Wait()
	return errors.Wrap(err, "frame flush")
}

func (s *Session) restoreVisible() {
	b := s.backend
	b.ResetAttributes()
	b.SetCursorVisible(true)
	b.Clear(terminal.Black)
	b.ResetAttributes()
	if err := b.Flush(); err != nil {
		log.Printf("engine: restore flush: %v", err)
	}
}

// Query

func (s *Session) ScreenWidth() int  { return s.width }
func (s *Session) ScreenHeight() int { return s.height }

// FrameTime returns the time spent in the current frame so far
func (s *Session) FrameTime() time.Duration {
	return s.pacer.Elapsed()
}

// Input

// KeyDown reports whether k is the last key read. Identical to KeyPressed
func (s *Session) KeyDown(k terminal.Key) bool {
	return k != terminal.KeyNone && s.lastKey == k
}

// KeyPressed reports whether k is the last key read
func (s *Session) KeyPressed(k terminal.Key) bool {
	return s.KeyDown(k)
}

// TakeKeyPressed returns the last key read and clears it
func (s *Session) TakeKeyPressed() terminal.Key {
	k := s.lastKey
	s.lastKey = terminal.KeyNone
	return k
}

// 2D drawing

// Clear fills the frame with color and makes it the background for later frames
func (s *Session) Clear(color terminal.Color) {
	if s.open {
		s.fb.Clear(color)
	}
}

// Background returns the color Blank resolves to
func (s *Session) Background() terminal.Color {
	return s.fb.Background()
}

// Invalidate forces the next EndFrame to redraw every cell
func (s *Session) Invalidate() {
	if s.open {
		s.fb.Invalidate()
	}
}

func (s *Session) DrawPixel(x, y int, color terminal.Color) {
	if s.open {
		s.fb.DrawPixel(x, y, color)
	}
}

func (s *Session) DrawText(text string, x, y int, fg, bg terminal.Color) {
	if s.open {
		s.fb.DrawText(text, x, y, fg, bg)
	}
}

func (s *Session) DrawRectangle(x, y, w, h int, fg, bg terminal.Color) {
	if s.open {
		s.fb.DrawRectangle(x, y, w, h, fg, bg)
	}
}

func (s *Session) DrawRectangleLines(x, y, w, h int, fg, bg terminal.Color) {
	if s.open {
		s.fb.DrawRectangleLines(x, y, w, h, fg, bg)
	}
}

// 3D drawing, every call is a no-op unless the session was opened with Enable3D

// rasterizer returns nil and warns once when 3D is unavailable
func (s *Session) rasterizer() *render.Rasterizer {
	if !s.open {
		return nil
	}
	if s.raster == nil && !s.warned3D {
		s.warned3D = true
		log.Printf("engine: 3D draw call ignored, session opened without enable_3d")
	}
	return s.raster
}

// Camera returns the camera used by the cube primitives and MVP
func (s *Session) Camera() render.Camera {
	return s.camera
}

// SetCamera replaces the camera for subsequent 3D calls
func (s *Session) SetCamera(c render.Camera) {
	s.camera = c
}

// MVP composes model with the session camera for the current screen size
func (s *Session) MVP(model vmath.Mat4) vmath.Mat4 {
	return s.camera.MVP(model, s.width, s.height)
}

// ResetDepth clears the depth buffer mid-frame, BeginFrame already does this per frame
func (s *Session) ResetDepth() {
	if r := s.rasterizer(); r != nil {
		r.ResetDepth()
	}
}

func (s *Session) DrawTriangle3DWireframe(v1, v2, v3 vmath.Vec3F, mvp vmath.Mat4, color terminal.Color) {
	if r := s.rasterizer(); r != nil {
		r.DrawTriangleWireframe(v1, v2, v3, mvp, color)
	}
}

func (s *Session) DrawTriangle3DFilled(v1, v2, v3 vmath.Vec3F, mvp vmath.Mat4, color terminal.Color) {
	if r := s.rasterizer(); r != nil {
		r.DrawTriangleFilled(v1, v2, v3, mvp, color)
	}
}

func (s *Session) DrawMeshWireframe(m render.Mesh, mvp vmath.Mat4, color terminal.Color) {
	if r := s.rasterizer(); r != nil {
		r.DrawMeshWireframe(m, mvp, color)
	}
}

func (s *Session) DrawMeshFilled(m render.Mesh, mvp vmath.Mat4, color terminal.Color) {
	if r := s.rasterizer(); r != nil {
		r.DrawMeshFilled(m, mvp, color)
	}
}

// DrawCubeWireframe draws a unit cube scaled by size, rotated by rotation (radians per
// axis) and moved to position
func (s *Session) DrawCubeWireframe(position, size, rotation vmath.Vec3F, color terminal.Color) {
	if r := s.rasterizer(); r != nil {
		r.DrawCubeWireframe(s.camera, position, size, rotation, color)
	}
}

func (s *Session) DrawCubeFilled(position, size, rotation vmath.Vec3F, color terminal.Color) {
	if r := s.rasterizer(); r != nil {
		r.DrawCubeFilled(s.camera, position, size, rotation, color)
	}
}
