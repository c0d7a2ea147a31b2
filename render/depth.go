package render

import (
	"github.com/pkg/errors"
)

// FarDepth is the reset value, NDC depth of the far plane
const FarDepth = 1.0

// DepthBuffer keeps the nearest depth drawn at each cell, smaller is nearer
type DepthBuffer struct {
	depth  []float64
	width  int
	height int
}

// NewDepthBuffer allocates a buffer reset to FarDepth
func NewDepthBuffer(width, height int) (*DepthBuffer, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, errors.Wrapf(ErrInvalidSize, "depth %dx%d", width, height)
	}
	d := &DepthBuffer{
		depth:  make([]float64, width*height),
		width:  width,
		height: height,
	}
	d.Reset()
	return d, nil
}

// Reset sets every entry to FarDepth using exponential copy
func (d *DepthBuffer) Reset() {
	if len(d.depth) == 0 {
		return
	}
	d.depth[0] = FarDepth
	for i := 1; i < len(d.depth); i *= 2 {
		copy(d.depth[i:], d.depth[:i])
	}
}

// TestAndSet records z at (x, y) and returns true when z is strictly nearer than the stored value
func (d *DepthBuffer) TestAndSet(x, y int, z float64) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	idx := y*d.width + x
	if z < d.depth[idx] {
		d.depth[idx] = z
		return true
	}
	return false
}

// At returns the stored depth, FarDepth outside the buffer
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return FarDepth
	}
	return d.depth[y*d.width+x]
}
