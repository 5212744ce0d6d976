package motion

import (
	"errors"
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PointerSample is one raw pointer reading in device pixels.
type PointerSample struct {
	X, Y          float64
	Width, Height int
	Seq           uint64
}

// PointerCell holds the most recent pointer sample. The input callback is the
// only writer and the frame updater the only reader; older samples are simply
// overwritten.
type PointerCell struct {
	latest atomic.Pointer[PointerSample]
	seq    atomic.Uint64
}

// Store replaces the current sample.
func (c *PointerCell) Store(x, y float64, width, height int) {
	c.latest.Store(&PointerSample{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Seq:    c.seq.Add(1),
	})
}

// Load returns the latest sample, or false if the pointer never moved.
func (c *PointerCell) Load() (PointerSample, bool) {
	s := c.latest.Load()
	if s == nil {
		return PointerSample{}, false
	}
	return *s, true
}

// Projector maps a device-pixel sample to world space.
type Projector interface {
	ProjectPointer(x, y float64, width, height int) (mgl32.Vec3, error)
}

// ErrNonFinite is reported when a projection produced NaN or Inf.
var ErrNonFinite = errors.New("motion: projected pointer is not finite")

// PointerTracker keeps the last good world-space pointer position so a
// degenerate projection never reaches the trail buffer.
type PointerTracker struct {
	last    mgl32.Vec3
	lastSeq uint64
	rejects int
}

// Current is the last accepted world-space position.
func (t *PointerTracker) Current() mgl32.Vec3 { return t.last }

// Rejected counts projections discarded since creation.
func (t *PointerTracker) Rejected() int { return t.rejects }

// Update projects the latest sample from cell if it is new. On failure the
// previous position is kept and the error returned.
func (t *PointerTracker) Update(cell *PointerCell, proj Projector) (mgl32.Vec3, error) {
	s, ok := cell.Load()
	if !ok || s.Seq == t.lastSeq {
		return t.last, nil
	}
	t.lastSeq = s.Seq

	p, err := proj.ProjectPointer(s.X, s.Y, s.Width, s.Height)
	if err == nil && !finite(p) {
		err = ErrNonFinite
	}
	if err != nil {
		t.rejects++
		return t.last, err
	}
	t.last = p
	return p, nil
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
