package starfield

import (
	"github.com/gekko3d/starfield/fx/motion"
)

// Input holds what the window reports about the pointer and the drawable.
// MovePointer may be called from any goroutine; the size fields belong to
// the main loop.
type Input struct {
	Pointer motion.PointerCell

	WindowWidth  int
	WindowHeight int
	// PixelRatio is framebuffer pixels per window unit.
	PixelRatio float32
}

// MovePointer records a pointer position in window units together with the
// window size it was measured against.
func (in *Input) MovePointer(x, y float64, width, height int) {
	in.Pointer.Store(x, y, width, height)
}

// Resize updates the drawable size. Non-positive sizes are ignored so a
// minimised window keeps its last aspect.
func (in *Input) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	in.WindowWidth = width
	in.WindowHeight = height
}

type InputModule struct {
	WindowWidth  int
	WindowHeight int
	PixelRatio   float32
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	in := &Input{PixelRatio: mod.PixelRatio}
	if in.PixelRatio <= 0 {
		in.PixelRatio = 1
	}
	in.Resize(mod.WindowWidth, mod.WindowHeight)
	cmd.AddResources(in)
}
