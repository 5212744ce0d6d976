package starfield

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ClientModule opens the window and the GPU device. Install it before the
// effect modules so they pick up the display's pixel ratio. The calling
// goroutine must be locked to the main OS thread.
type ClientModule struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

func (mod ClientModule) Install(app *App, cmd *Commands) {
	windowState := createWindowState(mod.WindowWidth, mod.WindowHeight, mod.WindowTitle)
	gpuState := createGpuState(windowState)

	in, ok := Resource[Input](app)
	if !ok {
		in = &Input{}
		cmd.AddResources(in)
	}
	in.Resize(windowState.windowGlfw.GetSize())
	in.PixelRatio = windowState.pixelRatio()

	windowState.windowGlfw.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		width, height := w.GetSize()
		in.MovePointer(xpos, ypos, width, height)
	})
	windowState.windowGlfw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	cmd.AddResources(windowState, gpuState)
	cmd.Logger().Infof("window %dx%d, pixel ratio %.2f, surface %v",
		in.WindowWidth, in.WindowHeight, in.PixelRatio, gpuState.surfaceConfig.Format)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(windowCloseSystem).
			InStage(Finale),
	)
}

func windowEventsSystem(state *WindowState, gpuState *GpuState, in *Input, cmd *Commands) {
	glfw.PollEvents()
	if state.windowGlfw.ShouldClose() {
		cmd.Exit()
		return
	}

	state.WindowWidth, state.WindowHeight = state.windowGlfw.GetSize()
	in.Resize(state.WindowWidth, state.WindowHeight)
	in.PixelRatio = state.pixelRatio()

	if gpuState.resize(state.windowGlfw.GetFramebufferSize()) {
		cmd.Logger().Debugf("surface resized to %dx%d", gpuState.surfaceConfig.Width, gpuState.surfaceConfig.Height)
	}
}

func windowCloseSystem(state *WindowState, gpuState *GpuState, cmd *Commands) {
	if !cmd.Exiting() {
		return
	}
	gpuState.release()
	state.destroy()
}
