package starfield

import (
	"github.com/gekko3d/starfield/fx/camera"
)

type CameraComponent struct {
	Camera camera.Camera
	Active bool
}

// CameraModule spawns the scene camera and keeps its aspect ratio in step
// with the window.
type CameraModule struct {
	Camera camera.Camera
}

func (mod CameraModule) Install(app *App, cmd *Commands) {
	cam := mod.Camera
	if cam.Fov == 0 {
		cam = camera.Default()
	}
	cmd.AddEntity(&CameraComponent{Camera: cam, Active: true})
	app.UseSystem(
		System(cameraViewportSystem).
			InStage(PreUpdate),
	)
}

func cameraViewportSystem(in *Input, cmd *Commands) {
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, c *CameraComponent) bool {
		c.Camera.SetViewport(in.WindowWidth, in.WindowHeight)
		return true
	})
}

// activeCamera returns the first active camera, or the default one when the
// world has none.
func activeCamera(cmd *Commands) camera.Camera {
	cam, found := camera.Default(), false
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, c *CameraComponent) bool {
		if !c.Active {
			return true
		}
		cam, found = c.Camera, true
		return false
	})
	if !found {
		cmd.Logger().Debugf("no active camera, using default")
	}
	return cam
}
