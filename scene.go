package starfield

import (
	"github.com/gekko3d/starfield/fx/camera"
	"github.com/gekko3d/starfield/fx/field"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef describes a whole run: the window, the camera and the effects.
// Decoding starts from DefaultScene, so a scene file only lists what it
// changes.
type SceneDef struct {
	Window  WindowDef    `json:"window" yaml:"window" toml:"window"`
	Camera  CameraDef    `json:"camera" yaml:"camera" toml:"camera"`
	Effects EffectsDef   `json:"effects" yaml:"effects" toml:"effects"`
	Galaxy  field.Config `json:"galaxy" yaml:"galaxy" toml:"galaxy"`
	Trail   field.Config `json:"trail" yaml:"trail" toml:"trail"`
	Log     LogDef       `json:"log" yaml:"log" toml:"log"`
}

type WindowDef struct {
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`
	Title  string `json:"title" yaml:"title" toml:"title"`
	// PixelRatio overrides the display's content scale when positive.
	PixelRatio float32 `json:"pixel_ratio" yaml:"pixel_ratio" toml:"pixel_ratio"`
}

// CameraDef mirrors camera.Camera in file-friendly types. Tilt is in radians.
type CameraDef struct {
	Position [3]float32 `json:"position" yaml:"position" toml:"position"`
	Fov      float32    `json:"fov" yaml:"fov" toml:"fov"`
	Near     float32    `json:"near" yaml:"near" toml:"near"`
	Far      float32    `json:"far" yaml:"far" toml:"far"`
	Tilt     float32    `json:"tilt" yaml:"tilt" toml:"tilt"`
}

// EffectsDef switches the two effects on or off.
type EffectsDef struct {
	Galaxy bool `json:"galaxy" yaml:"galaxy" toml:"galaxy"`
	Trail  bool `json:"trail" yaml:"trail" toml:"trail"`
}

type LogDef struct {
	Prefix string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Debug  bool   `json:"debug" yaml:"debug" toml:"debug"`
}

func DefaultScene() SceneDef {
	cam := camera.Default()
	return SceneDef{
		Window: WindowDef{
			Width:  1280,
			Height: 720,
			Title:  "starfield",
		},
		Camera: CameraDef{
			Position: cam.Position,
			Fov:      cam.Fov,
			Near:     cam.Near,
			Far:      cam.Far,
			Tilt:     cam.Tilt,
		},
		Effects: EffectsDef{Galaxy: true, Trail: true},
		Galaxy:  field.DefaultGalaxyConfig(),
		Trail:   field.DefaultTrailConfig(),
		Log:     LogDef{Prefix: "starfield"},
	}
}

// Build turns the definition into a camera sized for the window.
func (def CameraDef) Build(width, height int) camera.Camera {
	cam := camera.Camera{
		Position: mgl32.Vec3(def.Position),
		Fov:      def.Fov,
		Near:     def.Near,
		Far:      def.Far,
		Tilt:     def.Tilt,
		Aspect:   1,
	}
	cam.SetViewport(width, height)
	return cam
}

// Modules lists the modules that run this scene, in install order. Without
// a client the app runs headless: effects update but nothing is drawn.
func (def SceneDef) Modules(withClient bool) []Module {
	modules := []Module{
		LoggingModule{Prefix: def.Log.Prefix, Debug: def.Log.Debug},
		TimeModule{},
		InputModule{
			WindowWidth:  def.Window.Width,
			WindowHeight: def.Window.Height,
			PixelRatio:   def.Window.PixelRatio,
		},
	}
	if withClient {
		modules = append(modules, ClientModule{
			WindowWidth:  def.Window.Width,
			WindowHeight: def.Window.Height,
			WindowTitle:  def.Window.Title,
		})
	}
	modules = append(modules, CameraModule{
		Camera: def.Camera.Build(def.Window.Width, def.Window.Height),
	})
	if def.Effects.Galaxy {
		modules = append(modules, GalaxyModule{Config: def.Galaxy, PixelRatio: def.Window.PixelRatio})
	}
	if def.Effects.Trail {
		modules = append(modules, TrailModule{Config: def.Trail, PixelRatio: def.Window.PixelRatio})
	}
	if withClient {
		modules = append(modules, PointsRendererModule{})
	}
	return modules
}
