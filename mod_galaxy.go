package starfield

import (
	"fmt"

	"github.com/gekko3d/starfield/fx/field"
	"github.com/gekko3d/starfield/fx/motion"
	"github.com/google/uuid"
)

type GalaxyComponent struct {
	Id       EffectId
	Field    *field.Field
	Uniforms motion.PointUniforms
}

// GalaxyModule spawns one galaxy. A zero Config means the stock galaxy.
type GalaxyModule struct {
	Config     field.Config
	PixelRatio float32
}

func (mod GalaxyModule) Install(app *App, cmd *Commands) {
	cfg := mod.Config
	if cfg == (field.Config{}) {
		cfg = field.DefaultGalaxyConfig()
	}
	if _, err := SpawnGalaxy(cmd, cfg, resolvePixelRatio(app, mod.PixelRatio)); err != nil {
		panic(err)
	}
	app.UseSystem(
		System(galaxySpinSystem).
			InStage(Update),
	)
}

// SpawnGalaxy generates a galaxy field and queues its entity.
func SpawnGalaxy(cmd *Commands, cfg field.Config, pixelRatio float32) (EntityId, error) {
	f, err := buildField(field.KindGalaxy, cfg)
	if err != nil {
		return 0, fmt.Errorf("spawn galaxy: %w", err)
	}
	g := &GalaxyComponent{
		Id:    uuid.New(),
		Field: f,
		Uniforms: motion.PointUniforms{
			Size: cfg.SizeUniform(pixelRatio),
			Spin: cfg.Spin,
		},
	}
	cmd.Logger().Infof("galaxy %s: %d points, %d branches", g.Id, f.Count, cfg.Branches)
	return cmd.AddEntity(g), nil
}

// galaxySpinSystem only advances uTime; the winding itself runs per vertex
// on the GPU, so the galaxy's attribute buffers never change after spawn.
func galaxySpinSystem(t *Time, cmd *Commands) {
	elapsed := t.ElapsedSeconds()
	MakeQuery1[GalaxyComponent](cmd).Map(func(eid EntityId, g *GalaxyComponent) bool {
		g.Uniforms.SetTime(elapsed)
		return true
	})
}
