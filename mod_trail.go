package starfield

import (
	"fmt"

	"github.com/gekko3d/starfield/fx/field"
	"github.com/gekko3d/starfield/fx/motion"
	"github.com/google/uuid"
)

type TrailComponent struct {
	Id       EffectId
	Field    *field.Field
	Tracker  motion.PointerTracker
	Uniforms motion.PointUniforms
}

// TrailModule spawns one cursor trail. A zero Config means the stock trail.
type TrailModule struct {
	Config     field.Config
	PixelRatio float32
}

func (mod TrailModule) Install(app *App, cmd *Commands) {
	cfg := mod.Config
	if cfg == (field.Config{}) {
		cfg = field.DefaultTrailConfig()
	}
	if _, err := SpawnTrail(cmd, cfg, resolvePixelRatio(app, mod.PixelRatio)); err != nil {
		panic(err)
	}
	app.UseSystem(
		System(trailChaseSystem).
			InStage(Update),
	)
}

// SpawnTrail generates a trail field, all points at the origin, and queues
// its entity.
func SpawnTrail(cmd *Commands, cfg field.Config, pixelRatio float32) (EntityId, error) {
	f, err := buildField(field.KindTrail, cfg)
	if err != nil {
		return 0, fmt.Errorf("spawn trail: %w", err)
	}
	tr := &TrailComponent{
		Id:    uuid.New(),
		Field: f,
		Uniforms: motion.PointUniforms{
			Size: cfg.SizeUniform(pixelRatio),
		},
	}
	cmd.Logger().Infof("trail %s: %d points", tr.Id, f.Count)
	return cmd.AddEntity(tr), nil
}

// trailChaseSystem moves every trail one step towards the latest pointer.
// The chase runs every frame, with or without new pointer input, so the
// tail keeps settling after the pointer stops.
func trailChaseSystem(in *Input, cmd *Commands) {
	cam := activeCamera(cmd)
	MakeQuery1[TrailComponent](cmd).Map(func(eid EntityId, tr *TrailComponent) bool {
		target, err := tr.Tracker.Update(&in.Pointer, cam)
		if err != nil {
			cmd.Logger().Debugf("trail %s: keeping last pointer: %v", tr.Id, err)
		}
		motion.Chase(tr.Field.Positions, target)
		tr.Field.MarkDirty(field.AttrPosition)
		return true
	})
}
