package starfield

import (
	"fmt"

	"github.com/gekko3d/starfield/fx/field"
	"github.com/gekko3d/starfield/fx/layout"
	"github.com/google/uuid"
)

// EffectId names one effect instance in logs and GPU labels.
type EffectId = uuid.UUID

// buildField generates and checks a field for kind. The seed in cfg decides
// reproducibility.
func buildField(kind field.Kind, cfg field.Config) (*field.Field, error) {
	f, err := field.Generate(kind, cfg, field.NewSource(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if err := layout.Validate(f, layout.For(kind)); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return f, nil
}

// resolvePixelRatio prefers an explicit ratio, then the one the window
// reported, then 1.
func resolvePixelRatio(app *App, explicit float32) float32 {
	if explicit > 0 {
		return explicit
	}
	if in, ok := Resource[Input](app); ok && in.PixelRatio > 0 {
		return in.PixelRatio
	}
	return 1
}
