package field

import (
	"math"

	"github.com/chewxy/math32"
)

// GenerateGalaxy lays out cfg.Count points on cfg.Branches spiral arms in the
// XZ plane. Spin is not baked in; the shader winds the arms from uTime.
// A nil rng draws from NewSource(cfg.Seed).
func GenerateGalaxy(cfg Config, rng Source) (*Field, error) {
	if err := cfg.Validate(KindGalaxy); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSource(cfg.Seed)
	}

	f := newField(KindGalaxy, cfg)
	for i := 0; i < cfg.Count; i++ {
		i3 := i * 3

		radius := rng.Float32() * cfg.Radius
		branchAngle := float32(i%cfg.Branches) / float32(cfg.Branches) * 2 * math.Pi

		f.Randomness[i3] = randomOffset(rng, cfg, radius)
		f.Randomness[i3+1] = randomOffset(rng, cfg, radius)
		f.Randomness[i3+2] = randomOffset(rng, cfg, radius) + 1

		f.Positions[i3] = math32.Cos(branchAngle) * radius
		f.Positions[i3+1] = 0
		f.Positions[i3+2] = math32.Sin(branchAngle) * radius

		f.setColor(i, radius)
		f.Scales[i] = rng.Float32()
	}
	return f, nil
}

// randomOffset concentrates offsets near zero through the power curve while
// still allowing the occasional far excursion.
func randomOffset(rng Source, cfg Config, radius float32) float32 {
	v := math32.Pow(rng.Float32(), cfg.RandomnessPower)
	sign := float32(1)
	if rng.Float32() >= 0.5 {
		sign = -1
	}
	return v * sign * cfg.Randomness * radius
}
