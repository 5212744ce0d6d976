package field

// GenerateTrail allocates a trail whose points all start at the origin. The
// radius drawn per point only picks its color; the chase updater places it.
func GenerateTrail(cfg Config, rng Source) (*Field, error) {
	if err := cfg.Validate(KindTrail); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSource(cfg.Seed)
	}

	f := newField(KindTrail, cfg)
	for i := 0; i < cfg.Count; i++ {
		radius := rng.Float32() * cfg.Radius
		f.setColor(i, radius)
		f.Scales[i] = rng.Float32()
	}
	return f, nil
}

// Generate dispatches on kind.
func Generate(kind Kind, cfg Config, rng Source) (*Field, error) {
	if kind == KindTrail {
		return GenerateTrail(cfg, rng)
	}
	return GenerateGalaxy(cfg, rng)
}
