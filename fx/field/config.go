package field

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid field config")

// Kind selects which generator a Config is meant for.
type Kind int

const (
	KindGalaxy Kind = iota
	KindTrail
)

func (k Kind) String() string {
	switch k {
	case KindGalaxy:
		return "galaxy"
	case KindTrail:
		return "trail"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Config holds the immutable generation parameters of one field.
type Config struct {
	Count           int     `json:"count" yaml:"count" toml:"count"`
	Radius          float32 `json:"radius" yaml:"radius" toml:"radius"`
	Branches        int     `json:"branches" yaml:"branches" toml:"branches"`
	Spin            float32 `json:"spin" yaml:"spin" toml:"spin"`
	Randomness      float32 `json:"randomness" yaml:"randomness" toml:"randomness"`
	RandomnessPower float32 `json:"randomness_power" yaml:"randomness_power" toml:"randomness_power"`
	InsideColor     Color   `json:"inside_color" yaml:"inside_color" toml:"inside_color"`
	OutsideColor    Color   `json:"outside_color" yaml:"outside_color" toml:"outside_color"`
	PointSize       float32 `json:"point_size" yaml:"point_size" toml:"point_size"`

	// Seed makes a field reproducible. Zero means seed from the clock.
	Seed int64 `json:"seed" yaml:"seed" toml:"seed"`
}

var (
	defaultInside  = MustParseColor("#ff6030")
	defaultOutside = MustParseColor("#1b3984")
)

// DefaultGalaxyConfig returns the parameters of the stock galaxy.
func DefaultGalaxyConfig() Config {
	return Config{
		Count:           50000,
		Radius:          5,
		Branches:        3,
		Spin:            1,
		Randomness:      0.2,
		RandomnessPower: 3,
		InsideColor:     defaultInside,
		OutsideColor:    defaultOutside,
		PointSize:       30,
	}
}

// DefaultTrailConfig returns the parameters of the stock cursor trail.
func DefaultTrailConfig() Config {
	return Config{
		Count:        300,
		Radius:       5,
		InsideColor:  defaultInside,
		OutsideColor: defaultOutside,
		PointSize:    30,
	}
}

// Validate reports the first parameter that cannot produce a field of the given kind.
func (c Config) Validate(kind Kind) error {
	for _, p := range []struct {
		name string
		v    float32
	}{
		{"radius", c.Radius},
		{"point size", c.PointSize},
		{"spin", c.Spin},
		{"randomness", c.Randomness},
		{"randomness power", c.RandomnessPower},
	} {
		if math32.IsNaN(p.v) || math32.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s %s must be finite, got %v", ErrInvalidConfig, kind, p.name, p.v)
		}
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: %s count must be positive, got %d", ErrInvalidConfig, kind, c.Count)
	}
	if !(c.Radius > 0) {
		return fmt.Errorf("%w: %s radius must be positive, got %v", ErrInvalidConfig, kind, c.Radius)
	}
	if !(c.PointSize > 0) {
		return fmt.Errorf("%w: %s point size must be positive, got %v", ErrInvalidConfig, kind, c.PointSize)
	}
	if kind == KindGalaxy {
		if c.Branches <= 0 {
			return fmt.Errorf("%w: galaxy needs at least one branch, got %d", ErrInvalidConfig, c.Branches)
		}
		if c.Randomness < 0 {
			return fmt.Errorf("%w: galaxy randomness must not be negative, got %v", ErrInvalidConfig, c.Randomness)
		}
		if c.RandomnessPower < 0 {
			return fmt.Errorf("%w: galaxy randomness power must not be negative, got %v", ErrInvalidConfig, c.RandomnessPower)
		}
	}
	return nil
}

// SizeUniform is the uSize value for a display with the given device pixel ratio.
func (c Config) SizeUniform(pixelRatio float32) float32 {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return c.PointSize * pixelRatio
}
