// Package field generates the per-point attribute arrays of the galaxy and
// cursor trail effects.
//
// A Field is allocated exactly once. Updaters may rewrite values in place
// (the trail rewrites positions every frame) but never resize the arrays.
package field

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute names one per-point array of a Field.
type Attribute uint8

const (
	AttrPosition Attribute = 1 << iota
	AttrColor
	AttrScale
	AttrRandomness
)

// Name is the attribute name used by the shader contract.
func (a Attribute) Name() string {
	switch a {
	case AttrPosition:
		return "position"
	case AttrColor:
		return "color"
	case AttrScale:
		return "aScale"
	case AttrRandomness:
		return "aRandomness"
	default:
		return fmt.Sprintf("attribute(%d)", uint8(a))
	}
}

// Components is the number of floats per point for the attribute.
func (a Attribute) Components() int {
	if a == AttrScale {
		return 1
	}
	return 3
}

// Source is the random stream a generator draws from. *rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// NewSource returns a random stream for seed; seed 0 seeds from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Field is the CPU copy of one effect's per-point attributes. Every array
// holds Count points: three floats each for positions, colors and
// randomness, one for scales. Dirty flags tell the renderer which arrays
// changed since their last upload.
type Field struct {
	Kind   Kind
	Config Config
	Count  int

	Positions  []float32
	Colors     []float32
	Scales     []float32
	Randomness []float32 // galaxy only

	// Radii keeps the radius drawn for each point; colors derive from it.
	Radii []float32

	dirty Attribute
}

func newField(kind Kind, cfg Config) *Field {
	f := &Field{
		Kind:      kind,
		Config:    cfg,
		Count:     cfg.Count,
		Positions: make([]float32, cfg.Count*3),
		Colors:    make([]float32, cfg.Count*3),
		Scales:    make([]float32, cfg.Count),
		Radii:     make([]float32, cfg.Count),
	}
	if kind == KindGalaxy {
		f.Randomness = make([]float32, cfg.Count*3)
	}
	// Everything needs its first upload.
	f.dirty = f.Attributes()
	return f
}

// Attributes is the set of arrays this field carries.
func (f *Field) Attributes() Attribute {
	attrs := AttrPosition | AttrColor | AttrScale
	if f.Randomness != nil {
		attrs |= AttrRandomness
	}
	return attrs
}

// Has reports whether the field carries attr.
func (f *Field) Has(attr Attribute) bool {
	return f.Attributes()&attr == attr
}

// Data returns the backing array of attr, or nil if the field does not carry it.
func (f *Field) Data(attr Attribute) []float32 {
	switch attr {
	case AttrPosition:
		return f.Positions
	case AttrColor:
		return f.Colors
	case AttrScale:
		return f.Scales
	case AttrRandomness:
		return f.Randomness
	}
	return nil
}

// MarkDirty flags attr for re-upload before the next draw.
func (f *Field) MarkDirty(attr Attribute) {
	f.dirty |= attr
}

// ClearDirty is called by the renderer once attr has been uploaded.
func (f *Field) ClearDirty(attr Attribute) {
	f.dirty &^= attr
}

func (f *Field) IsDirty(attr Attribute) bool {
	return f.dirty&attr != 0
}

// DirtySet returns every attribute awaiting upload.
func (f *Field) DirtySet() Attribute {
	return f.dirty
}

// Position returns point i as a vector.
func (f *Field) Position(i int) mgl32.Vec3 {
	i3 := i * 3
	return mgl32.Vec3{f.Positions[i3], f.Positions[i3+1], f.Positions[i3+2]}
}

// ColorAt returns the color of point i.
func (f *Field) ColorAt(i int) Color {
	i3 := i * 3
	return Color{f.Colors[i3], f.Colors[i3+1], f.Colors[i3+2]}
}

func (f *Field) setColor(i int, radius float32) {
	c := Lerp(f.Config.InsideColor, f.Config.OutsideColor, radius/f.Config.Radius)
	i3 := i * 3
	f.Colors[i3] = c.R
	f.Colors[i3+1] = c.G
	f.Colors[i3+2] = c.B
	f.Radii[i] = radius
}
