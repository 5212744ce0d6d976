// Package layout is the contract between the field buffers and the shaders:
// which attribute lives at which location, and how the uniform block is packed.
package layout

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gekko3d/starfield/fx/field"
	"github.com/go-gl/mathgl/mgl32"
)

const floatSize = 4

// AttributeSpec binds one field attribute to a shader location. Every
// attribute has its own instance-stepped vertex buffer.
type AttributeSpec struct {
	Attr     field.Attribute
	Location uint32
}

func (s AttributeSpec) Name() string {
	return s.Attr.Name()
}

func (s AttributeSpec) Components() int {
	return s.Attr.Components()
}

// Stride is the byte size of one point's worth of the attribute.
func (s AttributeSpec) Stride() uint64 {
	return uint64(s.Components() * floatSize)
}

var (
	galaxyAttributes = []AttributeSpec{
		{Attr: field.AttrPosition, Location: 0},
		{Attr: field.AttrColor, Location: 1},
		{Attr: field.AttrScale, Location: 2},
		{Attr: field.AttrRandomness, Location: 3},
	}
	trailAttributes = galaxyAttributes[:3]
)

// GalaxyAttributes lists position, color, aScale and aRandomness.
func GalaxyAttributes() []AttributeSpec {
	return append([]AttributeSpec(nil), galaxyAttributes...)
}

// TrailAttributes lists position, color and aScale.
func TrailAttributes() []AttributeSpec {
	return append([]AttributeSpec(nil), trailAttributes...)
}

// For returns the attributes consumed by the shader of kind.
func For(kind field.Kind) []AttributeSpec {
	if kind == field.KindTrail {
		return TrailAttributes()
	}
	return GalaxyAttributes()
}

// Validate checks that f carries every attribute in specs with Count points'
// worth of data.
func Validate(f *field.Field, specs []AttributeSpec) error {
	for _, s := range specs {
		data := f.Data(s.Attr)
		if data == nil {
			return fmt.Errorf("layout: %s field lacks attribute %s", f.Kind, s.Name())
		}
		if want := f.Count * s.Components(); len(data) != want {
			return fmt.Errorf("layout: %s attribute %s holds %d floats, want %d", f.Kind, s.Name(), len(data), want)
		}
	}
	return nil
}

// PackFloats encodes src little-endian into dst, growing it only if needed.
func PackFloats(dst []byte, src []float32) []byte {
	n := len(src) * floatSize
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*floatSize:], math.Float32bits(v))
	}
	return dst
}

// Uniform block offsets, matching struct Uniforms in the WGSL sources.
const (
	OffsetView       = 0
	OffsetProjection = 64
	OffsetViewport   = 128
	OffsetSize       = 136
	OffsetTime       = 140
	OffsetSpin       = 144
	UniformsSize     = 160
)

// Uniforms is the per-effect uniform block.
type Uniforms struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   [2]float32
	Size       float32 // uSize
	Time       float32 // uTime, galaxy only
	Spin       float32
}

// Bytes packs the block in WGSL uniform layout.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformsSize)
	putFloats(buf[OffsetView:], u.View[:])
	putFloats(buf[OffsetProjection:], u.Projection[:])
	putFloats(buf[OffsetViewport:], u.Viewport[:])
	putFloats(buf[OffsetSize:], []float32{u.Size, u.Time, u.Spin})
	return buf
}

func putFloats(dst []byte, src []float32) {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*floatSize:], math.Float32bits(v))
	}
}
