package motion

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SpinRate scales the angular offset the galaxy shader adds per second.
const SpinRate float32 = 0.2

// PointUniforms is the per-effect CPU state behind the uniform block. Every
// effect sets Size; only the galaxy advances Time and carries a Spin, since
// its winding happens in the vertex shader and the CPU only supplies the clock.
type PointUniforms struct {
	Size float32 // uSize, base point size times device pixel ratio
	Time float32 // uTime, elapsed seconds
	Spin float32
}

// SetTime stores t as uTime. Calling it again with the same t changes nothing.
func (u *PointUniforms) SetTime(t float32) {
	u.Time = t
}

// SpinPoint reproduces the vertex shader: wind the base position around the
// Y axis by an angle inversely proportional to its distance from the axis,
// then add the fixed randomness offset. Points on the axis only get the offset.
func SpinPoint(pos, randomness mgl32.Vec3, t, spin float32) mgl32.Vec3 {
	x, z := pos.X(), pos.Z()
	d := math32.Sqrt(x*x + z*z)
	if d > 0 {
		angle := math32.Atan2(x, z)
		angle += (1 / d) * t * SpinRate * spin
		x = math32.Cos(angle) * d
		z = math32.Sin(angle) * d
	}
	return mgl32.Vec3{x, pos.Y(), z}.Add(randomness)
}

// SpinField writes the wound positions of every point into dst, which must be
// as long as positions. It is the CPU reference for the galaxy shader's
// winding; rendering never calls it, the vertex stage does the work.
func SpinField(dst, positions, randomness []float32, t, spin float32) {
	if len(dst) != len(positions) || len(randomness) != len(positions) {
		panic(fmt.Sprintf("motion: spin buffers disagree: dst=%d positions=%d randomness=%d",
			len(dst), len(positions), len(randomness)))
	}
	for i3 := 0; i3+2 < len(positions); i3 += 3 {
		p := SpinPoint(
			mgl32.Vec3{positions[i3], positions[i3+1], positions[i3+2]},
			mgl32.Vec3{randomness[i3], randomness[i3+1], randomness[i3+2]},
			t, spin,
		)
		dst[i3], dst[i3+1], dst[i3+2] = p[0], p[1], p[2]
	}
}
