package motion

import (
	"fmt"
	"math"
	"testing"

	"github.com/gekko3d/starfield/fx/shaders"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPointUniforms_SetTimeIdempotent(t *testing.T) {
	u := PointUniforms{Size: 60}
	u.SetTime(1.25)
	first := u
	u.SetTime(1.25)
	assert.Equal(t, first, u)
	assert.Equal(t, float32(1.25), u.Time)
	assert.Equal(t, float32(60), u.Size)
}

func TestSpinPoint_PreservesDistance(t *testing.T) {
	pos := mgl32.Vec3{3, 0, -1}
	d := float32(math.Sqrt(10))
	for _, tm := range []float32{0, 0.5, 10, 123} {
		p := SpinPoint(pos, mgl32.Vec3{}, tm, 1)
		assert.InDelta(t, d, mgl32.Vec2{p.X(), p.Z()}.Len(), 1e-4)
		assert.Equal(t, float32(0), p.Y())
	}
}

func TestSpinPoint_InnerPointsTurnFaster(t *testing.T) {
	// atan2(0, d) = 0, so the angle after one second is just the offset.
	near := SpinPoint(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, 1, 1)
	far := SpinPoint(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{}, 1, 1)

	nearAngle := math.Atan2(float64(near.Z()), float64(near.X()))
	farAngle := math.Atan2(float64(far.Z()), float64(far.X()))

	assert.InDelta(t, 0.2, nearAngle, 1e-5)
	assert.InDelta(t, 0.05, farAngle, 1e-5)
}

func TestSpinPoint_SpinCoefficientScales(t *testing.T) {
	p := SpinPoint(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{}, 1, 3)
	angle := math.Atan2(float64(p.Z()), float64(p.X()))
	assert.InDelta(t, 0.3, angle, 1e-5)
}

func TestSpinPoint_AddsRandomness(t *testing.T) {
	onAxis := SpinPoint(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 2, 3}, 7, 1)
	assert.Equal(t, mgl32.Vec3{1, 7, 3}, onAxis)
}

func TestSpinField(t *testing.T) {
	pos := []float32{1, 0, 0, 0, 0, 2}
	rnd := []float32{0.1, 0.2, 1.3, 0, 0, 1}
	dst := make([]float32, len(pos))

	SpinField(dst, pos, rnd, 2, 1)

	for i := 0; i < 2; i++ {
		want := SpinPoint(
			mgl32.Vec3{pos[i*3], pos[i*3+1], pos[i*3+2]},
			mgl32.Vec3{rnd[i*3], rnd[i*3+1], rnd[i*3+2]},
			2, 1,
		)
		assert.Equal(t, want, mgl32.Vec3{dst[i*3], dst[i*3+1], dst[i*3+2]})
	}

	assert.Panics(t, func() { SpinField(dst[:3], pos, rnd, 0, 1) })
}

// SpinPoint is only useful while it matches the vertex stage it mirrors.
func TestSpinPoint_MatchesGalaxyShader(t *testing.T) {
	assert.Contains(t, shaders.GalaxyWGSL, "atan2(model.x, model.z)")
	assert.Contains(t, shaders.GalaxyWGSL, fmt.Sprintf("(1.0 / dist) * u.time * %v * u.spin", SpinRate))
}
