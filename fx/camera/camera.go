// Package camera provides the perspective camera the effects are viewed
// through and the projection of pointer positions into the scene.
package camera

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrRayParallel means the pointer ray never meets the z=0 plane.
	ErrRayParallel = errors.New("camera: pointer ray is parallel to the z=0 plane")
	// ErrEmptyViewport means the pointer was reported against a zero-sized viewport.
	ErrEmptyViewport = errors.New("camera: viewport has no area")
)

// parallelEpsilon treats nearly parallel rays as parallel; their intersection
// would land too far away to be useful.
const parallelEpsilon = 1e-5

// unprojectDepth is the NDC depth the pointer is unprojected at. Any depth
// inside the frustum yields a point on the same ray.
const unprojectDepth = 0.5

type Camera struct {
	Position mgl32.Vec3
	Fov      float32 // vertical, degrees
	Aspect   float32
	Near     float32
	Far      float32
	Tilt     float32 // rotation about the local X axis, radians
}

// Default returns the camera of the stock scene: slightly above the galaxy
// plane, five units back, tilted about X by 50 radians.
func Default() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 1.7, 5},
		Fov:      45,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      2000,
		Tilt:     50,
	}
}

// SetViewport updates the aspect ratio; zero-sized viewports are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// World is the camera's placement in the scene.
func (c Camera) World() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(c.Tilt))
}

func (c Camera) View() mgl32.Mat4 {
	return c.World().Inv()
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

func (c Camera) InverseViewProjection() mgl32.Mat4 {
	return c.ViewProjection().Inv()
}

// Unproject maps normalized device coordinates back into world space.
func (c Camera) Unproject(ndc mgl32.Vec3) mgl32.Vec3 {
	p := c.InverseViewProjection().Mul4x1(ndc.Vec4(1))
	return p.Vec3().Mul(1 / p.W())
}

// ProjectPointer converts a pointer position in device pixels (origin top
// left, y down) into the point where the camera ray through it crosses z=0.
func (c Camera) ProjectPointer(x, y float64, width, height int) (mgl32.Vec3, error) {
	if width <= 0 || height <= 0 {
		return mgl32.Vec3{}, ErrEmptyViewport
	}

	ndc := mgl32.Vec3{
		float32(x/float64(width))*2 - 1,
		-float32(y/float64(height))*2 + 1,
		unprojectDepth,
	}
	dir := c.Unproject(ndc).Sub(c.Position).Normalize()
	if math32.Abs(dir.Z()) < parallelEpsilon {
		return mgl32.Vec3{}, ErrRayParallel
	}

	distance := -c.Position.Z() / dir.Z()
	p := c.Position.Add(dir.Mul(distance))
	for _, v := range p {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return mgl32.Vec3{}, ErrRayParallel
		}
	}
	return p, nil
}
