// Package motion holds the per-frame updaters of the particle effects.
package motion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Retention is how far each trail point moves toward its predecessor per frame.
	Retention float32 = 0.9
	// PinOffsetY lifts the head of the trail slightly above the pointer.
	PinOffsetY float32 = 0.05
	// TrailDepth is the fixed z every trail point is pinned to.
	TrailDepth float32 = 1
)

// PinnedHead is where Chase places point 0 for the given pointer target.
func PinnedHead(target mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{target.X(), target.Y() + PinOffsetY, TrailDepth}
}

// Chase advances a trail by one frame, in place.
//
// Points are visited in order 0..n-1 so that point i follows the value its
// predecessor received earlier in the same pass.
func Chase(positions []float32, target mgl32.Vec3) {
	if len(positions)%3 != 0 {
		panic(fmt.Sprintf("motion: trail buffer holds %d floats, not a multiple of 3", len(positions)))
	}
	if len(positions) == 0 {
		return
	}

	head := PinnedHead(target)
	positions[0] = head.X()
	positions[1] = head.Y()
	positions[2] = head.Z()

	for i3 := 3; i3 < len(positions); i3 += 3 {
		prev := i3 - 3
		positions[i3] = lerp(positions[i3], positions[prev], Retention)
		positions[i3+1] = lerp(positions[i3+1], positions[prev+1], Retention)
		positions[i3+2] = TrailDepth
	}
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }
