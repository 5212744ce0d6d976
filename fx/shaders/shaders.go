// Package shaders embeds the WGSL programs that implement the particle
// attribute and uniform contract.
package shaders

import (
	_ "embed"
)

//go:embed galaxy.wgsl
var GalaxyWGSL string

//go:embed trail.wgsl
var TrailWGSL string
