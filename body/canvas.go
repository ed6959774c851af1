// Package body implements the renderable bodies of the scene: the emissive
// sun with its plasma halo and the orbiting planets.
//
// Bodies never touch shared transform state. Each draw receives the frame's
// view matrix and composes its own model-view matrix from its current angles.
package body

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/render"
)

// Canvas is the subset of the graphics context bodies draw through
type Canvas interface {
	SetLighting(enabled bool)
	SetMaterial(m render.Material)
	SetColor(c render.Color)
	SetBlend(mode render.BlendMode)
	SetPointSize(size float64)
	DrawSphere(modelView mgl64.Mat4, radius float64, slices, stacks int)
	DrawDisk(modelView mgl64.Mat4, inner, outer float64, slices, loops int)
	DrawPoints(modelView mgl64.Mat4, pts []render.Point)
}

// Frame is the per-frame render context handed to every body
type Frame struct {
	Canvas Canvas
	View   mgl64.Mat4
}
