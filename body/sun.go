package body

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/orrery/palette"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/vmath"
)

// Sun is the emissive central body
// rotation only grows, by SunSpinStep per frame
type Sun struct {
	radius   float64
	rotation float64
	gradient [3]render.Color
	rng      *rand.Rand

	// Reused each frame; contents never outlive a Render call
	plasma []render.Point
}

// NewSun creates the sun with the palette gradient; rng drives the plasma
func NewSun(rng *rand.Rand) *Sun {
	return &Sun{
		radius:   parameter.SunRadius,
		gradient: palette.Sun,
		rng:      rng,
		plasma:   make([]render.Point, 0, parameter.PlasmaPoints),
	}
}

func (s *Sun) Radius() float64 { return s.radius }
func (s *Sun) Rotation() float64 { return s.rotation }

// ShellRadius returns the radius of gradient shell i
func (s *Sun) ShellRadius(i int) float64 {
	return s.radius * (1 + float64(i)*parameter.SunShellStep)
}

// Render draws the shells unlit, then the plasma halo additively
// Lighting and blending are restored before returning
func (s *Sun) Render(f Frame) {
	c := f.Canvas
	mv := f.View.Mul4(vmath.RotateY(s.rotation))

	c.SetLighting(false)

	// Each larger shell is drawn over the last; depth order does the layering
	for i, col := range s.gradient {
		c.SetColor(col)
		c.DrawSphere(mv, s.ShellRadius(i), parameter.SphereSlices, parameter.SphereStacks)
	}

	c.SetBlend(render.BlendAdd)
	c.SetPointSize(parameter.PointSize)
	s.plasma = SamplePlasma(s.rng, s.radius, parameter.PlasmaPoints, s.plasma[:0])
	c.DrawPoints(mv, s.plasma)

	c.SetBlend(render.BlendReplace)
	c.SetLighting(true)
}

// Advance spins the sun one frame
func (s *Sun) Advance() {
	s.rotation += parameter.SunSpinStep
}

// RenderAndAdvance draws at the current rotation then spins
func (s *Sun) RenderAndAdvance(f Frame) {
	s.Render(f)
	s.Advance()
}

// SamplePlasma appends n particles in the shell [1.5r, 2.2r) around the origin
// Each gets its own brightness in [0.7, 1)
func SamplePlasma(rng *rand.Rand, radius float64, n int, dst []render.Point) []render.Point {
	for range n {
		intensity := uniform(rng, parameter.PlasmaIntensityMin, parameter.PlasmaIntensityMax)
		theta := uniform(rng, 0, 2*math.Pi)
		phi := uniform(rng, 0, math.Pi)
		r := radius * uniform(rng, parameter.PlasmaShellMin, parameter.PlasmaShellMax)

		dst = append(dst, render.Point{
			Pos:   vmath.Spherical(r, theta, phi),
			Color: palette.Plasma(intensity),
		})
	}
	return dst
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
