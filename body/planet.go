package body

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/palette"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/vmath"
)

// Spec describes a planet in catalog units before scaling
type Spec struct {
	Name     string
	Distance float64 // orbit radius, unscaled
	Radius   float64 // body radius, unscaled
	Velocity float64 // degrees per frame
	Rings    bool
	Tilt     float64 // degrees about X
}

// Roster returns the eight planets in draw order
func Roster() []Spec {
	return []Spec{
		{Name: "Mercury", Distance: 10, Radius: 0.8, Velocity: 1.5, Tilt: parameter.Tilt},
		{Name: "Venus", Distance: 15, Radius: 1.2, Velocity: 1.0, Tilt: parameter.Tilt},
		{Name: "Earth", Distance: 20, Radius: 1.5, Velocity: 0.8, Tilt: parameter.Tilt},
		{Name: "Mars", Distance: 25, Radius: 1.0, Velocity: 0.6, Tilt: parameter.Tilt},
		{Name: "Jupiter", Distance: 35, Radius: 4.0, Velocity: 0.3, Tilt: parameter.Tilt},
		{Name: "Saturn", Distance: 55, Radius: 3.5, Velocity: 0.2, Rings: true, Tilt: parameter.Tilt},
		{Name: "Uranus", Distance: 75, Radius: 2.5, Velocity: 0.1, Tilt: parameter.Tilt},
		{Name: "Neptune", Distance: 85, Radius: 2.4, Velocity: 0.05, Tilt: parameter.Tilt},
	}
}

// Band is a radial interval of a ring in world units
type Band struct {
	Min, Max float64
}

// Planet is one orbiting body
// angle is never wrapped: after N advances it equals start + N·velocity
type Planet struct {
	name        string
	orbitRadius float64
	radius      float64
	velocity    float64
	angle       float64
	tilt        float64
	rings       bool
	color       render.Color
}

// RandomAngle draws a starting angle uniformly from [0, 360)
func RandomAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 360.0
}

// NewPlanet scales s into world units and starts it at angle degrees
func NewPlanet(s Spec, angle float64) (*Planet, error) {
	color, err := palette.Planet(s.Name)
	if err != nil {
		return nil, fmt.Errorf("planet %s: %w", s.Name, err)
	}
	return &Planet{
		name:        s.Name,
		orbitRadius: s.Distance * parameter.Scale,
		radius:      s.Radius * parameter.Scale * parameter.PlanetRadiusFactor,
		velocity:    s.Velocity,
		angle:       angle,
		tilt:        s.Tilt,
		rings:       s.Rings,
		color:       color,
	}, nil
}

func (p *Planet) Name() string { return p.name }
func (p *Planet) OrbitRadius() float64 { return p.orbitRadius }
func (p *Planet) Radius() float64 { return p.radius }
func (p *Planet) Velocity() float64 { return p.velocity }
func (p *Planet) Angle() float64 { return p.angle }
func (p *Planet) Color() render.Color { return p.color }

// Model composes tilt, orbit, translation and self-spin, in that order
// Translating after the orbital rotation sweeps the circle; the spin applied
// after the translation turns the body about its own centre
func (p *Planet) Model() mgl64.Mat4 {
	return vmath.RotateX(p.tilt).
		Mul4(vmath.RotateY(p.angle)).
		Mul4(vmath.Translate(p.orbitRadius, 0, 0)).
		Mul4(vmath.RotateY(p.angle * parameter.SpinFactor))
}

// WorldPosition returns the body centre in world space
func (p *Planet) WorldPosition() mgl64.Vec3 {
	return vmath.TransformPoint(p.Model(), mgl64.Vec3{})
}

// RingBounds returns the inner and outer ring bands
func (p *Planet) RingBounds() (inner, outer Band) {
	inner = Band{Min: p.radius * parameter.InnerRingMin, Max: p.radius * parameter.InnerRingMax}
	outer = Band{Min: p.radius * parameter.OuterRingMin, Max: p.radius * parameter.OuterRingMax}
	return inner, outer
}

// Render issues the planet's draw calls
func (p *Planet) Render(f Frame) {
	mv := f.View.Mul4(p.Model())
	c := f.Canvas

	// Full reset so nothing from the previous body leaks in
	c.SetMaterial(render.DefaultMaterial().WithDiffuse(p.color))
	c.DrawSphere(mv, p.radius, parameter.SphereSlices, parameter.SphereStacks)

	if !p.rings {
		return
	}

	ring := palette.RingMaterial()
	ringMV := mv.Mul4(vmath.RotateX(parameter.RingTilt))
	inner, outer := p.RingBounds()

	c.SetMaterial(ring)
	c.DrawDisk(ringMV, inner.Min, inner.Max, parameter.DiskSlices, parameter.DiskLoops)

	ring = ring.WithDiffuse(palette.RingOuterDiffuse)
	c.SetMaterial(ring)
	c.DrawDisk(ringMV, outer.Min, outer.Max, parameter.DiskSlices, parameter.DiskLoops)

	c.SetMaterial(ring.WithEmission(render.Color{A: 1}))
}

// Advance moves the planet one frame along its orbit
func (p *Planet) Advance() {
	p.angle += p.velocity
}

// RenderAndAdvance draws the current frame then steps the orbit
func (p *Planet) RenderAndAdvance(f Frame) {
	p.Render(f)
	p.Advance()
}
