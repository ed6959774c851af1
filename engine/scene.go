package engine

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/render"
)

// Graphics is the render target the loop drives
type Graphics interface {
	body.Canvas
	Clear()
	SetLightPosition(view mgl64.Mat4, world mgl64.Vec3)
	Framebuffer() *render.Framebuffer
	Stats() render.Stats
}

// Scene owns the camera and the fixed set of bodies
// Created once; bodies are never added or removed
type Scene struct {
	Camera  *Camera
	Sun     *body.Sun
	Planets []*body.Planet
}

// NewScene builds the default system; rng seeds starting angles and plasma
func NewScene(rng *rand.Rand) (*Scene, error) {
	roster := body.Roster()
	planets := make([]*body.Planet, 0, len(roster))
	for _, s := range roster {
		p, err := body.NewPlanet(s, body.RandomAngle(rng))
		if err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
		planets = append(planets, p)
	}

	return &Scene{
		Camera:  NewCamera(),
		Sun:     body.NewSun(rng),
		Planets: planets,
	}, nil
}

// Render turns the world one step, then draws the sun followed by each planet
// in list order, advancing every body
func (s *Scene) Render(g Graphics) {
	s.Camera.Advance()
	view := s.Camera.View()

	// The single light sits at the sun
	g.SetLightPosition(view, mgl64.Vec3{})

	f := body.Frame{Canvas: g, View: view}
	s.Sun.RenderAndAdvance(f)
	for _, p := range s.Planets {
		p.RenderAndAdvance(f)
	}
}
