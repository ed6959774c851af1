// Package palette maps body names to their fixed display colors.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
)

// ErrUnknownBody is returned for names with no palette entry
var ErrUnknownBody = errors.New("unknown body")

// Sun gradient, innermost shell first
var Sun = [3]render.Color{
	render.Opaque(1.0, 0.3, 0.0), // core red
	render.Opaque(1.0, 0.6, 0.0), // mid orange
	render.Opaque(1.0, 0.8, 0.3), // corona yellow
}

var planets = map[string]render.Color{
	"mercury": render.Opaque(0.6, 0.6, 0.6), // metallic grey
	"venus":   render.Opaque(0.9, 0.6, 0.2), // dark yellow
	"earth":   render.Opaque(0.2, 0.4, 0.9), // ocean blue
	"mars":    render.Opaque(0.8, 0.3, 0.1), // rust
	"jupiter": render.Opaque(0.8, 0.6, 0.4), // banded brown
	"saturn":  render.Opaque(0.9, 0.8, 0.6), // beige
	"uranus":  render.Opaque(0.4, 0.8, 0.9), // cyan
	"neptune": render.Opaque(0.2, 0.2, 0.8), // deep blue
}

// Planet returns the diffuse color for a planet, case-insensitive
func Planet(name string) (render.Color, error) {
	c, ok := planets[strings.ToLower(name)]
	if !ok {
		return render.Color{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	return c, nil
}

// Ring material: cold blue-white base, specular glints, faint blue glow
var (
	RingDiffuse  = render.Color{R: 0.8, G: 0.8, B: 0.9, A: 1.0}
	RingSpecular = render.Color{R: 0.9, G: 0.9, B: 1.0, A: 1.0}
	RingEmission = render.Color{R: 0.3, G: 0.3, B: 0.6, A: 0.5}

	// RingOuterDiffuse darkens the outer band
	RingOuterDiffuse = render.Color{R: 0.3, G: 0.3, B: 0.3, A: 0.3}
)

// RingMaterial returns the full inner-ring material
func RingMaterial() render.Material {
	m := render.DefaultMaterial()
	m.Diffuse = RingDiffuse
	m.Specular = RingSpecular
	m.Shininess = parameter.RingShininess
	m.Emission = RingEmission
	return m
}

// Plasma returns the particle color for a brightness factor in [0.7, 1]
func Plasma(intensity float64) render.Color {
	return render.Color{R: 1.0, G: intensity * parameter.PlasmaGreen, B: 0.0, A: parameter.PlasmaAlpha}
}
