package render

import "github.com/lixenwraith/orrery/parameter"

// Material holds the lit surface terms
// Alpha of Diffuse is carried but ignored unless blending is on
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Emission  Color
	Shininess float64
}

// DefaultMaterial returns fixed-function defaults: grey ambient and diffuse,
// no specular, no emission
func DefaultMaterial() Material {
	return Material{
		Ambient:  Opaque(parameter.MaterialAmbient, parameter.MaterialAmbient, parameter.MaterialAmbient),
		Diffuse:  Opaque(parameter.MaterialDiffuse, parameter.MaterialDiffuse, parameter.MaterialDiffuse),
		Specular: Opaque(0, 0, 0),
		Emission: Opaque(0, 0, 0),
	}
}

// WithDiffuse returns a copy with the diffuse term replaced
func (m Material) WithDiffuse(c Color) Material {
	m.Diffuse = c
	return m
}

// WithEmission returns a copy with the emission term replaced
func (m Material) WithEmission(c Color) Material {
	m.Emission = c
	return m
}
