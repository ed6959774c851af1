package render

// Color is a linear [0,1] RGBA value used for materials and lighting math
// Converted to RGB only when a fragment is written
type Color struct {
	R, G, B, A float64
}

// Opaque builds a Color with alpha 1
func Opaque(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Add sums channels; alpha is taken from c
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Scale multiplies RGB by s
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// RGB quantizes to 8-bit, clamping out-of-range light
func (c Color) RGB() RGB {
	return RGB{
		R: clamp(c.R * 255.0),
		G: clamp(c.G * 255.0),
		B: clamp(c.B * 255.0),
	}
}

// lerpColor interpolates barycentric weights across three vertex colors
func lerpColor(a, b, c Color, wa, wb, wc float64) Color {
	return Color{
		R: a.R*wa + b.R*wb + c.R*wc,
		G: a.G*wa + b.G*wb + c.G*wc,
		B: a.B*wa + b.B*wb + c.B*wc,
		A: a.A*wa + b.A*wb + c.A*wc,
	}
}
