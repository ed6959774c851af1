package render

// RGB stores explicit 8-bit color channels, the framebuffer pixel format
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// BlendMode defines how fragments composite onto the framebuffer
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAdd                      // Dst = clamp(Dst + Src*α, 255)
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend: src is weighted by alpha, destination kept at one
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha >= 1.0 {
		return RGB{
			R: add(c.R, src.R),
			G: add(c.G, src.G),
			B: add(c.B, src.B),
		}
	}
	return RGB{
		R: add(c.R, clamp(float64(src.R)*alpha)),
		G: add(c.G, clamp(float64(src.G)*alpha)),
		B: add(c.B, clamp(float64(src.B)*alpha)),
	}
}

// Composite writes src onto c using mode
func Composite(c, src RGB, mode BlendMode, alpha float64) RGB {
	switch mode {
	case BlendAdd:
		return Add(c, src, alpha)
	default:
		return src
	}
}
