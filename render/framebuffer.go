package render

import "math"

// Framebuffer is a color plane plus a depth plane of equal size
// Depth holds NDC z in [-1,1]; cleared to +Inf so any fragment passes
type Framebuffer struct {
	Pix    []RGB
	Depth  []float64
	Width  int
	Height int
}

// NewFramebuffer creates a cleared framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (fb *Framebuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(fb.Pix) < size {
		fb.Pix = make([]RGB, size)
		fb.Depth = make([]float64, size)
	} else {
		fb.Pix = fb.Pix[:size]
		fb.Depth = fb.Depth[:size]
	}
	fb.Width = width
	fb.Height = height
	fb.Clear(RGBBlack)
}

// Clear resets color and depth using exponential copy
func (fb *Framebuffer) Clear(bg RGB) {
	if len(fb.Pix) == 0 {
		return
	}
	fb.Pix[0] = bg
	fb.Depth[0] = math.Inf(1)
	for filled := 1; filled < len(fb.Pix); filled *= 2 {
		copy(fb.Pix[filled:], fb.Pix[:filled])
	}
	for filled := 1; filled < len(fb.Depth); filled *= 2 {
		copy(fb.Depth[filled:], fb.Depth[:filled])
	}
}

// At returns the pixel at (x, y), black when out of bounds
func (fb *Framebuffer) At(x, y int) RGB {
	if !fb.inBounds(x, y) {
		return RGBBlack
	}
	return fb.Pix[y*fb.Width+x]
}

// Aspect returns width/height, 1 for an empty buffer
func (fb *Framebuffer) Aspect() float64 {
	if fb.Height == 0 || fb.Width == 0 {
		return 1
	}
	return float64(fb.Width) / float64(fb.Height)
}

// inBounds returns true if in buffer bounds
func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// fragment depth-tests and composites one pixel
// Depth is written for every passing fragment, blended or not
func (fb *Framebuffer) fragment(x, y int, z float64, c RGB, mode BlendMode, alpha float64) bool {
	if !fb.inBounds(x, y) {
		return false
	}
	idx := y*fb.Width + x
	if z >= fb.Depth[idx] {
		return false
	}
	fb.Depth[idx] = z
	fb.Pix[idx] = Composite(fb.Pix[idx], c, mode, alpha)
	return true
}

// RGBA packs the color plane as opaque 8-bit RGBA into dst, reusing its
// capacity when large enough
func (fb *Framebuffer) RGBA(dst []byte) []byte {
	n := len(fb.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range fb.Pix {
		j := i * 4
		dst[j+0] = p.R
		dst[j+1] = p.G
		dst[j+2] = p.B
		dst[j+3] = 0xFF
	}
	return dst
}
