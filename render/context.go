package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Stats counts work issued since the last Clear
type Stats struct {
	Triangles int
	Fragments int
	Points    int
}

// Point is one point primitive with its own flat color
type Point struct {
	Pos   mgl64.Vec3
	Color Color
}

// Context is an immediate-mode graphics context over a Framebuffer
// State (lighting, material, color, blend, point size) persists across draws
// until changed, matching fixed-function semantics. Transforms are not state:
// every draw takes its full model-view matrix.
type Context struct {
	fb *Framebuffer

	fovY, near, far float64
	projection      mgl64.Mat4

	// Light position in eye space
	light mgl64.Vec3

	lighting  bool
	material  Material
	color     Color
	blend     BlendMode
	pointSize float64

	background RGB

	spheres map[meshKey]*Mesh
	verts   []vertex

	stats Stats
}

// NewContext creates a context drawing into fb with the default projection
func NewContext(fb *Framebuffer) *Context {
	c := &Context{
		fb:        fb,
		fovY:      parameter.FovY,
		near:      parameter.Near,
		far:       parameter.Far,
		lighting:  true,
		material:  DefaultMaterial(),
		color:     Opaque(1, 1, 1),
		pointSize: 1,
		spheres:   make(map[meshKey]*Mesh),
	}
	c.updateProjection()
	return c
}

// Framebuffer returns the render target
func (c *Context) Framebuffer() *Framebuffer {
	return c.fb
}

// SetPerspective configures the projection; aspect follows the framebuffer
func (c *Context) SetPerspective(fovY, near, far float64) {
	c.fovY, c.near, c.far = fovY, near, far
	c.updateProjection()
}

// Projection returns the current projection matrix
func (c *Context) Projection() mgl64.Mat4 {
	return c.projection
}

func (c *Context) updateProjection() {
	c.projection = mgl64.Perspective(vmath.Rad(c.fovY), c.fb.Aspect(), c.near, c.far)
}

// Clear resets color and depth, refreshes the projection for the current
// framebuffer size and zeroes the stats
func (c *Context) Clear() {
	c.updateProjection()
	c.fb.Clear(c.background)
	c.stats = Stats{}
}

// Stats returns counters accumulated since the last Clear
func (c *Context) Stats() Stats {
	return c.stats
}

// SetLightPosition places the single positional light, given in world space,
// under the view transform
func (c *Context) SetLightPosition(view mgl64.Mat4, world mgl64.Vec3) {
	c.light = vmath.TransformPoint(view, world)
}

// SetLighting toggles the lighting model; when off, the flat color is used
func (c *Context) SetLighting(enabled bool) {
	c.lighting = enabled
}

// SetMaterial replaces the full material
func (c *Context) SetMaterial(m Material) {
	c.material = m
}

// Material returns the current material
func (c *Context) Material() Material {
	return c.material
}

// SetColor sets the flat color used while lighting is off
func (c *Context) SetColor(col Color) {
	c.color = col
}

// SetBlend selects the compositing mode for subsequent fragments
func (c *Context) SetBlend(mode BlendMode) {
	c.blend = mode
}

// SetPointSize sets point edge length in pixels at the reference height
func (c *Context) SetPointSize(size float64) {
	c.pointSize = size
}

// DrawSphere draws a sphere of radius centred at the model-view origin
// Unit meshes are cached per tessellation and scaled at draw time
func (c *Context) DrawSphere(modelView mgl64.Mat4, radius float64, slices, stacks int) {
	key := meshKey{slices: slices, stacks: stacks}
	mesh, ok := c.spheres[key]
	if !ok {
		mesh = unitSphere(slices, stacks)
		c.spheres[key] = mesh
	}
	c.drawMesh(modelView.Mul4(mgl64.Scale3D(radius, radius, radius)), mesh)
}

// DrawDisk draws a flat annulus in the model-view z = 0 plane
func (c *Context) DrawDisk(modelView mgl64.Mat4, inner, outer float64, slices, loops int) {
	c.drawMesh(modelView, annulus(inner, outer, slices, loops))
}

// DrawPoints draws square point primitives
func (c *Context) DrawPoints(modelView mgl64.Mat4, pts []Point) {
	size := c.pointPixels()
	half := float64(size) / 2
	for _, p := range pts {
		eye := vmath.TransformPoint(modelView, p.Pos)
		v, ok := c.project(eye)
		if !ok || v.z < -1 || v.z > 1 {
			continue
		}

		col := p.Color
		if c.lighting {
			col = c.shade(eye, mgl64.Vec3{0, 0, 1})
		}
		rgb := col.RGB()

		x0 := int(v.x - half + 0.5)
		y0 := int(v.y - half + 0.5)
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				if c.fb.fragment(x0+dx, y0+dy, v.z, rgb, c.blend, col.A) {
					c.stats.Fragments++
				}
			}
		}
		c.stats.Points++
	}
}

// pointPixels scales point size with framebuffer height so a terminal-sized
// buffer keeps the same apparent particle size as the reference window
func (c *Context) pointPixels() int {
	s := c.pointSize * float64(c.fb.Height) / parameter.ScreenHeight
	return max(1, int(s+0.5))
}
