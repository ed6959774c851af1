package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// wEpsilon rejects vertices at or behind the eye
const wEpsilon = 1e-6

// vertex is a projected, shaded vertex in pixel space
type vertex struct {
	x, y, z float64
	col     Color
	ok      bool
}

// viewDir is the viewer direction for a non-local viewer
var viewDir = mgl64.Vec3{0, 0, 1}

// project maps an eye-space point to pixel coordinates and NDC depth
func (c *Context) project(eye mgl64.Vec3) (vertex, bool) {
	clip := c.projection.Mul4x1(eye.Vec4(1))
	w := clip.W()
	if w <= wEpsilon {
		return vertex{}, false
	}
	inv := 1.0 / w
	ndcX, ndcY, ndcZ := clip.X()*inv, clip.Y()*inv, clip.Z()*inv
	return vertex{
		x:  (ndcX + 1) * 0.5 * float64(c.fb.Width),
		y:  (1 - ndcY) * 0.5 * float64(c.fb.Height),
		z:  ndcZ,
		ok: true,
	}, true
}

// shade evaluates the lighting model at an eye-space point
// emission + ambient + diffuse·max(N·L,0) + specular·max(N·H,0)^shininess
func (c *Context) shade(p, n mgl64.Vec3) Color {
	m := c.material
	col := m.Emission.Add(m.Ambient.Scale(parameter.GlobalAmbient))

	l := c.light.Sub(p)
	if dist := l.Len(); dist > 0 {
		l = l.Mul(1.0 / dist)
		if ndotl := n.Dot(l); ndotl > 0 {
			col = col.Add(m.Diffuse.Scale(ndotl))

			h := l.Add(viewDir).Normalize()
			if ndoth := n.Dot(h); ndoth > 0 {
				col = col.Add(m.Specular.Scale(math.Pow(ndoth, m.Shininess)))
			}
		}
	}
	col.A = m.Diffuse.A
	return col
}

// drawMesh transforms, shades and rasterizes every triangle of mesh
func (c *Context) drawMesh(modelView mgl64.Mat4, mesh *Mesh) {
	if cap(c.verts) < len(mesh.Positions) {
		c.verts = make([]vertex, len(mesh.Positions))
	}
	verts := c.verts[:len(mesh.Positions)]

	for i, p := range mesh.Positions {
		eye := vmath.TransformPoint(modelView, p)
		v, ok := c.project(eye)
		if !ok {
			verts[i] = vertex{}
			continue
		}
		if c.lighting {
			v.col = c.shade(eye, vmath.TransformNormal(modelView, mesh.Normals[i]))
		} else {
			v.col = c.color
		}
		verts[i] = v
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, d := verts[mesh.Indices[i]], verts[mesh.Indices[i+1]], verts[mesh.Indices[i+2]]
		if !a.ok || !b.ok || !d.ok {
			continue
		}
		c.stats.Triangles++
		c.fillTriangle(a, b, d)
	}
}

// edge is the signed area of (a, b, p) doubled
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// fillTriangle rasterizes with pixel-centre sampling and Gouraud interpolation
// Both windings are filled; there is no face culling
func (c *Context) fillTriangle(a, b, d vertex) {
	area := edge(a.x, a.y, b.x, b.y, d.x, d.y)
	if area == 0 {
		return
	}
	inv := 1.0 / area

	minX := max(int(math.Floor(min(a.x, b.x, d.x))), 0)
	maxX := min(int(math.Ceil(max(a.x, b.x, d.x))), c.fb.Width-1)
	minY := max(int(math.Floor(min(a.y, b.y, d.y))), 0)
	maxY := min(int(math.Ceil(max(a.y, b.y, d.y))), c.fb.Height-1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			wa := edge(b.x, b.y, d.x, d.y, px, py) * inv
			wb := edge(d.x, d.y, a.x, a.y, px, py) * inv
			wd := edge(a.x, a.y, b.x, b.y, px, py) * inv
			if wa < 0 || wb < 0 || wd < 0 {
				continue
			}

			z := a.z*wa + b.z*wb + d.z*wd
			if z < -1 || z > 1 {
				continue
			}

			col := lerpColor(a.col, b.col, d.col, wa, wb, wd)
			if c.fb.fragment(x, y, z, col.RGB(), c.blend, col.A) {
				c.stats.Fragments++
			}
		}
	}
}
