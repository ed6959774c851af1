package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list with per-vertex normals
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	Indices   []int
}

// Triangles returns the triangle count
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

type meshKey struct {
	slices, stacks int
}

// unitSphere tessellates a radius-1 sphere around the Z axis
// stacks run from +Z to -Z, slices sweep the XY plane
func unitSphere(slices, stacks int) *Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	m := &Mesh{
		Positions: make([]mgl64.Vec3, 0, (slices+1)*(stacks+1)),
		Normals:   make([]mgl64.Vec3, 0, (slices+1)*(stacks+1)),
		Indices:   make([]int, 0, slices*stacks*6),
	}

	for j := 0; j <= stacks; j++ {
		phi := math.Pi * float64(j) / float64(stacks)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
		for i := 0; i <= slices; i++ {
			theta := 2 * math.Pi * float64(i) / float64(slices)
			p := mgl64.Vec3{sinPhi * math.Cos(theta), sinPhi * math.Sin(theta), cosPhi}
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, p)
		}
	}

	row := slices + 1
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			a := j*row + i
			b := a + row
			// Pole rows collapse to a point; skip the degenerate half
			if j != 0 {
				m.Indices = append(m.Indices, a, b, a+1)
			}
			if j != stacks-1 {
				m.Indices = append(m.Indices, a+1, b, b+1)
			}
		}
	}
	return m
}

// annulus tessellates a flat ring in the z = 0 plane facing +Z
// loops subdivide the band radially
func annulus(inner, outer float64, slices, loops int) *Mesh {
	slices = max(slices, 3)
	loops = max(loops, 1)

	m := &Mesh{
		Positions: make([]mgl64.Vec3, 0, (slices+1)*(loops+1)),
		Normals:   make([]mgl64.Vec3, 0, (slices+1)*(loops+1)),
		Indices:   make([]int, 0, slices*loops*6),
	}

	up := mgl64.Vec3{0, 0, 1}
	for l := 0; l <= loops; l++ {
		r := inner + (outer-inner)*float64(l)/float64(loops)
		for i := 0; i <= slices; i++ {
			theta := 2 * math.Pi * float64(i) / float64(slices)
			m.Positions = append(m.Positions, mgl64.Vec3{r * math.Cos(theta), r * math.Sin(theta), 0})
			m.Normals = append(m.Normals, up)
		}
	}

	row := slices + 1
	for l := 0; l < loops; l++ {
		for i := 0; i < slices; i++ {
			a := l*row + i
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}
