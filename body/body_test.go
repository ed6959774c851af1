package body

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/palette"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/vmath"
)

// call is one recorded canvas operation
type call struct {
	op       string
	mv       mgl64.Mat4
	radius   float64
	inner    float64
	outer    float64
	points   int
	lighting bool
	blend    render.BlendMode
	material render.Material
	color    render.Color
}

// recorder is a Canvas that logs every operation with the state it ran under
type recorder struct {
	calls    []call
	lighting bool
	blend    render.BlendMode
	material render.Material
	color    render.Color
	size     float64
}

func newRecorder() *recorder {
	return &recorder{lighting: true, material: render.DefaultMaterial()}
}

func (r *recorder) SetLighting(enabled bool) { r.lighting = enabled }
func (r *recorder) SetMaterial(m render.Material) { r.material = m }
func (r *recorder) SetColor(c render.Color) { r.color = c }
func (r *recorder) SetBlend(mode render.BlendMode) { r.blend = mode }
func (r *recorder) SetPointSize(size float64) { r.size = size }

func (r *recorder) record(c call) {
	c.lighting = r.lighting
	c.blend = r.blend
	c.material = r.material
	c.color = r.color
	r.calls = append(r.calls, c)
}

func (r *recorder) DrawSphere(mv mgl64.Mat4, radius float64, slices, stacks int) {
	r.record(call{op: "sphere", mv: mv, radius: radius})
}

func (r *recorder) DrawDisk(mv mgl64.Mat4, inner, outer float64, slices, loops int) {
	r.record(call{op: "disk", mv: mv, inner: inner, outer: outer})
}

func (r *recorder) DrawPoints(mv mgl64.Mat4, pts []render.Point) {
	r.record(call{op: "points", mv: mv, points: len(pts)})
}

func mustPlanet(t *testing.T, s Spec, angle float64) *Planet {
	t.Helper()
	p, err := NewPlanet(s, angle)
	if err != nil {
		t.Fatalf("NewPlanet(%s): %v", s.Name, err)
	}
	return p
}

func TestRoster_AllHaveColors(t *testing.T) {
	roster := Roster()
	if len(roster) != 8 {
		t.Fatalf("roster has %d planets, want 8", len(roster))
	}
	ringed := 0
	for _, s := range roster {
		mustPlanet(t, s, 0)
		if s.Rings {
			ringed++
		}
	}
	if ringed != 1 {
		t.Errorf("ringed planets = %d, want 1", ringed)
	}
}

func TestRoster_UsesGlobalTilt(t *testing.T) {
	for _, s := range Roster() {
		if s.Tilt != parameter.Tilt {
			t.Errorf("%s tilt = %v, want %v", s.Name, s.Tilt, parameter.Tilt)
		}
	}

	// Tilt is applied about X after the orbital rotation
	p := mustPlanet(t, Spec{Name: "Earth", Distance: 20, Radius: 1.5, Tilt: 90}, 90)
	got := p.WorldPosition()
	want := mgl64.Vec3{0, p.OrbitRadius(), 0}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("tilted position = %v, want %v", got, want)
	}
}

func TestNewPlanet_UnknownName(t *testing.T) {
	if _, err := NewPlanet(Spec{Name: "Vulcan"}, 0); err == nil {
		t.Error("expected error for unknown planet")
	}
}

func TestNewPlanet_Scaling(t *testing.T) {
	p := mustPlanet(t, Spec{Name: "Earth", Distance: 20, Radius: 1.5, Velocity: 0.8}, 0)
	if p.OrbitRadius() != 120 {
		t.Errorf("orbit radius = %v, want 120", p.OrbitRadius())
	}
	if p.Radius() != 18 {
		t.Errorf("radius = %v, want 18", p.Radius())
	}
}

func TestRandomAngle_InRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 1000 {
		a := RandomAngle(rng)
		if a < 0 || a >= 360 {
			t.Fatalf("angle %v outside [0,360)", a)
		}
	}
}

func TestPlanet_TenFrames(t *testing.T) {
	p := mustPlanet(t, Spec{Name: "Mars", Distance: 25, Radius: 1, Velocity: 1.0}, 0)
	f := Frame{Canvas: newRecorder(), View: mgl64.Ident4()}
	for range 10 {
		p.RenderAndAdvance(f)
	}
	if p.Angle() != 10.0 {
		t.Errorf("angle = %v, want 10", p.Angle())
	}
}

func TestPlanet_AngleAccumulatesLinearly(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := Frame{Canvas: newRecorder(), View: mgl64.Ident4()}

	for _, s := range Roster() {
		start := RandomAngle(rng)
		p := mustPlanet(t, s, start)

		const n = 250
		want := start
		for range n {
			p.RenderAndAdvance(f)
			want += s.Velocity
		}
		if p.Angle() != want {
			t.Errorf("%s: angle = %v, want %v", s.Name, p.Angle(), want)
		}
	}
}

func TestPlanet_CircularOrbit(t *testing.T) {
	for _, tilt := range []float64{0, 7, 23.5, 90, 170} {
		for _, s := range Roster() {
			s.Tilt = tilt
			p := mustPlanet(t, s, 13)

			// Undo the tilt to land in the orbital plane
			untilt := vmath.RotateX(-tilt)
			for range 40 {
				pos := vmath.TransformPoint(untilt, p.WorldPosition())
				if d := vmath.PlanarDistance(pos); math.Abs(d-p.OrbitRadius()) > 1e-9 {
					t.Fatalf("%s tilt %v: planar distance %v, want %v", s.Name, tilt, d, p.OrbitRadius())
				}
				if math.Abs(pos.Y()) > 1e-9 {
					t.Fatalf("%s tilt %v: left orbital plane, y = %v", s.Name, tilt, pos.Y())
				}
				p.Advance()
			}
		}
	}
}

func TestPlanet_SelfSpinDoesNotMoveCentre(t *testing.T) {
	p := mustPlanet(t, Spec{Name: "Venus", Distance: 15, Radius: 1.2, Velocity: 1}, 30)
	orbitOnly := vmath.RotateY(30).Mul4(vmath.Translate(p.OrbitRadius(), 0, 0))
	want := vmath.TransformPoint(orbitOnly, mgl64.Vec3{})
	if got := p.WorldPosition(); !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("centre %v, want %v", got, want)
	}

	// A surface point does rotate with the spin factor
	surface := vmath.TransformPoint(p.Model(), mgl64.Vec3{p.Radius(), 0, 0})
	spun := vmath.TransformPoint(orbitOnly.Mul4(vmath.RotateY(90)), mgl64.Vec3{p.Radius(), 0, 0})
	if !surface.ApproxEqualThreshold(spun, 1e-9) {
		t.Errorf("surface point %v, want %v (spin = 3×angle)", surface, spun)
	}
}

func TestPlanet_RingBoundsOrdered(t *testing.T) {
	for _, s := range Roster() {
		p := mustPlanet(t, s, 0)
		inner, outer := p.RingBounds()
		if !(p.Radius() < inner.Min && inner.Min < inner.Max && inner.Max <= outer.Min && outer.Min < outer.Max) {
			t.Errorf("%s: bounds not ordered: r=%v inner=%+v outer=%+v", s.Name, p.Radius(), inner, outer)
		}
	}
}

func TestPlanet_RenderPlain(t *testing.T) {
	p := mustPlanet(t, Spec{Name: "Earth", Distance: 20, Radius: 1.5, Velocity: 0.8}, 45)
	rec := newRecorder()
	// Leaked state from a previous body must not survive
	rec.material = palette.RingMaterial()

	view := vmath.Translate(0, 0, -300)
	p.Render(Frame{Canvas: rec, View: view})

	if len(rec.calls) != 1 || rec.calls[0].op != "sphere" {
		t.Fatalf("calls = %+v, want one sphere", rec.calls)
	}
	c := rec.calls[0]
	if c.radius != p.Radius() {
		t.Errorf("radius = %v, want %v", c.radius, p.Radius())
	}
	if c.material.Diffuse != p.Color() {
		t.Errorf("diffuse = %v, want %v", c.material.Diffuse, p.Color())
	}
	if c.material.Emission != render.DefaultMaterial().Emission {
		t.Errorf("emission leaked: %v", c.material.Emission)
	}
	if c.mv != view.Mul4(p.Model()) {
		t.Error("model-view is not view·model")
	}
}

func TestPlanet_RenderRings(t *testing.T) {
	var saturn Spec
	for _, s := range Roster() {
		if s.Rings {
			saturn = s
		}
	}
	p := mustPlanet(t, saturn, 0)
	rec := newRecorder()
	p.Render(Frame{Canvas: rec, View: mgl64.Ident4()})

	if len(rec.calls) != 3 {
		t.Fatalf("calls = %d, want sphere + 2 disks", len(rec.calls))
	}
	inner, outer := p.RingBounds()

	d1, d2 := rec.calls[1], rec.calls[2]
	if d1.op != "disk" || d1.inner != inner.Min || d1.outer != inner.Max {
		t.Errorf("inner disk = %+v", d1)
	}
	if d2.op != "disk" || d2.inner != outer.Min || d2.outer != outer.Max {
		t.Errorf("outer disk = %+v", d2)
	}
	if d1.material.Emission != palette.RingEmission || d1.material.Shininess != parameter.RingShininess {
		t.Errorf("inner ring material = %+v", d1.material)
	}
	if d2.material.Diffuse != palette.RingOuterDiffuse {
		t.Errorf("outer ring diffuse = %v", d2.material.Diffuse)
	}

	wantMV := p.Model().Mul4(vmath.RotateX(parameter.RingTilt))
	if !d1.mv.ApproxEqualThreshold(wantMV, 1e-12) {
		t.Error("ring not tilted about X after body transform")
	}

	// Glow reset after the rings
	if e := rec.material.Emission; e.R != 0 || e.G != 0 || e.B != 0 {
		t.Errorf("emission not reset: %v", e)
	}
}

func TestSun_RotationAccumulates(t *testing.T) {
	s := NewSun(rand.New(rand.NewSource(1)))
	f := Frame{Canvas: newRecorder(), View: mgl64.Ident4()}
	const n = 100
	want := 0.0
	for range n {
		s.RenderAndAdvance(f)
		want += parameter.SunSpinStep
	}
	if s.Rotation() != want {
		t.Errorf("rotation = %v, want %v", s.Rotation(), want)
	}
	if math.Abs(s.Rotation()-n*1.2) > 1e-9 {
		t.Errorf("rotation = %v, want ≈ %v", s.Rotation(), n*1.2)
	}
}

func TestSun_RenderSequence(t *testing.T) {
	s := NewSun(rand.New(rand.NewSource(1)))
	rec := newRecorder()
	s.Render(Frame{Canvas: rec, View: mgl64.Ident4()})

	if len(rec.calls) != 4 {
		t.Fatalf("calls = %d, want 3 shells + points", len(rec.calls))
	}
	for i := 0; i < 3; i++ {
		c := rec.calls[i]
		if c.op != "sphere" {
			t.Fatalf("call %d = %s, want sphere", i, c.op)
		}
		if c.lighting {
			t.Errorf("shell %d drawn lit", i)
		}
		if c.color != palette.Sun[i] {
			t.Errorf("shell %d color = %v, want %v", i, c.color, palette.Sun[i])
		}
		want := s.Radius() * (1 + float64(i)*0.3)
		if math.Abs(c.radius-want) > 1e-12 {
			t.Errorf("shell %d radius = %v, want %v", i, c.radius, want)
		}
	}

	pts := rec.calls[3]
	if pts.op != "points" || pts.points != parameter.PlasmaPoints {
		t.Errorf("plasma call = %+v", pts)
	}
	if pts.blend != render.BlendAdd || pts.lighting {
		t.Errorf("plasma drawn with blend=%v lighting=%v", pts.blend, pts.lighting)
	}
	if rec.size != parameter.PointSize {
		t.Errorf("point size = %v", rec.size)
	}

	if !rec.lighting || rec.blend != render.BlendReplace {
		t.Error("lighting/blend not restored")
	}
}

func TestSamplePlasma_BoundingShell(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const radius = parameter.SunRadius
	pts := SamplePlasma(rng, radius, 10000, nil)
	if len(pts) != 10000 {
		t.Fatalf("sampled %d, want 10000", len(pts))
	}

	lo, hi := 1.5*radius, 2.2*radius
	for i, p := range pts {
		r := p.Pos.Len()
		if r < lo-1e-9 || r > hi+1e-9 {
			t.Fatalf("point %d radius %v outside [%v, %v]", i, r, lo, hi)
		}
		if p.Color.A != parameter.PlasmaAlpha || p.Color.R != 1 || p.Color.B != 0 {
			t.Fatalf("point %d color %+v", i, p.Color)
		}
		if g := p.Color.G; g < 0.7*0.4-1e-12 || g > 0.4+1e-12 {
			t.Fatalf("point %d green %v outside intensity band", i, g)
		}
	}
}

func TestSamplePlasma_Deterministic(t *testing.T) {
	a := SamplePlasma(rand.New(rand.NewSource(5)), 9, 50, nil)
	b := SamplePlasma(rand.New(rand.NewSource(5)), 9, 50, nil)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs with equal seeds", i)
		}
	}
}
