package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spherical converts (r, theta, phi) to Cartesian
// theta sweeps the XY plane from +X, phi is measured from +Z
func Spherical(r, theta, phi float64) mgl64.Vec3 {
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		r * sinPhi * math.Cos(theta),
		r * sinPhi * math.Sin(theta),
		r * math.Cos(phi),
	}
}

// PlanarDistance returns the distance from the Y axis, i.e. the length of the
// projection onto the XZ orbital plane
func PlanarDistance(p mgl64.Vec3) float64 {
	return math.Hypot(p.X(), p.Z())
}
