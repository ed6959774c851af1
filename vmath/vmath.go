// Package vmath holds the degree-based transform helpers the scene composes
// model-view matrices from. Matrices and vectors are mgl64 types.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rad converts degrees to radians
func Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// WrapDegrees maps an angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// RotateX returns a homogeneous rotation about +X by deg degrees
// Angle is wrapped first so unbounded accumulators keep trig precision
func RotateX(deg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(Rad(WrapDegrees(deg)))
}

// RotateY returns a homogeneous rotation about +Y by deg degrees
func RotateY(deg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(Rad(WrapDegrees(deg)))
}

// Translate returns a homogeneous translation
func Translate(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// TransformPoint applies m to a point (w = 1) and drops w
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformNormal applies the rotation part of m and renormalizes
// Valid for rigid transforms, which is all the scene composes
func TransformNormal(m mgl64.Mat4, n mgl64.Vec3) mgl64.Vec3 {
	v := m.Mat3().Mul3x1(n)
	if l := v.Len(); l > 0 {
		return v.Mul(1.0 / l)
	}
	return v
}
