package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Camera is a fixed look-at camera over a slowly turning world
// Yaw accumulates YawStep per Advance and is composed after the look-at
type Camera struct {
	Eye     mgl64.Vec3
	Target  mgl64.Vec3
	Up      mgl64.Vec3
	Yaw     float64
	YawStep float64
}

// NewCamera returns the default camera above and behind the origin
func NewCamera() *Camera {
	return &Camera{
		Eye:     mgl64.Vec3{parameter.EyeX, parameter.EyeY, parameter.EyeZ},
		Up:      mgl64.Vec3{parameter.UpX, parameter.UpY, parameter.UpZ},
		YawStep: parameter.WorldYawStep,
	}
}

// Advance turns the world one frame
func (c *Camera) Advance() {
	c.Yaw += c.YawStep
}

// View returns LookAt · RotY(Yaw)
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up).Mul4(vmath.RotateY(c.Yaw))
}
