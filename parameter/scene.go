package parameter

import "time"

// Scene scale and motion
const (
	// Scale multiplies catalog distances and radii into world units
	Scale = 6.0

	// Tilt is the axial tilt in degrees applied about X before each orbit
	Tilt = 0.0

	// WorldYawStep is the world rotation about Y added every frame, degrees
	WorldYawStep = 0.5

	// SpinFactor is self-rotation speed relative to orbital angle
	SpinFactor = 3.0
)

// Frame pacing
const (
	FrameRate   = 30
	FramePeriod = time.Second / FrameRate
)

// Camera is fixed: eye above and behind the origin looking at it, Y up
const (
	EyeX = 0.0
	EyeY = 200.0
	EyeZ = 500.0

	UpX = 0.0
	UpY = 1.0
	UpZ = 0.0
)
