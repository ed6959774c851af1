package parameter

// Window surface
const (
	ScreenWidth  = 1600
	ScreenHeight = 800
	WindowTitle  = "Solar System"
)

// Projection
const (
	FovY = 45.0
	Near = 1.0
	Far  = 10000.0
)

// Tessellation is fixed at compile time
const (
	SphereSlices = 64
	SphereStacks = 64
	DiskSlices   = 64
	DiskLoops    = 1
)

// Fixed-function lighting defaults: one white light, dim global ambient
const (
	// GlobalAmbient is the scene ambient intensity
	GlobalAmbient = 0.2
	// MaterialAmbient is the default material ambient reflectance
	MaterialAmbient = 0.2
	// MaterialDiffuse is the default material diffuse reflectance
	MaterialDiffuse = 0.8
)

// PointSize is the plasma point edge in pixels at ScreenHeight
const PointSize = 2.5
