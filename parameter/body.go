package parameter

// Sun
const (
	// SunBaseRadius is scaled by Scale/10 to give the core radius
	SunBaseRadius = 15.0
	SunRadius     = SunBaseRadius * Scale / 10

	// SunSpinStep is the sun's own rotation per frame, degrees
	SunSpinStep = 1.2

	// SunShellStep grows each gradient shell by this fraction of the core radius
	SunShellStep = 0.3
)

// Plasma particles around the sun
const (
	PlasmaPoints = 500

	// PlasmaShellMin/Max bound the particle radius as multiples of SunRadius
	PlasmaShellMin = 1.5
	PlasmaShellMax = 2.2

	// PlasmaIntensityMin/Max bound the per-point brightness factor
	PlasmaIntensityMin = 0.7
	PlasmaIntensityMax = 1.0

	// PlasmaGreen scales intensity into the green channel (orange toward white)
	PlasmaGreen = 0.4
	PlasmaAlpha = 0.4
)

// Rings, as multiples of the body radius
const (
	RingTilt = 100.0

	InnerRingMin = 1.2
	InnerRingMax = 1.6
	OuterRingMin = 1.9
	OuterRingMax = 2.1

	RingShininess = 80.0
)

// Planets: catalog radii are doubled after scaling
const PlanetRadiusFactor = 2.0
