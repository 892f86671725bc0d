package parameter

// Physics backend tuning
const (
	// GravityScale converts spec gravity units (g-style, {0,1} = normal
	// downward gravity) into pixel acceleration per second squared
	GravityScale = 1000.0

	// BodyMass is the uniform dynamic body mass; the spec models no mass,
	// so collisions resolve with equal weighting
	BodyMass = 1.0

	// BodyFriction applied to every shape
	BodyFriction = 0.7

	// GroundedSpeedEpsilon: a body whose vertical speed is below this is
	// considered grounded for the jump edge trigger (px/s)
	GroundedSpeedEpsilon = 1.0

	// FenceThickness of the static world-bounds segments (px)
	FenceThickness = 4.0
)

// Contact damage tuning for the health system
const (
	ContactDamage         = 10.0
	ContactDamageCooldown = 0.5 // seconds of invulnerability after a hit
)
