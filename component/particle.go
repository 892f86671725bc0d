package component

import (
	"github.com/lixenwraith/sim2d/core"
)

// ParticleEmitter spawns short-lived particles at a fixed rate
// Angle range is in degrees; gravity override replaces the world gravity
// for this emitter's particles only
type ParticleEmitter struct {
	Rate         float64 // particles per second
	MaxParticles int
	LifetimeMin  float64
	LifetimeMax  float64
	SizeMin      float64
	SizeMax      float64
	SpeedMin     float64
	SpeedMax     float64
	AngleMin     float64
	AngleMax     float64
	StartColor   core.RGB
	EndColor     core.RGB
	GravityX     float64
	GravityY     float64
	HasGravity   bool
	Emitting     bool
	Burst        int

	// Runtime spawn accumulator, fractional
	Accumulator float64
	BurstDone   bool
}
