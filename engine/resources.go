package engine

import (
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/event"
)

// TimeResource exposes the simulation clock to systems
type TimeResource struct {
	Delta   float64 // fixed step, seconds
	Elapsed float64 // simulated seconds since load
	Tick    uint64  // fixed ticks since load
}

// InputResource is the per-tick device snapshot the input system consumes
// Jump is the held state; edge detection happens in the system
type InputResource struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool
	MouseX      float64
	MouseY      float64
	MouseDown   bool
}

// CameraState is the resolved view the render adapter draws with
// Shake offsets are already folded into OffsetX/OffsetY
type CameraState struct {
	OffsetX, OffsetY float64
	Zoom             float64
	ViewportWidth    float64
	ViewportHeight   float64
}

// GravityResource is the world gravity in px/s², published at load time
// for systems that integrate motion outside the physics backend
type GravityResource struct {
	X, Y float64
}

// CollisionEvents carries the previous step's contact events into the
// current tick's systems; the game loop refills it after each sync
type CollisionEvents struct {
	Events []event.Event
}

// Particle is one live particle owned by the emitter system
type Particle struct {
	X, Y       float64
	VX, VY     float64
	GX, GY     float64
	Size       float64
	Age        float64
	Lifetime   float64
	StartColor core.RGB
	EndColor   core.RGB
}

// Color returns the age-interpolated particle color
func (p *Particle) Color() core.RGB {
	if p.Lifetime <= 0 {
		return p.StartColor
	}
	t := p.Age / p.Lifetime
	if t > 1 {
		t = 1
	}
	return p.StartColor.Blend(p.EndColor, t)
}

// ParticleBuffer publishes live particles for the render adapter
type ParticleBuffer struct {
	Particles []Particle
}
