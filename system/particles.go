package system

import (
	"math"

	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/parameter"
	"github.com/lixenwraith/sim2d/vmath"
)

// ParticleSystem spawns, ages and kills particles per emitter, then
// publishes the flattened buffer for the render adapter. Emitters cap
// their own particle count; spawning pauses at the cap and resumes as
// particles expire. The rng is seeded once, so runs replay identically.
type ParticleSystem struct {
	engine.SystemBase
	rng  *vmath.FastRand
	live map[core.Entity][]engine.Particle
	buf  engine.ParticleBuffer
}

func NewParticleSystem(w *engine.World) *ParticleSystem {
	return &ParticleSystem{
		SystemBase: engine.NewSystemBase(w),
		rng:        vmath.NewFastRand(parameter.DefaultSeed),
		live:       make(map[core.Entity][]engine.Particle),
	}
}

func (s *ParticleSystem) Name() string { return "particles" }

func (s *ParticleSystem) Update(w *engine.World, dt float64) {
	gravity := engine.GravityResource{}
	if g, ok := engine.GetResource[*engine.GravityResource](w.Resources); ok {
		gravity = *g
	}

	// Drop pools of destroyed emitters
	for e := range s.live {
		if !s.Components.Emitter.Has(e) {
			delete(s.live, e)
		}
	}

	for _, e := range s.Components.Emitter.Entities() {
		em := s.Components.Emitter.GetPtr(e)
		t, ok := s.Components.Transform.Get(e)
		if em == nil || !ok {
			continue
		}

		pool := s.live[e]

		// Age and kill, swap-remove keeps it allocation-free
		for i := 0; i < len(pool); {
			p := &pool[i]
			p.Age += dt
			if p.Age >= p.Lifetime {
				pool[i] = pool[len(pool)-1]
				pool = pool[:len(pool)-1]
				continue
			}
			p.VX += p.GX * dt
			p.VY += p.GY * dt
			p.X += p.VX * dt
			p.Y += p.VY * dt
			i++
		}

		gx, gy := gravity.X, gravity.Y
		if em.HasGravity {
			gx = em.GravityX * parameter.GravityScale
			gy = em.GravityY * parameter.GravityScale
		}

		spawn := 0
		if em.Burst > 0 && !em.BurstDone {
			spawn += em.Burst
			em.BurstDone = true
		}
		if em.Emitting && em.Rate > 0 {
			em.Accumulator += em.Rate * dt
			whole := math.Floor(em.Accumulator)
			em.Accumulator -= whole
			spawn += int(whole)
		}
		for i := 0; i < spawn && len(pool) < em.MaxParticles; i++ {
			angle := vmath.DegToRad(s.rng.Range(em.AngleMin, em.AngleMax))
			speed := s.rng.Range(em.SpeedMin, em.SpeedMax)
			pool = append(pool, engine.Particle{
				X: t.X, Y: t.Y,
				VX: math.Cos(angle) * speed,
				VY: math.Sin(angle) * speed,
				GX: gx, GY: gy,
				Size:       s.rng.Range(em.SizeMin, em.SizeMax),
				Lifetime:   s.rng.Range(em.LifetimeMin, em.LifetimeMax),
				StartColor: em.StartColor,
				EndColor:   em.EndColor,
			})
		}
		s.live[e] = pool
	}

	// Flatten in emitter store order so frames are reproducible
	s.buf.Particles = s.buf.Particles[:0]
	for _, e := range s.Components.Emitter.Entities() {
		s.buf.Particles = append(s.buf.Particles, s.live[e]...)
	}
	engine.AddResource(w.Resources, &s.buf)
}

// Count returns the number of live particles for an emitter
func (s *ParticleSystem) Count(e core.Entity) int {
	return len(s.live[e])
}
