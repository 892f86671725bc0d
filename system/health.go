package system

import (
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/event"
	"github.com/lixenwraith/sim2d/parameter"
)

// HealthSystem applies contact damage and reaps dead entities. An enemy
// touching an entity with Health deals fixed damage, then the target is
// invulnerable for a short cooldown so a lasting contact does not drain
// per tick. Entities reaching zero are destroyed after the pass.
type HealthSystem struct {
	engine.SystemBase
	dead []core.Entity
}

func NewHealthSystem(w *engine.World) *HealthSystem {
	return &HealthSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *HealthSystem) Name() string { return "health" }

func (s *HealthSystem) Update(w *engine.World, dt float64) {
	for _, e := range s.Components.Health.Entities() {
		h := s.Components.Health.GetPtr(e)
		if h != nil && h.Cooldown > 0 {
			h.Cooldown -= dt
		}
	}

	if events, ok := engine.GetResource[*engine.CollisionEvents](w.Resources); ok {
		for _, ev := range events.Events {
			if ev.Type != event.EventCollisionBegin || ev.Collision.Sensor {
				continue
			}
			s.damage(w, ev.Collision.A, ev.Collision.B)
			s.damage(w, ev.Collision.B, ev.Collision.A)
		}
	}

	s.dead = s.dead[:0]
	for _, e := range s.Components.Health.Entities() {
		if h, ok := s.Components.Health.Get(e); ok && h.Current <= 0 {
			s.dead = append(s.dead, e)
		}
	}
	for _, e := range s.dead {
		w.DestroyEntity(e)
	}
}

// damage applies contact damage to victim when attacker is an enemy
func (s *HealthSystem) damage(w *engine.World, attacker, victim core.Entity) {
	if !w.HasTag(attacker, TagEnemy) || w.HasTag(victim, TagEnemy) {
		return
	}
	h := s.Components.Health.GetPtr(victim)
	if h == nil || h.Cooldown > 0 {
		return
	}
	h.Current -= parameter.ContactDamage
	h.Cooldown = parameter.ContactDamageCooldown
}
