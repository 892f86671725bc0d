package system

import (
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/event"
)

// Tags with gameplay meaning to the built-in systems
const (
	TagPlayer      = "player"
	TagCollectible = "collectible"
	TagEnemy       = "enemy"
)

// CollisionSystem consumes contact events for pickup rules: a sensor
// overlap between a player and a collectible destroys the collectible.
// Destruction is deferred to the end of the pass so event handling never
// observes a half-removed entity.
type CollisionSystem struct {
	engine.SystemBase
	doomed []core.Entity
}

func NewCollisionSystem(w *engine.World) *CollisionSystem {
	return &CollisionSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Update(w *engine.World, _ float64) {
	events, ok := engine.GetResource[*engine.CollisionEvents](w.Resources)
	if !ok {
		return
	}
	s.doomed = s.doomed[:0]
	for _, ev := range events.Events {
		if ev.Type != event.EventCollisionBegin || !ev.Collision.Sensor {
			continue
		}
		if c := pickupTarget(w, ev.Collision.A, ev.Collision.B); c != core.InvalidEntity {
			s.doomed = append(s.doomed, c)
		}
	}
	for _, e := range s.doomed {
		w.DestroyEntity(e)
	}
}

// pickupTarget returns the collectible half of a player/collectible pair
func pickupTarget(w *engine.World, a, b core.Entity) core.Entity {
	if w.HasTag(a, TagPlayer) && w.HasTag(b, TagCollectible) {
		return b
	}
	if w.HasTag(b, TagPlayer) && w.HasTag(a, TagCollectible) {
		return a
	}
	return core.InvalidEntity
}
