package engine

import (
	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
)

// ComponentStore holds one typed store per component kind
// Systems cache the pointer via SystemBase to avoid per-tick lookups
type ComponentStore struct {
	Transform *Store[component.Transform]
	Velocity  *Store[component.Velocity]
	Sprite    *Store[component.Sprite]
	Collider  *Store[component.Collider]
	Input     *Store[component.Input]
	Health    *Store[component.Health]
	AI        *Store[component.AIBehavior]
	Animation *Store[component.Animation]
	Camera    *Store[component.Camera]
	Emitter   *Store[component.ParticleEmitter]
	Audio     *Store[component.Audio]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.Transform](),
		Velocity:  NewStore[component.Velocity](),
		Sprite:    NewStore[component.Sprite](),
		Collider:  NewStore[component.Collider](),
		Input:     NewStore[component.Input](),
		Health:    NewStore[component.Health](),
		AI:        NewStore[component.AIBehavior](),
		Animation: NewStore[component.Animation](),
		Camera:    NewStore[component.Camera](),
		Emitter:   NewStore[component.ParticleEmitter](),
		Audio:     NewStore[component.Audio](),
	}
}

// removeAll strips every component kind from an entity
func (c *ComponentStore) removeAll(e core.Entity) {
	c.Transform.Remove(e)
	c.Velocity.Remove(e)
	c.Sprite.Remove(e)
	c.Collider.Remove(e)
	c.Input.Remove(e)
	c.Health.Remove(e)
	c.AI.Remove(e)
	c.Animation.Remove(e)
	c.Camera.Remove(e)
	c.Emitter.Remove(e)
	c.Audio.Remove(e)
}

// clear wipes every store
func (c *ComponentStore) clear() {
	c.Transform.Clear()
	c.Velocity.Clear()
	c.Sprite.Clear()
	c.Collider.Clear()
	c.Input.Clear()
	c.Health.Clear()
	c.AI.Clear()
	c.Animation.Clear()
	c.Camera.Clear()
	c.Emitter.Clear()
	c.Audio.Clear()
}
