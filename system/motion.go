package system

import (
	"github.com/lixenwraith/sim2d/engine"
)

// MotionSystem integrates Velocity into Transform for entities without a
// rigid body. Bodied entities are moved by the physics backend instead;
// touching their Transform here would fight the sync.
type MotionSystem struct {
	engine.SystemBase
}

func NewMotionSystem(w *engine.World) *MotionSystem {
	return &MotionSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *MotionSystem) Name() string { return "physics" }

func (s *MotionSystem) Update(w *engine.World, dt float64) {
	for _, e := range s.Components.Velocity.Entities() {
		if s.Components.Collider.Has(e) {
			continue
		}
		t := s.Components.Transform.GetPtr(e)
		if t == nil {
			continue
		}
		v, _ := s.Components.Velocity.Get(e)
		t.X += v.VX * dt
		t.Y += v.VY * dt
	}
}
