package system

import (
	"math"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/vmath"
)

// AISystem steers entities with an AIBehavior by writing Velocity.
// Bodied entities get horizontal steering only, so physics gravity keeps
// working; free entities are driven on both axes.
type AISystem struct {
	engine.SystemBase
}

func NewAISystem(w *engine.World) *AISystem {
	return &AISystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *AISystem) Name() string { return "ai" }

func (s *AISystem) Update(w *engine.World, _ float64) {
	for _, e := range s.Components.AI.Entities() {
		ai := s.Components.AI.GetPtr(e)
		t := s.Components.Transform.GetPtr(e)
		v := s.Components.Velocity.GetPtr(e)
		if ai == nil || t == nil || v == nil {
			continue
		}
		bodied := s.Components.Collider.Has(e)

		switch ai.Kind {
		case component.BehaviorChase:
			s.chase(w, ai, t, v, bodied)
		case component.BehaviorPatrol:
			s.patrol(ai, t, v)
		default:
			v.VX = 0
			if !bodied {
				v.VY = 0
			}
		}
	}
}

func (s *AISystem) chase(w *engine.World, ai *component.AIBehavior, t *component.Transform, v *component.Velocity, bodied bool) {
	target, ok := w.EntityByName(ai.Target)
	if !ok {
		v.VX = 0
		if !bodied {
			v.VY = 0
		}
		return
	}
	tt, ok := s.Components.Transform.Get(target)
	if !ok {
		return
	}
	if vmath.DistanceSq(t.X, t.Y, tt.X, tt.Y) > ai.DetectRadius*ai.DetectRadius {
		v.VX = 0
		if !bodied {
			v.VY = 0
		}
		return
	}
	nx, ny := vmath.Normalize(tt.X-t.X, tt.Y-t.Y)
	v.VX = nx * ai.Speed
	if !bodied {
		v.VY = ny * ai.Speed
	}
}

func (s *AISystem) patrol(ai *component.AIBehavior, t *component.Transform, v *component.Velocity) {
	if !ai.OriginSet {
		ai.OriginX = t.X
		ai.OriginSet = true
		if ai.Direction == 0 {
			ai.Direction = 1
		}
	}
	// Turn around at the patrol edge
	if math.Abs(t.X-ai.OriginX) >= ai.PatrolRange {
		if t.X > ai.OriginX {
			ai.Direction = -1
		} else {
			ai.Direction = 1
		}
	}
	v.VX = ai.Direction * ai.Speed
}
