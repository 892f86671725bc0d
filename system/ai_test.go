package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
)

func newAIWorld(ai component.AIBehavior, x, y float64) (*engine.World, *AISystem, core.Entity) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	w.Components.Velocity.Set(e, component.Velocity{})
	w.Components.AI.Set(e, ai)
	return w, NewAISystem(w), e
}

func TestAIChaseWithinRadius(t *testing.T) {
	w, sys, e := newAIWorld(component.AIBehavior{
		Kind:         component.BehaviorChase,
		Target:       "hero",
		DetectRadius: 200,
		Speed:        100,
	}, 0, 0)

	hero := w.CreateEntity()
	w.SetName(hero, "hero")
	w.Components.Transform.Set(hero, component.Transform{X: 100, Y: 0, ScaleX: 1, ScaleY: 1})

	sys.Update(w, 1.0/60.0)
	v, _ := w.Components.Velocity.Get(e)
	if math.Abs(v.VX-100) > 1e-9 || v.VY != 0 {
		t.Errorf("velocity = (%g, %g), want (100, 0)", v.VX, v.VY)
	}
}

func TestAIChaseOutOfRadiusStops(t *testing.T) {
	w, sys, e := newAIWorld(component.AIBehavior{
		Kind:         component.BehaviorChase,
		Target:       "hero",
		DetectRadius: 50,
		Speed:        100,
	}, 0, 0)

	hero := w.CreateEntity()
	w.SetName(hero, "hero")
	w.Components.Transform.Set(hero, component.Transform{X: 500, Y: 0, ScaleX: 1, ScaleY: 1})

	w.Components.Velocity.Set(e, component.Velocity{VX: 33})
	sys.Update(w, 1.0/60.0)
	v, _ := w.Components.Velocity.Get(e)
	if v.VX != 0 {
		t.Errorf("VX = %g, want 0 outside detect radius", v.VX)
	}
}

func TestAIPatrolTurnsAtRange(t *testing.T) {
	w, sys, e := newAIWorld(component.AIBehavior{
		Kind:        component.BehaviorPatrol,
		Speed:       60,
		PatrolRange: 10,
		Direction:   1,
	}, 0, 0)

	motion := NewMotionSystem(w)

	// Walk right until the edge, then the direction flips
	for i := 0; i < 15; i++ {
		sys.Update(w, 1.0/60.0)
		motion.Update(w, 1.0/60.0)
	}
	ai, _ := w.Components.AI.Get(e)
	if ai.Direction != -1 {
		t.Errorf("Direction = %g, want -1 after reaching patrol edge", ai.Direction)
	}

	// And back across the origin to the far edge
	for i := 0; i < 25; i++ {
		sys.Update(w, 1.0/60.0)
		motion.Update(w, 1.0/60.0)
	}
	ai, _ = w.Components.AI.Get(e)
	if ai.Direction != 1 {
		t.Errorf("Direction = %g, want 1 after far edge", ai.Direction)
	}
}

func TestAIIdleZeroesVelocity(t *testing.T) {
	w, sys, e := newAIWorld(component.AIBehavior{
		Kind:  component.BehaviorIdle,
		Speed: 100,
	}, 0, 0)
	w.Components.Velocity.Set(e, component.Velocity{VX: 5, VY: 7})

	sys.Update(w, 1.0/60.0)
	v, _ := w.Components.Velocity.Get(e)
	if v.VX != 0 || v.VY != 0 {
		t.Errorf("idle velocity = (%g, %g)", v.VX, v.VY)
	}
}
