package system

import (
	"math"

	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/parameter"
)

// InputSystem steers entities carrying the Input component from the
// per-tick device snapshot. Horizontal velocity follows the held axis;
// jump fires on the key's rising edge while the entity is grounded.
type InputSystem struct {
	engine.SystemBase
	prevJump bool
}

func NewInputSystem(w *engine.World) *InputSystem {
	return &InputSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Update(w *engine.World, _ float64) {
	in, ok := engine.GetResource[*engine.InputResource](w.Resources)
	if !ok {
		return
	}
	jumpEdge := in.Jump && !s.prevJump
	s.prevJump = in.Jump

	axis := 0.0
	if in.Left {
		axis -= 1
	}
	if in.Right {
		axis += 1
	}

	for _, e := range s.Components.Input.Entities() {
		ctrl, _ := s.Components.Input.Get(e)
		v := s.Components.Velocity.GetPtr(e)
		if v == nil {
			continue
		}
		v.VX = axis * ctrl.MoveSpeed
		// Grounded when vertical motion has settled; y-down axis makes
		// jumps negative
		if jumpEdge && math.Abs(v.VY) < parameter.GroundedSpeedEpsilon {
			v.VY = -ctrl.JumpForce
		}
	}
}
