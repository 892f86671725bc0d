package registry

import (
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/system"
)

// Built-in systems available to every spec document
// The registration order here is irrelevant; documents pick their own
// execution order through the systems array
func init() {
	Register("physics", func(w *engine.World) engine.System { return system.NewMotionSystem(w) })
	Register("input", func(w *engine.World) engine.System { return system.NewInputSystem(w) })
	Register("collision", func(w *engine.World) engine.System { return system.NewCollisionSystem(w) })
	Register("animation", func(w *engine.World) engine.System { return system.NewAnimationSystem(w) })
	Register("camera", func(w *engine.World) engine.System { return system.NewCameraSystem(w) })
	Register("particles", func(w *engine.World) engine.System { return system.NewParticleSystem(w) })
	Register("audio", func(w *engine.World) engine.System { return system.NewAudioSystem(w) })
	Register("ai", func(w *engine.World) engine.System { return system.NewAISystem(w) })
	Register("health", func(w *engine.World) engine.System { return system.NewHealthSystem(w) })
}
