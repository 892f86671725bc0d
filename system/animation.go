package system

import (
	"github.com/lixenwraith/sim2d/engine"
)

// AnimationSystem advances frame indices on a fixed cadence. The elapsed
// remainder is retained, so a frame duration that does not divide the
// tick evenly still averages the authored rate. A single large dt can
// advance several frames.
type AnimationSystem struct {
	engine.SystemBase
}

func NewAnimationSystem(w *engine.World) *AnimationSystem {
	return &AnimationSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *AnimationSystem) Name() string { return "animation" }

func (s *AnimationSystem) Update(w *engine.World, dt float64) {
	for _, e := range s.Components.Animation.Entities() {
		a := s.Components.Animation.GetPtr(e)
		// FrameCount 1 still advances so a non-looping one-frame
		// animation finishes like any other one-shot
		if a == nil || !a.Playing || a.FrameCount < 1 || a.FrameDuration <= 0 {
			continue
		}
		a.Elapsed += dt
		for a.Elapsed >= a.FrameDuration {
			a.Elapsed -= a.FrameDuration
			a.CurrentFrame++
			if a.CurrentFrame >= a.FrameCount {
				if a.Loop {
					a.CurrentFrame = 0
				} else {
					a.CurrentFrame = a.FrameCount - 1
					a.Playing = false
					a.Elapsed = 0
					break
				}
			}
		}
	}
}
