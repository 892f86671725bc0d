package system

import (
	"math"

	"github.com/lixenwraith/sim2d/audio"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/vmath"
)

// AudioSystem translates Audio component state into engine voices.
// Playing transitions are edge-triggered against WasPlaying, so systems
// and external callers start a sound by flipping the flag. Spatial
// sources fade linearly with distance from the camera center.
type AudioSystem struct {
	engine.SystemBase
	eng *audio.Engine
}

func NewAudioSystem(w *engine.World) *AudioSystem {
	return &AudioSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Init(w *engine.World) {
	// Headless worlds carry no engine; every call below is nil-safe
	if eng, ok := engine.GetResource[*audio.Engine](w.Resources); ok {
		s.eng = eng
	}
}

func (s *AudioSystem) Update(w *engine.World, _ float64) {
	camX, camY := 0.0, 0.0
	haveCam := false
	if cam, ok := engine.GetResource[*engine.CameraState](w.Resources); ok && cam.Zoom > 0 {
		camX = cam.OffsetX + cam.ViewportWidth/cam.Zoom/2
		camY = cam.OffsetY + cam.ViewportHeight/cam.Zoom/2
		haveCam = true
	}

	for _, e := range s.Components.Audio.Entities() {
		a := s.Components.Audio.GetPtr(e)
		if a == nil {
			continue
		}
		switch {
		case a.Playing && !a.WasPlaying:
			s.eng.Play(e, a.Source, a.Volume, a.Pitch, a.Loop)
		case !a.Playing && a.WasPlaying:
			s.eng.Stop(e)
		}
		a.WasPlaying = a.Playing

		// A finished one-shot voice clears the flag for the next trigger
		if s.eng != nil && a.Playing && !a.Loop && !s.eng.Playing(e) {
			a.Playing = false
			a.WasPlaying = false
		}

		if a.Playing && a.Spatial && haveCam && a.MaxDistance > 0 {
			if t, ok := s.Components.Transform.Get(e); ok {
				d := math.Sqrt(vmath.DistanceSq(t.X, t.Y, camX, camY))
				factor := vmath.Clamp(1-d/a.MaxDistance, 0, 1)
				s.eng.SetVolume(e, a.Volume*factor)
			}
		}
	}
}
