package system

import (
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/parameter"
	"github.com/lixenwraith/sim2d/vmath"
)

// CameraSystem resolves the active camera and publishes the view the
// render adapter draws with. Follow eases the offset toward the target
// each tick; shake adds a decaying random jitter on top. Setting
// ShakeIntensity plus ShakeDuration arms a shake; the system consumes
// the request and counts the remaining window down.
type CameraSystem struct {
	engine.SystemBase
	rng *vmath.FastRand
}

func NewCameraSystem(w *engine.World) *CameraSystem {
	return &CameraSystem{
		SystemBase: engine.NewSystemBase(w),
		rng:        vmath.NewFastRand(parameter.DefaultSeed),
	}
}

func (s *CameraSystem) Name() string { return "camera" }

func (s *CameraSystem) Update(w *engine.World, dt float64) {
	for _, e := range s.Components.Camera.Entities() {
		cam := s.Components.Camera.GetPtr(e)
		if cam == nil || !cam.Active {
			continue
		}

		vw, vh := cam.ViewportWidth, cam.ViewportHeight
		if vw <= 0 || vh <= 0 {
			if prev, ok := engine.GetResource[*engine.CameraState](w.Resources); ok {
				vw, vh = prev.ViewportWidth, prev.ViewportHeight
			}
		}

		if cam.FollowTarget != "" {
			if target, ok := w.EntityByName(cam.FollowTarget); ok {
				if t, ok := s.Components.Transform.Get(target); ok {
					zoom := cam.Zoom
					if zoom <= 0 {
						zoom = 1
					}
					wantX := t.X - vw/zoom/2
					wantY := t.Y - vh/zoom/2
					cam.OffsetX = vmath.Lerp(cam.OffsetX, wantX, cam.FollowSmoothing)
					cam.OffsetY = vmath.Lerp(cam.OffsetY, wantY, cam.FollowSmoothing)
				}
			}
		}

		if cam.ShakeDuration > 0 {
			cam.ShakeRemaining = cam.ShakeDuration
			cam.ShakeDuration = 0
		}
		shakeX, shakeY := 0.0, 0.0
		if cam.ShakeRemaining > 0 {
			cam.ShakeRemaining -= dt
			if cam.ShakeRemaining < 0 {
				cam.ShakeRemaining = 0
			}
			mag := cam.ShakeIntensity * cam.ShakeRemaining
			shakeX = s.rng.Range(-mag, mag)
			shakeY = s.rng.Range(-mag, mag)
		}

		engine.AddResource(w.Resources, &engine.CameraState{
			OffsetX:        cam.OffsetX + shakeX,
			OffsetY:        cam.OffsetY + shakeY,
			Zoom:           cam.Zoom,
			ViewportWidth:  vw,
			ViewportHeight: vh,
		})
		// First active camera wins; documents should author one
		return
	}
}
