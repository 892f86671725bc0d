package spec

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
)

// Snapshot captures the world back into a document, entities in creation
// order. Defaults are written out explicitly so the output is stable and
// readable without the defaults table.
func Snapshot(w *engine.World) *GameSpec {
	doc := &GameSpec{Version: CurrentVersion}
	if lc, ok := engine.GetResource[*LoadedConfig](w.Resources); ok {
		doc.Metadata = lc.Metadata
		doc.Config = lc.Config
	}

	for _, e := range w.Entities() {
		ent := EntitySpec{
			Name: w.Name(e),
			Tags: w.Tags(e),
		}
		snapshotComponents(w, e, &ent.Components)
		doc.Entities = append(doc.Entities, ent)
	}

	for _, sys := range w.Systems() {
		doc.Systems = append(doc.Systems, sys.Name())
	}
	return doc
}

// Encode serializes a document as indented JSON
func Encode(doc *GameSpec) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "spec: encode")
	}
	return data, nil
}

// Save snapshots a world and writes the document to disk
func Save(w *engine.World, path string) error {
	data, err := Encode(Snapshot(w))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "spec: write %s", path)
	}
	return nil
}

func snapshotComponents(w *engine.World, e core.Entity, c *ComponentSpec) {
	cs := &w.Components

	if t, ok := cs.Transform.Get(e); ok {
		c.Transform = &TransformSpec{
			X:        t.X,
			Y:        t.Y,
			Rotation: floatPtr(t.Rotation),
			ScaleX:   floatPtr(t.ScaleX),
			ScaleY:   floatPtr(t.ScaleY),
		}
	}
	if v, ok := cs.Velocity.Get(e); ok {
		c.Velocity = &VelocitySpec{VX: v.VX, VY: v.VY}
	}
	if s, ok := cs.Sprite.Get(e); ok {
		sp := &SpriteSpec{
			Texture: s.Texture,
			Width:   s.Width,
			Height:  s.Height,
			Visible: boolPtr(s.Visible),
			ZIndex:  intPtr(s.ZIndex),
			AnchorX: floatPtr(s.AnchorX),
			AnchorY: floatPtr(s.AnchorY),
			FlipX:   s.FlipX,
			FlipY:   s.FlipY,
		}
		if s.HasTint {
			sp.Tint = &ColorSpec{R: s.Tint.R, G: s.Tint.G, B: s.Tint.B}
		}
		if s.HasFrame {
			sp.Frame = &FrameSpec{
				X: s.Frame.X, Y: s.Frame.Y,
				Width: s.Frame.Width, Height: s.Frame.Height,
			}
		}
		c.Sprite = sp
	}
	if col, ok := cs.Collider.Get(e); ok {
		c.Collider = &ColliderSpec{
			Shape:    string(col.Shape),
			Width:    col.Width,
			Height:   col.Height,
			Radius:   col.Radius,
			IsSensor: col.IsSensor,
			Layer:    col.Layer,
		}
	}
	if in, ok := cs.Input.Get(e); ok {
		c.Input = &InputSpec{MoveSpeed: in.MoveSpeed, JumpForce: in.JumpForce}
	}
	if h, ok := cs.Health.Get(e); ok {
		c.Health = &HealthSpec{Current: h.Current, Max: h.Max}
	}
	if ai, ok := cs.AI.Get(e); ok {
		c.AIBehavior = &AIBehaviorSpec{
			Kind:         string(ai.Kind),
			Target:       ai.Target,
			DetectRadius: floatPtr(ai.DetectRadius),
			Speed:        floatPtr(ai.Speed),
			PatrolRange:  floatPtr(ai.PatrolRange),
		}
	}
	if an, ok := cs.Animation.Get(e); ok {
		c.Animation = &AnimationSpec{
			FrameCount:    an.FrameCount,
			FrameDuration: floatPtr(an.FrameDuration),
			CurrentFrame:  an.CurrentFrame,
			Playing:       boolPtr(an.Playing),
			Loop:          boolPtr(an.Loop),
		}
	}
	if cam, ok := cs.Camera.Get(e); ok {
		c.Camera = &CameraSpec{
			OffsetX:         cam.OffsetX,
			OffsetY:         cam.OffsetY,
			Zoom:            floatPtr(cam.Zoom),
			FollowTarget:    cam.FollowTarget,
			FollowSmoothing: floatPtr(cam.FollowSmoothing),
			ViewportWidth:   cam.ViewportWidth,
			ViewportHeight:  cam.ViewportHeight,
			ShakeIntensity:  cam.ShakeIntensity,
			ShakeDuration:   cam.ShakeDuration,
			Active:          boolPtr(cam.Active),
		}
	}
	if pe, ok := cs.Emitter.Get(e); ok {
		out := &ParticleEmitterSpec{
			Rate:         floatPtr(pe.Rate),
			MaxParticles: intPtr(pe.MaxParticles),
			LifetimeMin:  floatPtr(pe.LifetimeMin),
			LifetimeMax:  floatPtr(pe.LifetimeMax),
			SizeMin:      floatPtr(pe.SizeMin),
			SizeMax:      floatPtr(pe.SizeMax),
			SpeedMin:     floatPtr(pe.SpeedMin),
			SpeedMax:     floatPtr(pe.SpeedMax),
			AngleMin:     floatPtr(pe.AngleMin),
			AngleMax:     floatPtr(pe.AngleMax),
			StartColor:   &ColorSpec{R: pe.StartColor.R, G: pe.StartColor.G, B: pe.StartColor.B},
			EndColor:     &ColorSpec{R: pe.EndColor.R, G: pe.EndColor.G, B: pe.EndColor.B},
			Emitting:     boolPtr(pe.Emitting),
			Burst:        pe.Burst,
		}
		if pe.HasGravity {
			out.Gravity = &Vec2Spec{X: pe.GravityX, Y: pe.GravityY}
		}
		c.ParticleEmitter = out
	}
	if a, ok := cs.Audio.Get(e); ok {
		c.Audio = &AudioSpec{
			Source:      a.Source,
			Volume:      floatPtr(a.Volume),
			Pitch:       floatPtr(a.Pitch),
			Playing:     a.Playing,
			Loop:        a.Loop,
			Spatial:     a.Spatial,
			MaxDistance: floatPtr(a.MaxDistance),
		}
	}
}
