package spec

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/parameter"
	"github.com/lixenwraith/sim2d/registry"
)

// PhysicsConfigurer receives the document-level world settings during load
// The physics adapter implements it; tests pass nil
type PhysicsConfigurer interface {
	Configure(gravity core.Vec2, bounds core.Rect)
}

// LoadedConfig preserves document-level fields across a load so Snapshot
// can round-trip them
type LoadedConfig struct {
	Metadata Metadata
	Config   Config
}

// Decode parses and validates a spec document. Validation collects every
// defect before rejecting, so one pass reports all problems.
func Decode(data []byte) (*GameSpec, error) {
	var doc GameSpec
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "spec: malformed JSON")
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeFile reads and decodes a spec document from disk
func DecodeFile(path string) (*GameSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "spec: read %s", path)
	}
	return Decode(data)
}

// Validate checks structural and semantic rules without touching a world
// All defects are collected and joined into one error
func Validate(doc *GameSpec) error {
	var errs []error
	fail := func(path, format string, args ...any) {
		errs = append(errs, specErrf(path, format, args...))
	}

	if doc.Version != CurrentVersion {
		fail("version", "unsupported version %q, want %q", doc.Version, CurrentVersion)
	}
	switch doc.Metadata.Genre {
	case "", "platformer", "shooter", "puzzle":
	default:
		fail("metadata.genre", "unknown genre %q", doc.Metadata.Genre)
	}
	if doc.Config.WorldBounds.Width < 0 || doc.Config.WorldBounds.Height < 0 {
		fail("config.worldBounds", "negative bounds %gx%g",
			doc.Config.WorldBounds.Width, doc.Config.WorldBounds.Height)
	}

	seen := make(map[string]int, len(doc.Entities))
	for i, ent := range doc.Entities {
		path := fmt.Sprintf("entities[%d]", i)
		if ent.Name == "" {
			fail(path+".name", "missing name")
		} else if prev, dup := seen[ent.Name]; dup {
			fail(path+".name", "duplicate name %q, first used by entities[%d]", ent.Name, prev)
		} else {
			seen[ent.Name] = i
		}
		validateComponents(path+".components", &ent.Components, fail)
	}

	for i, name := range doc.Systems {
		if !registry.Known(name) {
			fail(fmt.Sprintf("systems[%d]", i), "unknown system %q", name)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateComponents(path string, c *ComponentSpec, fail func(string, string, ...any)) {
	if col := c.Collider; col != nil {
		switch col.Shape {
		case "box", "circle":
		default:
			fail(path+".collider.shape", "unknown shape %q", col.Shape)
		}
		if col.Width < 0 || col.Height < 0 || col.Radius < 0 {
			fail(path+".collider", "negative dimensions")
		}
	}
	if ai := c.AIBehavior; ai != nil {
		switch ai.Kind {
		case "chase", "patrol", "idle":
		default:
			fail(path+".aiBehavior.kind", "unknown kind %q", ai.Kind)
		}
	}
	if an := c.Animation; an != nil {
		if an.FrameCount < 1 {
			fail(path+".animation.frameCount", "must be at least 1, got %d", an.FrameCount)
		}
		if an.FrameDuration != nil && *an.FrameDuration <= 0 {
			fail(path+".animation.frameDuration", "must be positive, got %g", *an.FrameDuration)
		}
	}
	if sp := c.Sprite; sp != nil {
		if sp.Width < 0 || sp.Height < 0 {
			fail(path+".sprite", "negative dimensions")
		}
	}
	if h := c.Health; h != nil {
		if h.Max <= 0 {
			fail(path+".health.max", "must be positive, got %g", h.Max)
		}
	}
	if a := c.Audio; a != nil && a.Source == "" {
		fail(path+".audio.source", "missing source")
	}
}

// Load populates a world from a validated document. The world is cleared
// first; entities are created in document order so creation order matches
// authoring order. ph may be nil when no physics backend is attached.
func Load(w *engine.World, ph PhysicsConfigurer, doc *GameSpec) error {
	if err := Validate(doc); err != nil {
		return err
	}

	w.Clear()

	engine.AddResource(w.Resources, &LoadedConfig{
		Metadata: doc.Metadata,
		Config:   doc.Config,
	})
	engine.AddResource(w.Resources, &engine.GravityResource{
		X: doc.Config.Gravity.X * parameter.GravityScale,
		Y: doc.Config.Gravity.Y * parameter.GravityScale,
	})
	if ph != nil {
		ph.Configure(
			core.Vec2{X: doc.Config.Gravity.X, Y: doc.Config.Gravity.Y},
			core.Rect{Width: doc.Config.WorldBounds.Width, Height: doc.Config.WorldBounds.Height},
		)
	}

	for i := range doc.Entities {
		ent := &doc.Entities[i]
		e := w.CreateEntity()
		w.SetName(e, ent.Name)
		for _, tag := range ent.Tags {
			w.AddTag(e, tag)
		}
		applyComponents(w, e, &ent.Components)
	}

	for _, name := range doc.Systems {
		sys, err := registry.New(name, w)
		if err != nil {
			return err
		}
		w.RegisterSystem(sys)
	}
	return nil
}

func applyComponents(w *engine.World, e core.Entity, c *ComponentSpec) {
	cs := &w.Components

	if t := c.Transform; t != nil {
		cs.Transform.Set(e, component.Transform{
			X:        t.X,
			Y:        t.Y,
			Rotation: floatOr(t.Rotation, DefaultRotation),
			ScaleX:   floatOr(t.ScaleX, DefaultScale),
			ScaleY:   floatOr(t.ScaleY, DefaultScale),
		})
	}
	if v := c.Velocity; v != nil {
		cs.Velocity.Set(e, component.Velocity{VX: v.VX, VY: v.VY})
	}
	if s := c.Sprite; s != nil {
		sprite := component.Sprite{
			Texture: s.Texture,
			Width:   s.Width,
			Height:  s.Height,
			Visible: boolOr(s.Visible, DefaultVisible),
			ZIndex:  intOr(s.ZIndex, DefaultZIndex),
			AnchorX: floatOr(s.AnchorX, DefaultAnchor),
			AnchorY: floatOr(s.AnchorY, DefaultAnchor),
			FlipX:   s.FlipX,
			FlipY:   s.FlipY,
		}
		if s.Tint != nil {
			sprite.Tint = core.RGB{R: s.Tint.R, G: s.Tint.G, B: s.Tint.B}
			sprite.HasTint = true
		}
		if s.Frame != nil {
			sprite.Frame = component.FrameRect{
				X: s.Frame.X, Y: s.Frame.Y,
				Width: s.Frame.Width, Height: s.Frame.Height,
			}
			sprite.HasFrame = true
		}
		cs.Sprite.Set(e, sprite)
		if s.Texture != "" {
			w.RegisterTexture(s.Texture, s.Texture)
		}
	}
	if col := c.Collider; col != nil {
		cs.Collider.Set(e, component.Collider{
			Shape:    component.Shape(col.Shape),
			Width:    col.Width,
			Height:   col.Height,
			Radius:   col.Radius,
			IsSensor: col.IsSensor,
			Layer:    col.Layer,
		})
	}
	if in := c.Input; in != nil {
		cs.Input.Set(e, component.Input{
			MoveSpeed: in.MoveSpeed,
			JumpForce: in.JumpForce,
		})
	}
	if h := c.Health; h != nil {
		cur := h.Current
		if cur <= 0 || cur > h.Max {
			cur = h.Max
		}
		cs.Health.Set(e, component.Health{Current: cur, Max: h.Max})
	}
	if ai := c.AIBehavior; ai != nil {
		cs.AI.Set(e, component.AIBehavior{
			Kind:         component.Behavior(ai.Kind),
			Target:       ai.Target,
			DetectRadius: floatOr(ai.DetectRadius, DefaultDetectRadius),
			Speed:        floatOr(ai.Speed, DefaultAISpeed),
			PatrolRange:  floatOr(ai.PatrolRange, DefaultPatrolRange),
			Direction:    1,
		})
	}
	if an := c.Animation; an != nil {
		cs.Animation.Set(e, component.Animation{
			FrameCount:    an.FrameCount,
			FrameDuration: floatOr(an.FrameDuration, DefaultFrameDuration),
			CurrentFrame:  an.CurrentFrame,
			Playing:       boolOr(an.Playing, DefaultPlaying),
			Loop:          boolOr(an.Loop, DefaultLoop),
		})
	}
	if cam := c.Camera; cam != nil {
		cs.Camera.Set(e, component.Camera{
			OffsetX:         cam.OffsetX,
			OffsetY:         cam.OffsetY,
			Zoom:            floatOr(cam.Zoom, DefaultZoom),
			FollowTarget:    cam.FollowTarget,
			FollowSmoothing: floatOr(cam.FollowSmoothing, DefaultFollowSmoothing),
			ViewportWidth:   cam.ViewportWidth,
			ViewportHeight:  cam.ViewportHeight,
			ShakeIntensity:  cam.ShakeIntensity,
			ShakeDuration:   cam.ShakeDuration,
			Active:          boolOr(cam.Active, DefaultCameraActive),
		})
	}
	if pe := c.ParticleEmitter; pe != nil {
		emitter := component.ParticleEmitter{
			Rate:         floatOr(pe.Rate, DefaultEmitRate),
			MaxParticles: intOr(pe.MaxParticles, DefaultMaxParticles),
			LifetimeMin:  floatOr(pe.LifetimeMin, DefaultLifetimeMin),
			LifetimeMax:  floatOr(pe.LifetimeMax, DefaultLifetimeMax),
			SizeMin:      floatOr(pe.SizeMin, DefaultSizeMin),
			SizeMax:      floatOr(pe.SizeMax, DefaultSizeMax),
			SpeedMin:     floatOr(pe.SpeedMin, DefaultSpeedMin),
			SpeedMax:     floatOr(pe.SpeedMax, DefaultSpeedMax),
			AngleMin:     floatOr(pe.AngleMin, DefaultAngleMin),
			AngleMax:     floatOr(pe.AngleMax, DefaultAngleMax),
			StartColor:   core.RGBWhite,
			EndColor:     core.RGBWhite,
			Emitting:     boolOr(pe.Emitting, DefaultEmitting),
			Burst:        pe.Burst,
		}
		if pe.StartColor != nil {
			emitter.StartColor = core.RGB{R: pe.StartColor.R, G: pe.StartColor.G, B: pe.StartColor.B}
		}
		if pe.EndColor != nil {
			emitter.EndColor = core.RGB{R: pe.EndColor.R, G: pe.EndColor.G, B: pe.EndColor.B}
		}
		if pe.Gravity != nil {
			emitter.GravityX = pe.Gravity.X
			emitter.GravityY = pe.Gravity.Y
			emitter.HasGravity = true
		}
		cs.Emitter.Set(e, emitter)
	}
	if a := c.Audio; a != nil {
		cs.Audio.Set(e, component.Audio{
			Source:      a.Source,
			Volume:      floatOr(a.Volume, DefaultVolume),
			Pitch:       floatOr(a.Pitch, DefaultPitch),
			Playing:     a.Playing,
			Loop:        a.Loop,
			Spatial:     a.Spatial,
			MaxDistance: floatOr(a.MaxDistance, DefaultMaxDistance),
		})
	}
}
