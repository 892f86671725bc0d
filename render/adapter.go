package render

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/parameter"
)

// Adapter walks the world each frame and turns sprites, particles and
// debug geometry into backend draw ops. It reads components only; all
// mutation belongs to the systems.
type Adapter struct {
	log      *zap.Logger
	backend  Backend
	textures *TextureCache

	background core.RGB
	debug      bool

	// Scratch, reused across frames
	queue []drawEntry
}

type drawEntry struct {
	entity core.Entity
	z      int
	op     DrawOp
}

func NewAdapter(backend Backend, textures *TextureCache, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	if textures == nil {
		textures = NewTextureCache(log)
	}
	return &Adapter{
		log:      log,
		backend:  backend,
		textures: textures,
	}
}

// Textures exposes the cache for preloading
func (a *Adapter) Textures() *TextureCache {
	return a.textures
}

// SetBackground sets the frame clear color
func (a *Adapter) SetBackground(c core.RGB) {
	a.background = c
}

// SetDebug toggles the collider outline overlay
func (a *Adapter) SetDebug(on bool) {
	a.debug = on
}

// Debug reports whether the overlay is on
func (a *Adapter) Debug() bool {
	return a.debug
}

// Release shuts the backend down
func (a *Adapter) Release() {
	if a.backend != nil {
		a.backend.Release()
	}
}

// Camera returns the active view, falling back to an identity view over
// the backend surface when no camera state has been published
func (a *Adapter) Camera(w *engine.World) engine.CameraState {
	if cam, ok := engine.GetResource[*engine.CameraState](w.Resources); ok && cam.Zoom > 0 {
		return *cam
	}
	bw, bh := a.backend.Size()
	return engine.CameraState{Zoom: 1, ViewportWidth: bw, ViewportHeight: bh}
}

// Render draws one frame: sprites back-to-front, then particles, then
// the debug overlay. Draw order is ZIndex ascending with entity id
// breaking ties, so equal layers keep creation order.
func (a *Adapter) Render(w *engine.World) {
	cam := a.Camera(w)
	a.backend.Begin(a.background)

	a.queue = a.queue[:0]
	for _, e := range w.Components.Sprite.Entities() {
		sprite, _ := w.Components.Sprite.Get(e)
		if !sprite.Visible || sprite.Width <= 0 || sprite.Height <= 0 {
			continue
		}
		tr, ok := w.Components.Transform.Get(e)
		if !ok {
			continue
		}
		op := a.spriteOp(w, e, &tr, &sprite, &cam)
		a.queue = append(a.queue, drawEntry{entity: e, z: sprite.ZIndex, op: op})
	}
	sort.Slice(a.queue, func(i, j int) bool {
		if a.queue[i].z != a.queue[j].z {
			return a.queue[i].z < a.queue[j].z
		}
		return a.queue[i].entity < a.queue[j].entity
	})
	for i := range a.queue {
		a.backend.Draw(a.queue[i].op)
	}

	a.renderParticles(w, &cam)
	if a.debug {
		a.renderDebug(w, &cam)
	}
	a.backend.End()
}

// SpriteWorldRect returns the sprite's world-space rectangle, anchor and
// scale applied. Shared with hit testing and camera fitting.
func SpriteWorldRect(tr *component.Transform, sprite *component.Sprite) core.Rect {
	w := sprite.Width * tr.ScaleX
	h := sprite.Height * tr.ScaleY
	return core.Rect{
		X:      tr.X - sprite.AnchorX*w,
		Y:      tr.Y - sprite.AnchorY*h,
		Width:  w,
		Height: h,
	}
}

func toScreen(r core.Rect, cam *engine.CameraState) core.Rect {
	return core.Rect{
		X:      (r.X - cam.OffsetX) * cam.Zoom,
		Y:      (r.Y - cam.OffsetY) * cam.Zoom,
		Width:  r.Width * cam.Zoom,
		Height: r.Height * cam.Zoom,
	}
}

func (a *Adapter) spriteOp(w *engine.World, e core.Entity, tr *component.Transform, sprite *component.Sprite, cam *engine.CameraState) DrawOp {
	op := DrawOp{
		Dst:    toScreen(SpriteWorldRect(tr, sprite), cam),
		FlipX:  sprite.FlipX,
		FlipY:  sprite.FlipY,
		Entity: e,
	}

	tex, ok := a.textures.Get(sprite.Texture)
	if !ok {
		// Missing or failed texture: flat placeholder, tint still applies
		op.Color = core.RGB{R: parameter.PlaceholderR, G: parameter.PlaceholderG, B: parameter.PlaceholderB}
		if sprite.HasTint {
			op.Color = op.Color.Multiply(sprite.Tint)
		}
		return op
	}

	op.Tex = tex
	op.Src = core.Rect{Width: float64(tex.Width), Height: float64(tex.Height)}
	if sprite.HasFrame {
		op.Src = core.Rect{
			X: sprite.Frame.X, Y: sprite.Frame.Y,
			Width: sprite.Frame.Width, Height: sprite.Frame.Height,
		}
	}
	if anim, ok := w.Components.Animation.Get(e); ok && anim.FrameCount > 0 {
		// Frames advance left to right from the base region
		if !sprite.HasFrame {
			op.Src.Width = float64(tex.Width) / float64(anim.FrameCount)
		}
		op.Src.X += float64(anim.CurrentFrame) * op.Src.Width
	}
	if sprite.HasTint {
		op.Color = sprite.Tint
		op.Tint = true
	}
	return op
}

func (a *Adapter) renderParticles(w *engine.World, cam *engine.CameraState) {
	buf, ok := engine.GetResource[*engine.ParticleBuffer](w.Resources)
	if !ok {
		return
	}
	for i := range buf.Particles {
		p := &buf.Particles[i]
		half := p.Size / 2
		a.backend.Draw(DrawOp{
			Dst: toScreen(core.Rect{
				X: p.X - half, Y: p.Y - half,
				Width: p.Size, Height: p.Size,
			}, cam),
			Color: p.Color(),
		})
	}
}

var debugColor = core.RGB{G: 255}

func (a *Adapter) renderDebug(w *engine.World, cam *engine.CameraState) {
	for _, e := range w.Components.Collider.Entities() {
		col, _ := w.Components.Collider.Get(e)
		tr, ok := w.Components.Transform.Get(e)
		if !ok {
			continue
		}
		var rect core.Rect
		if col.Shape == component.ShapeCircle {
			rect = core.Rect{
				X: tr.X - col.Radius, Y: tr.Y - col.Radius,
				Width: col.Radius * 2, Height: col.Radius * 2,
			}
		} else {
			rect = core.Rect{
				X: tr.X - col.Width/2, Y: tr.Y - col.Height/2,
				Width: col.Width, Height: col.Height,
			}
		}
		a.backend.Draw(DrawOp{
			Dst:     toScreen(rect, cam),
			Color:   debugColor,
			Outline: true,
			Entity:  e,
		})
	}
}
