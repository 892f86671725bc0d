package render

import (
	"github.com/lixenwraith/sim2d/core"
)

// DrawOp is one screen-space draw command. Dst is in screen pixels.
// With Tex set the backend samples Src (texture pixels) across Dst,
// honoring the flips; otherwise Dst is a flat fill. Outline draws only
// the rect border, used by the debug overlay.
type DrawOp struct {
	Dst     core.Rect
	Tex     *Texture
	Src     core.Rect
	Color   core.RGB
	Tint    bool
	FlipX   bool
	FlipY   bool
	Outline bool
	Entity  core.Entity
}

// Backend is the drawing surface behind the adapter
// Begin/End bracket one frame; ops arrive back-to-front between them
type Backend interface {
	// Size returns the surface extent in screen pixels
	Size() (width, height float64)
	Begin(background core.RGB)
	Draw(op DrawOp)
	End()
	Release()
}
