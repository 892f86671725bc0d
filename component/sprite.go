package component

import (
	"github.com/lixenwraith/sim2d/core"
)

// FrameRect selects a sprite-sheet region in texture pixels
type FrameRect struct {
	X, Y, Width, Height float64
}

// Sprite describes the drawable surface of an entity
// Anchor is a 0-1 normalized pivot; ZIndex orders draws, higher = front
type Sprite struct {
	Texture  string
	Width    float64
	Height   float64
	Tint     core.RGB
	HasTint  bool
	Visible  bool
	ZIndex   int
	Frame    FrameRect
	HasFrame bool
	AnchorX  float64
	AnchorY  float64
	FlipX    bool
	FlipY    bool
}
