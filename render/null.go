package render

import (
	"github.com/lixenwraith/sim2d/core"
)

// NullBackend records draw ops instead of drawing, for tests and
// headless runs
type NullBackend struct {
	Width, Height float64

	Frames     int
	Background core.RGB
	Ops        []DrawOp
	released   bool
}

func NewNullBackend(width, height float64) *NullBackend {
	return &NullBackend{Width: width, Height: height}
}

func (b *NullBackend) Size() (float64, float64) {
	return b.Width, b.Height
}

func (b *NullBackend) Begin(background core.RGB) {
	b.Background = background
	b.Ops = b.Ops[:0]
}

func (b *NullBackend) Draw(op DrawOp) {
	b.Ops = append(b.Ops, op)
}

func (b *NullBackend) End() {
	b.Frames++
}

func (b *NullBackend) Release() {
	b.released = true
}

// Released reports whether Release was called
func (b *NullBackend) Released() bool {
	return b.released
}
