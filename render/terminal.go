package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/parameter"
)

// TerminalBackend draws onto a tcell screen. One character cell covers
// CellPixelsX by CellPixelsY world pixels; textures are sampled at cell
// centers, so detail below cell size is lost but geometry stays true.
type TerminalBackend struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

func NewTerminalBackend() (*TerminalBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, eris.Wrap(err, "render: create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, eris.Wrap(err, "render: init screen")
	}
	screen.HideCursor()
	screen.EnableMouse()

	b := &TerminalBackend{
		screen: screen,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go b.pollLoop()
	return b, nil
}

func (b *TerminalBackend) pollLoop() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		default:
			// Input backlog: drop rather than stall the screen
		}
	}
}

// Events delivers keyboard, mouse and resize events from the terminal
func (b *TerminalBackend) Events() <-chan tcell.Event {
	return b.events
}

func (b *TerminalBackend) Size() (float64, float64) {
	w, h := b.screen.Size()
	return float64(w) * parameter.CellPixelsX, float64(h) * parameter.CellPixelsY
}

func (b *TerminalBackend) Begin(background core.RGB) {
	style := tcell.StyleDefault.Background(toTcell(background))
	b.screen.Fill(' ', style)
}

func (b *TerminalBackend) Draw(op DrawOp) {
	x0, y0 := cellFloor(op.Dst.X, op.Dst.Y)
	x1, y1 := cellCeil(op.Dst.X+op.Dst.Width, op.Dst.Y+op.Dst.Height)
	sw, sh := b.screen.Size()

	for cy := y0; cy < y1; cy++ {
		if cy < 0 || cy >= sh {
			continue
		}
		for cx := x0; cx < x1; cx++ {
			if cx < 0 || cx >= sw {
				continue
			}
			if op.Outline && cx != x0 && cx != x1-1 && cy != y0 && cy != y1-1 {
				continue
			}
			color := op.Color
			if op.Tex != nil {
				// Sample the texture at the cell center
				u := (float64(cx)*parameter.CellPixelsX + parameter.CellPixelsX/2 - op.Dst.X) / op.Dst.Width
				v := (float64(cy)*parameter.CellPixelsY + parameter.CellPixelsY/2 - op.Dst.Y) / op.Dst.Height
				if op.FlipX {
					u = 1 - u
				}
				if op.FlipY {
					v = 1 - v
				}
				color = op.Tex.At(
					int(op.Src.X+u*op.Src.Width),
					int(op.Src.Y+v*op.Src.Height),
				)
				if op.Tint {
					color = color.Multiply(op.Color)
				}
			}
			style := tcell.StyleDefault.Background(toTcell(color))
			b.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (b *TerminalBackend) End() {
	b.screen.Show()
}

func (b *TerminalBackend) Release() {
	close(b.quit)
	b.screen.Fini()
}

func cellFloor(x, y float64) (int, int) {
	return int(x / parameter.CellPixelsX), int(y / parameter.CellPixelsY)
}

func cellCeil(x, y float64) (int, int) {
	cx := int(x / parameter.CellPixelsX)
	if float64(cx)*parameter.CellPixelsX < x {
		cx++
	}
	cy := int(y / parameter.CellPixelsY)
	if float64(cy)*parameter.CellPixelsY < y {
		cy++
	}
	return cx, cy
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
