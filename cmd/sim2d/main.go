package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/sim2d/audio"
	"github.com/lixenwraith/sim2d/config"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/game"
	"github.com/lixenwraith/sim2d/parameter"
	"github.com/lixenwraith/sim2d/render"
)

var (
	specFlag   = flag.String("spec", "", "Path to the game spec JSON (required)")
	configFlag = flag.String("config", "", "Path to the runtime config YAML")
	debugFlag  = flag.Bool("debug", false, "Start with the collider overlay on")
)

func main() {
	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise raw mode mangles it
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\r\nSIM2D CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if *specFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: sim2d -spec game.json [-config sim2d.yaml]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debugFlag {
		cfg.DebugOverlay = true
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	backend, err := render.NewTerminalBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	core.SetCrashHandler(func(r any) {
		backend.Release()
		fmt.Fprintf(os.Stderr, "\r\nSIM2D CRASHED: %v\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	var audioEngine *audio.Engine
	if cfg.AudioEnabled {
		audioEngine = audio.NewEngine(logger)
		if err := audioEngine.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silent", zap.Error(err))
			audioEngine = nil
		}
	}

	g := game.New(game.Options{
		Backend: backend,
		Logger:  logger,
		Audio:   audioEngine,
		Config:  cfg,
	})
	defer g.Destroy()

	if err := g.LoadGameSpecFile(*specFlag); err != nil {
		backend.Release()
		fmt.Fprintf(os.Stderr, "spec: %v\n", err)
		os.Exit(1)
	}
	if err := g.Start(); err != nil {
		backend.Release()
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(1)
	}
	g.Run()

	runEventLoop(g, backend, cfg.DebugOverlay)
}

// tapHold is how long a key repeat keeps its direction held; terminals
// deliver repeats rather than key-up, so each event extends the hold
const tapHold = 150 * time.Millisecond

// runEventLoop blocks on terminal events until quit
func runEventLoop(g *game.Game, backend *render.TerminalBackend, overlay bool) {
	in := g.Input()
	paused := false
	for ev := range backend.Events() {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || keyRune(ev, 'q'):
				return
			case keyRune(ev, 'p'):
				if paused {
					_ = g.Start()
				} else {
					_ = g.Pause()
				}
				paused = !paused
			case keyRune(ev, 'o'):
				overlay = !overlay
				g.SetDebugOverlay(overlay)
			case ev.Key() == tcell.KeyLeft || keyRune(ev, 'h'):
				in.TapLeft(tapHold)
			case ev.Key() == tcell.KeyRight || keyRune(ev, 'l'):
				in.TapRight(tapHold)
			case ev.Key() == tcell.KeyUp || keyRune(ev, 'k'):
				in.TapUp(tapHold)
			case ev.Key() == tcell.KeyDown || keyRune(ev, 'j'):
				in.TapDown(tapHold)
			case keyRune(ev, ' '):
				in.TapJump(tapHold)
			}
		case *tcell.EventMouse:
			cx, cy := ev.Position()
			wx, wy := g.ScreenToWorld(
				float64(cx)*parameter.CellPixelsX,
				float64(cy)*parameter.CellPixelsY,
			)
			in.SetMouse(wx, wy, ev.Buttons()&tcell.Button1 != 0)
		case *tcell.EventResize:
			// Backend size is polled per frame; nothing to do
		}
	}
}

func keyRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}

func newLogger(cfg *config.Config) *zap.Logger {
	// Terminal output owns stdout; logs go to a file next to the binary
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	zcfg.OutputPaths = []string{"sim2d.log"}
	zcfg.ErrorOutputPaths = []string{"sim2d.log"}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
