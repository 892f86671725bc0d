package game

import (
	"os"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lixenwraith/sim2d/audio"
	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/config"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/input"
	"github.com/lixenwraith/sim2d/physics"
	"github.com/lixenwraith/sim2d/render"
	"github.com/lixenwraith/sim2d/spec"
)

// State is the runtime lifecycle phase
type State uint8

const (
	StateConstructed State = iota
	StateLoaded
	StateRunning
	StatePaused
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateLoaded:
		return "loaded"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Options configures a Game. Backend nil means headless (no rendering);
// Audio nil means silent. A nil Config takes the defaults.
type Options struct {
	Backend render.Backend
	Logger  *zap.Logger
	Audio   *audio.Engine
	Config  *config.Config
}

// Game is the embedder-facing runtime: one world, one physics space,
// one render surface, driven by a fixed-timestep loop. All methods are
// safe to call from any goroutine; internally everything runs under one
// lock, so simulation steps never interleave with control calls.
type Game struct {
	mu    sync.Mutex
	state State

	log     *zap.Logger
	cfg     *config.Config
	world   *engine.World
	physics *physics.Adapter
	render  *render.Adapter
	audio   *audio.Engine
	input   *input.State

	accumulator float64
	fixedStep   float64
	maxCatchUp  int

	stop chan struct{}
	done chan struct{}
}

// New constructs a game in the Constructed state; nothing simulates
// until a spec document is loaded
func New(opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Game{
		log:        log,
		cfg:        cfg,
		world:      engine.NewWorld(),
		physics:    physics.NewAdapter(log),
		audio:      opts.Audio,
		input:      input.NewState(),
		fixedStep:  cfg.FixedStep(),
		maxCatchUp: cfg.MaxCatchUpSteps,
	}
	g.physics.Attach(g.world)
	if opts.Backend != nil {
		g.render = render.NewAdapter(opts.Backend, nil, log)
		g.render.SetBackground(cfg.BackgroundRGB())
		g.render.SetDebug(cfg.DebugOverlay)
	}
	if g.audio != nil {
		g.world.OnDestroy(g.audio.Stop)
	}
	return g
}

// State returns the current lifecycle phase
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Input returns the device accumulator the host feeds events into
func (g *Game) Input() *input.State {
	return g.input
}

// World exposes the underlying ECS world for embedders and tests
func (g *Game) World() *engine.World {
	return g.world
}

// LoadGameSpec validates and loads a document. The document is fully
// validated before any state is touched, so a rejected load leaves the
// previous world running untouched. A successful load replaces world
// and physics state atomically and preloads the referenced textures.
func (g *Game) LoadGameSpec(data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateDestroyed {
		return &RuntimeStateError{Op: "load", State: g.state.String()}
	}

	doc, err := spec.Decode(data)
	if err != nil {
		return err
	}

	// No teardown before Load: the world wipe inside Load drops every old
	// body through the destroy listeners, and Configure rebuilds gravity
	// and the fence, so a failing Load leaves the physics space untouched
	if err := spec.Load(g.world, g.physics, doc); err != nil {
		return err
	}

	if g.audio != nil {
		engine.AddResource(g.world.Resources, g.audio)
	}
	if g.render != nil {
		if err := g.render.Textures().Preload(g.world.Textures()); err != nil {
			g.log.Warn("some textures failed to load", zap.Error(err))
		}
		bw, bh := 0.0, 0.0
		if cam := g.render.Camera(g.world); cam.Zoom > 0 {
			bw, bh = cam.ViewportWidth, cam.ViewportHeight
		}
		engine.AddResource(g.world.Resources, &engine.CameraState{
			Zoom: 1, ViewportWidth: bw, ViewportHeight: bh,
		})
	}
	g.physics.EnsureBodies(g.world)
	g.accumulator = 0

	if g.state != StateRunning {
		g.state = StateLoaded
	}
	g.log.Info("spec loaded",
		zap.String("title", doc.Metadata.Title),
		zap.Int("entities", len(doc.Entities)),
		zap.Strings("systems", doc.Systems))
	return nil
}

// LoadGameSpecFile loads a document from disk
func (g *Game) LoadGameSpecFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "game: read spec %s", path)
	}
	return g.LoadGameSpec(data)
}

// SaveGameSpec snapshots the live world back into a document file
func (g *Game) SaveGameSpec(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateDestroyed || g.state == StateConstructed {
		return &RuntimeStateError{Op: "save", State: g.state.String()}
	}
	return spec.Save(g.world, path)
}

// Start begins or resumes simulation. Starting a running game is a
// no-op; starting before a load or after destruction is an error.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case StateLoaded, StatePaused:
		g.state = StateRunning
		return nil
	case StateRunning:
		return nil
	default:
		return &RuntimeStateError{Op: "start", State: g.state.String()}
	}
}

// Pause freezes simulation; rendering continues showing the last state
func (g *Game) Pause() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		return nil
	case StatePaused, StateLoaded:
		return nil
	default:
		return &RuntimeStateError{Op: "pause", State: g.state.String()}
	}
}

// Destroy tears the runtime down: loop stopped, voices silenced, bodies
// and entities dropped, backend released. Idempotent; every other call
// on a destroyed game fails with RuntimeStateError.
func (g *Game) Destroy() {
	g.mu.Lock()
	if g.state == StateDestroyed {
		g.mu.Unlock()
		return
	}
	g.state = StateDestroyed
	stop := g.stop
	g.stop = nil
	done := g.done
	g.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.audio.Cleanup()
	g.world.Clear()
	g.physics.Clear()
	if g.render != nil {
		g.render.Release()
	}
}

// Advance moves the simulation forward by one visual frame. Fixed steps
// are consumed from the accumulated frame time; after MaxCatchUpSteps
// the remainder is dropped so a stall slows the world instead of
// spiraling. Rendering happens once per call regardless of step count.
func (g *Game) Advance(frameDelta float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateDestroyed || g.state == StateConstructed {
		return
	}

	if g.state == StateRunning {
		g.accumulator += frameDelta
		steps := 0
		for g.accumulator >= g.fixedStep && steps < g.maxCatchUp {
			g.step(g.fixedStep)
			g.accumulator -= g.fixedStep
			steps++
		}
		if steps == g.maxCatchUp && g.accumulator >= g.fixedStep {
			g.log.Debug("dropping simulation backlog",
				zap.Float64("dropped", g.accumulator))
			g.accumulator = 0
		}
	}

	if g.render != nil {
		g.render.Render(g.world)
	}
}

// step runs one fixed tick: systems first, then the physics pipeline,
// then the contact events are staged for next tick's systems
func (g *Game) step(dt float64) {
	g.input.Publish(g.world)
	g.world.Update(dt)

	g.physics.EnsureBodies(g.world)
	g.physics.ApplyVelocities(g.world)
	g.physics.Step(dt)
	g.physics.SyncToWorld(g.world)

	engine.AddResource(g.world.Resources, &engine.CollisionEvents{
		Events: g.world.Events().Drain(),
	})
}

// Run drives Advance from a wall-clock ticker until Stop or Destroy.
// The caller's goroutine is not blocked; the loop runs on its own.
func (g *Game) Run() {
	g.mu.Lock()
	if g.stop != nil || g.state == StateDestroyed {
		g.mu.Unlock()
		return
	}
	g.stop = make(chan struct{})
	g.done = make(chan struct{})
	stop := g.stop
	done := g.done
	g.mu.Unlock()

	core.Go(func() {
		defer close(done)
		ticker := time.NewTicker(time.Duration(float64(time.Second) * g.fixedStep))
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				g.Advance(now.Sub(last).Seconds())
				last = now
			}
		}
	})
}

// Stop halts the Run loop without changing the lifecycle state
func (g *Game) Stop() {
	g.mu.Lock()
	stop := g.stop
	done := g.done
	g.stop = nil
	g.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}
}

// SetDebugOverlay toggles collider outlines in the render adapter
func (g *Game) SetDebugOverlay(on bool) {
	if g.render != nil {
		g.render.SetDebug(on)
	}
}

// Camera returns the active view
func (g *Game) Camera() engine.CameraState {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.render != nil {
		return g.render.Camera(g.world)
	}
	if cam, ok := engine.GetResource[*engine.CameraState](g.world.Resources); ok {
		return *cam
	}
	return engine.CameraState{Zoom: 1}
}

// SetZoom adjusts the active camera's zoom; without a camera entity the
// published view is scaled directly
func (g *Game) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.world.Components.Camera.Entities() {
		if cam := g.world.Components.Camera.GetPtr(e); cam != nil && cam.Active {
			cam.Zoom = zoom
			return
		}
	}
	if cam, ok := engine.GetResource[*engine.CameraState](g.world.Resources); ok {
		cam.Zoom = zoom
	}
}

// ScreenToWorld converts a screen-pixel point through the active camera
func (g *Game) ScreenToWorld(x, y float64) (float64, float64) {
	cam := g.Camera()
	if cam.Zoom <= 0 {
		return x, y
	}
	return x/cam.Zoom + cam.OffsetX, y/cam.Zoom + cam.OffsetY
}

// EntityAtPoint returns the name of the topmost entity whose sprite
// covers the world-space point: highest ZIndex wins, entity id breaks
// ties in favor of the newest. Names are the only entity handle that
// leaves the runtime; an unnamed hit or a miss reports false.
func (g *Game) EntityAtPoint(x, y float64) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := g.entityAtPoint(x, y)
	if e == core.InvalidEntity {
		return "", false
	}
	name := g.world.Name(e)
	return name, name != ""
}

func (g *Game) entityAtPoint(x, y float64) core.Entity {
	best := core.InvalidEntity
	bestZ := 0
	for _, e := range g.world.Components.Sprite.Entities() {
		sprite, _ := g.world.Components.Sprite.Get(e)
		if !sprite.Visible {
			continue
		}
		tr, ok := g.world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		if !render.SpriteWorldRect(&tr, &sprite).Contains(x, y) {
			continue
		}
		if best == core.InvalidEntity || sprite.ZIndex > bestZ ||
			(sprite.ZIndex == bestZ && e > best) {
			best = e
			bestZ = sprite.ZIndex
		}
	}
	return best
}

// EntityBounds returns the world-space rectangle of a named entity,
// from its sprite when present, falling back to collider extents
func (g *Game) EntityBounds(name string) (core.Rect, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.world.EntityByName(name)
	if !ok {
		return core.Rect{}, false
	}
	return g.entityBounds(e)
}

func (g *Game) entityBounds(e core.Entity) (core.Rect, bool) {
	tr, ok := g.world.Components.Transform.Get(e)
	if !ok {
		return core.Rect{}, false
	}
	if sprite, ok := g.world.Components.Sprite.Get(e); ok {
		return render.SpriteWorldRect(&tr, &sprite), true
	}
	if col, ok := g.world.Components.Collider.Get(e); ok {
		if col.Shape == component.ShapeCircle {
			return core.Rect{
				X: tr.X - col.Radius, Y: tr.Y - col.Radius,
				Width: col.Radius * 2, Height: col.Radius * 2,
			}, true
		}
		return core.Rect{
			X: tr.X - col.Width/2, Y: tr.Y - col.Height/2,
			Width: col.Width, Height: col.Height,
		}, true
	}
	return core.Rect{}, false
}

// FitCameraToEntities frames every bounded entity in the viewport,
// adjusting the active camera's offset and zoom. Returns the zoom it
// settled on, zero when no bounded entity or usable camera exists.
func (g *Game) FitCameraToEntities() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	var union core.Rect
	have := false
	for _, e := range g.world.Entities() {
		r, ok := g.entityBounds(e)
		if !ok {
			continue
		}
		if !have {
			union = r
			have = true
		} else {
			union = union.Union(r)
		}
	}
	if !have || union.Width <= 0 || union.Height <= 0 {
		return 0
	}

	for _, e := range g.world.Components.Camera.Entities() {
		cam := g.world.Components.Camera.GetPtr(e)
		if cam == nil || !cam.Active {
			continue
		}
		vw, vh := cam.ViewportWidth, cam.ViewportHeight
		if vw <= 0 || vh <= 0 {
			if g.render == nil {
				return 0
			}
			state := g.render.Camera(g.world)
			vw, vh = state.ViewportWidth, state.ViewportHeight
		}
		if vw <= 0 || vh <= 0 {
			return 0
		}
		zoom := vw / union.Width
		if fit := vh / union.Height; fit < zoom {
			zoom = fit
		}
		cam.Zoom = zoom
		center := union.Center()
		cam.OffsetX = center.X - vw/zoom/2
		cam.OffsetY = center.Y - vh/zoom/2
		return zoom
	}
	return 0
}
