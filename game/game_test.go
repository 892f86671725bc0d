package game

import (
	"errors"
	"testing"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/render"
)

const platformerDoc = `{
  "version": "1.0",
  "metadata": {"title": "Fixture", "genre": "platformer"},
  "config": {"gravity": {"x": 0, "y": 1}, "worldBounds": {"width": 800, "height": 600}},
  "entities": [
    {
      "name": "player",
      "tags": ["player"],
      "components": {
        "transform": {"x": 400, "y": 300},
        "velocity": {"vx": 0, "vy": 0},
        "sprite": {"texture": "hero.png", "width": 32, "height": 32},
        "collider": {"shape": "box", "width": 32, "height": 32},
        "input": {"moveSpeed": 200, "jumpForce": 500}
      }
    },
    {
      "name": "ground",
      "tags": ["static"],
      "components": {
        "transform": {"x": 400, "y": 580},
        "sprite": {"texture": "ground.png", "width": 800, "height": 40},
        "collider": {"shape": "box", "width": 800, "height": 40}
      }
    }
  ],
  "systems": ["input", "physics"]
}`

func newLoadedGame(t *testing.T) *Game {
	t.Helper()
	g := New(Options{})
	if err := g.LoadGameSpec([]byte(platformerDoc)); err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	return g
}

func TestLifecycleTransitions(t *testing.T) {
	g := New(Options{})
	if g.State() != StateConstructed {
		t.Fatalf("initial state = %v", g.State())
	}

	// Nothing to simulate yet
	var stateErr *RuntimeStateError
	if err := g.Start(); !errors.As(err, &stateErr) {
		t.Errorf("Start before load = %v, want RuntimeStateError", err)
	}

	if err := g.LoadGameSpec([]byte(platformerDoc)); err != nil {
		t.Fatal(err)
	}
	if g.State() != StateLoaded {
		t.Errorf("state after load = %v", g.State())
	}

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if g.State() != StateRunning {
		t.Errorf("state after start = %v", g.State())
	}
	// Starting a running game is a no-op
	if err := g.Start(); err != nil {
		t.Errorf("redundant Start = %v", err)
	}

	if err := g.Pause(); err != nil {
		t.Fatal(err)
	}
	if g.State() != StatePaused {
		t.Errorf("state after pause = %v", g.State())
	}
	if err := g.Start(); err != nil {
		t.Errorf("resume = %v", err)
	}

	g.Destroy()
	g.Destroy() // idempotent
	if g.State() != StateDestroyed {
		t.Errorf("state after destroy = %v", g.State())
	}
	if err := g.Start(); !errors.As(err, &stateErr) {
		t.Errorf("Start after destroy = %v, want RuntimeStateError", err)
	}
	if err := g.LoadGameSpec([]byte(platformerDoc)); !errors.As(err, &stateErr) {
		t.Errorf("load after destroy = %v, want RuntimeStateError", err)
	}
}

func TestRejectedLoadKeepsWorld(t *testing.T) {
	g := newLoadedGame(t)
	before := g.World().EntityCount()

	if err := g.LoadGameSpec([]byte(`{"version": "9.9"}`)); err == nil {
		t.Fatal("bad document accepted")
	}
	if got := g.World().EntityCount(); got != before {
		t.Errorf("failed load changed entity count %d -> %d", before, got)
	}
	if g.State() != StateLoaded {
		t.Errorf("failed load changed state to %v", g.State())
	}
}

func TestReloadReplacesPhysicsState(t *testing.T) {
	g := newLoadedGame(t)
	if got := g.physics.BodyCount(); got != 2 {
		t.Fatalf("bodies after load = %d, want 2", got)
	}

	// A rejected reload must not touch the physics space either
	if err := g.LoadGameSpec([]byte(`{"version": "9.9"}`)); err == nil {
		t.Fatal("bad document accepted")
	}
	if got := g.physics.BodyCount(); got != 2 {
		t.Errorf("rejected reload changed bodies to %d", got)
	}

	single := `{
	  "version": "1.0",
	  "metadata": {"title": "One", "genre": "platformer"},
	  "config": {"gravity": {"x": 0, "y": 2}, "worldBounds": {"width": 100, "height": 100}},
	  "entities": [
	    {
	      "name": "lone",
	      "components": {
	        "transform": {"x": 50, "y": 50},
	        "collider": {"shape": "box", "width": 10, "height": 10}
	      }
	    }
	  ],
	  "systems": []
	}`
	if err := g.LoadGameSpec([]byte(single)); err != nil {
		t.Fatal(err)
	}
	if got := g.physics.BodyCount(); got != 1 {
		t.Errorf("bodies after reload = %d, want 1", got)
	}
	if grav := g.physics.Gravity(); grav.Y != 2 {
		t.Errorf("gravity after reload = %+v, want y=2", grav)
	}
	if _, ok := g.World().EntityByName("player"); ok {
		t.Error("old entities survived the reload")
	}
}

func TestAdvanceFixedStepDeterminism(t *testing.T) {
	run := func(frames []float64) (float64, float64) {
		g := New(Options{})
		if err := g.LoadGameSpec([]byte(platformerDoc)); err != nil {
			t.Fatal(err)
		}
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}
		for _, f := range frames {
			g.Advance(f)
		}
		player, _ := g.World().EntityByName("player")
		tr, _ := g.World().Components.Transform.Get(player)
		return tr.X, tr.Y
	}

	// The same total time in different frame slicings steps identically
	batched := make([]float64, 6)
	for i := range batched {
		batched[i] = 1.0 / 12.0 // five fixed steps per frame
	}
	spread := make([]float64, 30)
	for i := range spread {
		spread[i] = 1.0 / 60.0
	}

	bx, by := run(batched)
	sx, sy := run(spread)
	if bx != sx || by != sy {
		t.Errorf("batched (%g, %g) != spread (%g, %g)", bx, by, sx, sy)
	}
}

func TestAdvanceDropsBacklog(t *testing.T) {
	g := newLoadedGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	tickBefore := g.World().Tick()
	// A two-second stall must clamp to the catch-up cap, not run 120 steps
	g.Advance(2.0)
	ran := g.World().Tick() - tickBefore
	if ran != 5 {
		t.Errorf("stall ran %d steps, want 5", ran)
	}

	// The dropped backlog must not leak into the next frame
	g.Advance(1.0 / 60.0)
	if got := g.World().Tick() - tickBefore; got != 6 {
		t.Errorf("next frame ran %d total steps, want 6", got)
	}
}

func TestPausedAdvanceDoesNotStep(t *testing.T) {
	g := newLoadedGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.Advance(1.0 / 60.0)
	tick := g.World().Tick()

	if err := g.Pause(); err != nil {
		t.Fatal(err)
	}
	g.Advance(1.0)
	if g.World().Tick() != tick {
		t.Error("paused game stepped")
	}
}

func TestPlayerComesToRestOnGround(t *testing.T) {
	g := newLoadedGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	// Two simulated seconds, frame by frame
	for i := 0; i < 120; i++ {
		g.Advance(1.0 / 60.0)
	}

	player, _ := g.World().EntityByName("player")
	tr, _ := g.World().Components.Transform.Get(player)
	// Ground top edge is at y=560; the 32px player rests centered at 544
	if tr.Y < 520 || tr.Y > 560 {
		t.Errorf("player Y = %g, want near 544", tr.Y)
	}
	v, _ := g.World().Components.Velocity.Get(player)
	if v.VY > 5 || v.VY < -5 {
		t.Errorf("player VY = %g, want settled", v.VY)
	}
}

func TestEntityAtPoint(t *testing.T) {
	g := newLoadedGame(t)

	if name, ok := g.EntityAtPoint(400, 300); !ok || name != "player" {
		t.Errorf("EntityAtPoint(player center) = %q, %v", name, ok)
	}
	if name, ok := g.EntityAtPoint(100, 580); !ok || name != "ground" {
		t.Errorf("EntityAtPoint(ground) = %q, %v", name, ok)
	}
	if name, ok := g.EntityAtPoint(-500, -500); ok || name != "" {
		t.Errorf("EntityAtPoint(empty) = %q, %v, want miss", name, ok)
	}
}

func TestEntityAtPointZOrderAndTies(t *testing.T) {
	g := New(Options{})
	w := g.World()

	mk := func(name string, z int) core.Entity {
		e := w.CreateEntity()
		w.SetName(e, name)
		w.Components.Transform.Set(e, component.Transform{X: 10, Y: 10, ScaleX: 1, ScaleY: 1})
		w.Components.Sprite.Set(e, component.Sprite{
			Width: 20, Height: 20,
			Visible: true,
			ZIndex:  z,
			AnchorX: 0.5, AnchorY: 0.5,
		})
		return e
	}
	mk("back", 0)
	mk("mid", 3)
	mk("front", 3)

	// Highest z wins; among equals the newest entity wins
	if name, ok := g.EntityAtPoint(10, 10); !ok || name != "front" {
		t.Errorf("EntityAtPoint = %q, %v, want front", name, ok)
	}
}

func TestEntityAtPointUnnamedIsMiss(t *testing.T) {
	g := New(Options{})
	w := g.World()

	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.Transform{X: 10, Y: 10, ScaleX: 1, ScaleY: 1})
	w.Components.Sprite.Set(e, component.Sprite{
		Width: 20, Height: 20, Visible: true, AnchorX: 0.5, AnchorY: 0.5,
	})

	// Names are the only handle that leaves the runtime
	if name, ok := g.EntityAtPoint(10, 10); ok || name != "" {
		t.Errorf("unnamed hit = %q, %v, want miss", name, ok)
	}
}

func TestEntityBounds(t *testing.T) {
	g := newLoadedGame(t)

	r, ok := g.EntityBounds("player")
	if !ok {
		t.Fatal("no bounds for player")
	}
	want := core.Rect{X: 384, Y: 284, Width: 32, Height: 32}
	if r != want {
		t.Errorf("bounds = %+v, want %+v", r, want)
	}

	if _, ok := g.EntityBounds("ghost"); ok {
		t.Error("bounds for unknown name")
	}
}

func TestFitCameraToEntitiesReturnsZoom(t *testing.T) {
	g := New(Options{})
	w := g.World()

	mk := func(name string, x, y float64) {
		e := w.CreateEntity()
		w.SetName(e, name)
		w.Components.Transform.Set(e, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
		w.Components.Sprite.Set(e, component.Sprite{
			Width: 200, Height: 150,
			Visible: true,
			AnchorX: 0.5, AnchorY: 0.5,
		})
	}
	// Union of both sprites is (0, 0, 400, 300)
	mk("a", 100, 75)
	mk("b", 300, 225)

	camEnt := w.CreateEntity()
	w.Components.Camera.Set(camEnt, component.Camera{
		Active: true, Zoom: 1,
		ViewportWidth: 800, ViewportHeight: 600,
	})

	zoom := g.FitCameraToEntities()
	if zoom != 2 {
		t.Fatalf("zoom = %g, want 2", zoom)
	}
	cam, _ := w.Components.Camera.Get(camEnt)
	if cam.Zoom != 2 {
		t.Errorf("camera zoom = %g, want 2", cam.Zoom)
	}
	if cam.OffsetX != 0 || cam.OffsetY != 0 {
		t.Errorf("offset = (%g, %g), want centered at origin", cam.OffsetX, cam.OffsetY)
	}
}

func TestFitCameraWithoutBoundedEntities(t *testing.T) {
	g := New(Options{})
	if zoom := g.FitCameraToEntities(); zoom != 0 {
		t.Errorf("empty world zoom = %g, want 0", zoom)
	}
}

func TestHeadlessRenderBackend(t *testing.T) {
	backend := render.NewNullBackend(800, 600)
	g := New(Options{Backend: backend})
	if err := g.LoadGameSpec([]byte(platformerDoc)); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	g.Advance(1.0 / 60.0)
	if backend.Frames != 1 {
		t.Errorf("Frames = %d, want 1 render per Advance", backend.Frames)
	}
	// Two sprites with no textures: placeholder rects still draw
	if len(backend.Ops) != 2 {
		t.Errorf("got %d draw ops, want 2", len(backend.Ops))
	}

	g.Destroy()
	if !backend.Released() {
		t.Error("Destroy must release the backend")
	}
}

func TestSetZoomAndScreenToWorld(t *testing.T) {
	backend := render.NewNullBackend(800, 600)
	g := New(Options{Backend: backend})
	if err := g.LoadGameSpec([]byte(platformerDoc)); err != nil {
		t.Fatal(err)
	}

	g.SetZoom(2)
	cam := g.Camera()
	if cam.Zoom != 2 {
		t.Errorf("Zoom = %g, want 2", cam.Zoom)
	}

	wx, wy := g.ScreenToWorld(100, 50)
	if wx != 50 || wy != 25 {
		t.Errorf("ScreenToWorld = (%g, %g), want (50, 25)", wx, wy)
	}
}
