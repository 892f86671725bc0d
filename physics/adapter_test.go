package physics

import (
	"errors"
	"testing"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/event"
)

const dt = 1.0 / 60.0

func newPhysicsWorld() (*engine.World, *Adapter) {
	w := engine.NewWorld()
	a := NewAdapter(nil)
	a.Attach(w)
	return w, a
}

func addBody(w *engine.World, x, y float64, col component.Collider) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	w.Components.Velocity.Set(e, component.Velocity{})
	w.Components.Collider.Set(e, col)
	return e
}

func TestGravityPullsBodiesDown(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{Y: 1}, core.Rect{})

	e := addBody(w, 100, 0, component.Collider{Shape: component.ShapeBox, Width: 10, Height: 10})
	if err := a.EnsureBody(w, e); err != nil {
		t.Fatal(err)
	}

	lastY := 0.0
	for i := 0; i < 30; i++ {
		a.ApplyVelocities(w)
		a.Step(dt)
		a.SyncToWorld(w)

		tr, _ := w.Components.Transform.Get(e)
		if tr.Y <= lastY && i > 0 {
			t.Fatalf("tick %d: y did not increase (%g -> %g)", i, lastY, tr.Y)
		}
		lastY = tr.Y
	}

	// Velocity flows back into the component
	v, _ := w.Components.Velocity.Get(e)
	if v.VY <= 0 {
		t.Errorf("VY = %g, want falling speed", v.VY)
	}
	if tr, _ := w.Components.Transform.Get(e); tr.X != 100 {
		t.Errorf("X drifted to %g under vertical gravity", tr.X)
	}
}

func TestDegenerateColliderSkipped(t *testing.T) {
	tests := []struct {
		name string
		col  component.Collider
	}{
		{"zero box", component.Collider{Shape: component.ShapeBox}},
		{"negative box", component.Collider{Shape: component.ShapeBox, Width: -5, Height: 10}},
		{"zero circle", component.Collider{Shape: component.ShapeCircle}},
		{"unknown shape", component.Collider{Shape: "hexagon", Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, a := newPhysicsWorld()
			e := addBody(w, 0, 0, tt.col)

			err := a.EnsureBody(w, e)
			var bodyErr *BodyError
			if !errors.As(err, &bodyErr) {
				t.Fatalf("err = %v, want BodyError", err)
			}
			if a.HasBody(e) {
				t.Error("degenerate collider produced a body")
			}

			// The failure is remembered; the scan must not retry
			if err := a.EnsureBody(w, e); err != nil {
				t.Errorf("second EnsureBody = %v, want silent skip", err)
			}
		})
	}
}

func TestStaticBodiesDoNotFall(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{Y: 1}, core.Rect{})

	e := addBody(w, 100, 200, component.Collider{Shape: component.ShapeBox, Width: 100, Height: 20})
	w.AddTag(e, StaticTag)
	if err := a.EnsureBody(w, e); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 30; i++ {
		a.ApplyVelocities(w)
		a.Step(dt)
		a.SyncToWorld(w)
	}
	tr, _ := w.Components.Transform.Get(e)
	if tr.X != 100 || tr.Y != 200 {
		t.Errorf("static body moved to (%g, %g)", tr.X, tr.Y)
	}
}

func TestBodyRestsOnStaticGround(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{Y: 1}, core.Rect{})

	ground := addBody(w, 400, 560, component.Collider{Shape: component.ShapeBox, Width: 800, Height: 40})
	w.AddTag(ground, StaticTag)
	faller := addBody(w, 400, 300, component.Collider{Shape: component.ShapeBox, Width: 32, Height: 32})
	a.EnsureBodies(w)

	for i := 0; i < 120; i++ {
		a.ApplyVelocities(w)
		a.Step(dt)
		a.SyncToWorld(w)
	}

	// Faller center settles one half-extent above the ground top edge
	tr, _ := w.Components.Transform.Get(faller)
	if tr.Y < 500 || tr.Y > 560 {
		t.Errorf("resting Y = %g, want near 524", tr.Y)
	}
	v, _ := w.Components.Velocity.Get(faller)
	if v.VY > 5 || v.VY < -5 {
		t.Errorf("resting VY = %g, want near zero", v.VY)
	}
}

func TestCollisionEventsReachQueue(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{}, core.Rect{})

	solid := addBody(w, 0, 0, component.Collider{Shape: component.ShapeBox, Width: 20, Height: 20})
	sensor := addBody(w, 5, 0, component.Collider{Shape: component.ShapeCircle, Radius: 10, IsSensor: true})
	a.EnsureBodies(w)

	a.Step(dt)

	events := w.Events().Drain()
	var begin *event.Event
	for i := range events {
		if events[i].Type == event.EventCollisionBegin {
			begin = &events[i]
			break
		}
	}
	if begin == nil {
		t.Fatal("overlap produced no begin event")
	}
	if !begin.Collision.Sensor {
		t.Error("sensor pair not flagged")
	}
	pair := map[core.Entity]bool{begin.Collision.A: true, begin.Collision.B: true}
	if !pair[solid] || !pair[sensor] {
		t.Errorf("event pair %d/%d, want %d/%d",
			begin.Collision.A, begin.Collision.B, solid, sensor)
	}
}

func TestSensorDoesNotStopMotion(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{}, core.Rect{})

	zone := addBody(w, 50, 0, component.Collider{Shape: component.ShapeBox, Width: 20, Height: 20, IsSensor: true})
	w.AddTag(zone, StaticTag)
	mover := addBody(w, 0, 0, component.Collider{Shape: component.ShapeBox, Width: 10, Height: 10})
	if v := w.Components.Velocity.GetPtr(mover); v != nil {
		v.VX = 100
	}
	a.EnsureBodies(w)

	// Two seconds carries the mover straight through the sensor zone
	for i := 0; i < 120; i++ {
		a.ApplyVelocities(w)
		a.Step(dt)
		a.SyncToWorld(w)
	}

	crossed := false
	for _, ev := range w.Events().Drain() {
		if ev.Type == event.EventCollisionBegin && ev.Collision.Sensor {
			crossed = true
		}
	}
	if !crossed {
		t.Fatal("mover never overlapped the sensor")
	}

	// Overlap is reported, motion is untouched
	v, _ := w.Components.Velocity.Get(mover)
	if v.VX != 100 {
		t.Errorf("VX = %g, want 100 unchanged", v.VX)
	}
	tr, _ := w.Components.Transform.Get(mover)
	if tr.X < 199 || tr.X > 201 {
		t.Errorf("X = %g, want ~200 past the sensor", tr.X)
	}
	if tr.Y != 0 {
		t.Errorf("Y drifted to %g", tr.Y)
	}
}

func TestFenceContactsStayInternal(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{Y: 1}, core.Rect{Width: 400, Height: 300})

	addBody(w, 200, 250, component.Collider{Shape: component.ShapeBox, Width: 20, Height: 20})
	a.EnsureBodies(w)

	// Falls onto the fence floor and rests there
	for i := 0; i < 120; i++ {
		a.ApplyVelocities(w)
		a.Step(dt)
		a.SyncToWorld(w)
	}

	// Fence shapes address no entity; their contacts must not surface
	for _, ev := range w.Events().Drain() {
		if ev.Type == event.EventCollisionBegin || ev.Type == event.EventCollisionEnd {
			t.Errorf("fence contact reported: %+v", ev.Collision)
		}
	}
}

func TestDestroyRemovesBody(t *testing.T) {
	w, a := newPhysicsWorld()
	e := addBody(w, 0, 0, component.Collider{Shape: component.ShapeBox, Width: 10, Height: 10})
	a.EnsureBodies(w)
	if !a.HasBody(e) {
		t.Fatal("body missing after EnsureBodies")
	}

	w.DestroyEntity(e)
	if a.HasBody(e) {
		t.Error("destroy left the body in the space")
	}
	if a.BodyCount() != 0 {
		t.Errorf("BodyCount = %d, want 0", a.BodyCount())
	}
}

func TestWorldBoundsFence(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{Y: 1}, core.Rect{Width: 400, Height: 300})

	e := addBody(w, 200, 250, component.Collider{Shape: component.ShapeBox, Width: 20, Height: 20})
	a.EnsureBodies(w)

	// Two simulated seconds of gravity would fall far past the floor
	for i := 0; i < 120; i++ {
		a.ApplyVelocities(w)
		a.Step(dt)
		a.SyncToWorld(w)
	}
	tr, _ := w.Components.Transform.Get(e)
	if tr.Y > 300 {
		t.Errorf("body escaped the fence: y = %g", tr.Y)
	}
}

func TestClearResetsSpace(t *testing.T) {
	w, a := newPhysicsWorld()
	a.Configure(core.Vec2{Y: 1}, core.Rect{Width: 100, Height: 100})
	e := addBody(w, 50, 50, component.Collider{Shape: component.ShapeBox, Width: 10, Height: 10})
	a.EnsureBodies(w)

	a.Clear()
	if a.HasBody(e) || a.BodyCount() != 0 {
		t.Error("Clear left bodies behind")
	}
	if g := a.Gravity(); g.X != 0 || g.Y != 0 {
		t.Errorf("Clear kept gravity %+v", g)
	}
}
