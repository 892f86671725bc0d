package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/event"
	"github.com/lixenwraith/sim2d/parameter"
)

// All shapes share one collision type so a single handler sees every pair
const shapeCollisionType cp.CollisionType = 1

// StaticTag marks entities whose bodies never move
const StaticTag = "static"

// Adapter owns the rigid-body backend and its side tables. Bodies are
// keyed by entity id; the world never sees backend handles. The adapter
// is the sole Transform writer for bodied entities.
type Adapter struct {
	log   *zap.Logger
	space *cp.Space
	queue *event.Queue

	bodies map[core.Entity]*cp.Body
	shapes map[core.Entity]*cp.Shape

	// Colliders that failed body creation; skipped without relogging
	skipped map[core.Entity]struct{}

	fence   []*cp.Shape
	gravity core.Vec2
	bounds  core.Rect
}

// NewAdapter creates an adapter with an empty space
func NewAdapter(log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{
		log:     log,
		bodies:  make(map[core.Entity]*cp.Body),
		shapes:  make(map[core.Entity]*cp.Shape),
		skipped: make(map[core.Entity]struct{}),
	}
	a.space = a.newSpace()
	return a
}

func (a *Adapter) newSpace() *cp.Space {
	space := cp.NewSpace()
	handler := space.NewCollisionHandler(shapeCollisionType, shapeCollisionType)
	handler.BeginFunc = a.onBegin
	handler.SeparateFunc = a.onSeparate
	return space
}

// Attach wires the adapter to a world: destroyed entities drop their
// bodies, and contact events land on the world queue
func (a *Adapter) Attach(w *engine.World) {
	a.queue = w.Events()
	w.OnDestroy(a.RemoveBody)
}

// Configure applies document-level settings. Gravity is in spec units;
// the adapter scales it to px/s². A positive bounds rect grows a static
// fence so nothing escapes the world.
func (a *Adapter) Configure(gravity core.Vec2, bounds core.Rect) {
	a.gravity = gravity
	a.bounds = bounds
	a.space.SetGravity(cp.Vector{
		X: gravity.X * parameter.GravityScale,
		Y: gravity.Y * parameter.GravityScale,
	})
	a.rebuildFence()
}

func (a *Adapter) rebuildFence() {
	for _, s := range a.fence {
		a.space.RemoveShape(s)
	}
	a.fence = nil
	if a.bounds.Width <= 0 || a.bounds.Height <= 0 {
		return
	}
	t := parameter.FenceThickness
	w, h := a.bounds.Width, a.bounds.Height
	corners := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: w, Y: 0}},
		{{X: w, Y: 0}, {X: w, Y: h}},
		{{X: w, Y: h}, {X: 0, Y: h}},
		{{X: 0, Y: h}, {X: 0, Y: 0}},
	}
	for _, seg := range corners {
		shape := a.space.AddShape(cp.NewSegment(a.space.StaticBody, seg[0], seg[1], t))
		shape.SetFriction(parameter.BodyFriction)
		shape.SetCollisionType(shapeCollisionType)
		a.fence = append(a.fence, shape)
	}
}

// HasBody reports whether the entity owns a rigid body
func (a *Adapter) HasBody(e core.Entity) bool {
	_, ok := a.bodies[e]
	return ok
}

// BodyCount returns the number of live bodies
func (a *Adapter) BodyCount() int {
	return len(a.bodies)
}

// EnsureBody creates the rigid body for an entity's collider if it does
// not exist yet. Degenerate colliders are logged once and skipped.
func (a *Adapter) EnsureBody(w *engine.World, e core.Entity) error {
	if _, ok := a.bodies[e]; ok {
		return nil
	}
	if _, bad := a.skipped[e]; bad {
		return nil
	}
	col, ok := w.Components.Collider.Get(e)
	if !ok {
		return nil
	}
	tr, ok := w.Components.Transform.Get(e)
	if !ok {
		tr = component.Transform{ScaleX: 1, ScaleY: 1}
	}

	if err := a.checkCollider(e, &col); err != nil {
		a.skipped[e] = struct{}{}
		a.log.Warn("skipping degenerate collider",
			zap.Uint64("entity", uint64(e)),
			zap.Error(err))
		return err
	}

	var body *cp.Body
	if w.HasTag(e, StaticTag) {
		body = cp.NewStaticBody()
	} else {
		// Infinite moment keeps bodies upright; rotation stays authored
		body = cp.NewBody(parameter.BodyMass, cp.INFINITY)
	}
	body.SetPosition(cp.Vector{X: tr.X, Y: tr.Y})
	body.UserData = e
	a.space.AddBody(body)

	var shape *cp.Shape
	switch col.Shape {
	case component.ShapeCircle:
		shape = cp.NewCircle(body, col.Radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, col.Width, col.Height, 0)
	}
	shape.SetFriction(parameter.BodyFriction)
	shape.SetCollisionType(shapeCollisionType)
	shape.SetSensor(col.IsSensor)
	shape.UserData = e
	a.space.AddShape(shape)

	a.bodies[e] = body
	a.shapes[e] = shape
	return nil
}

func (a *Adapter) checkCollider(e core.Entity, col *component.Collider) error {
	switch col.Shape {
	case component.ShapeCircle:
		if col.Radius <= 0 {
			return &BodyError{Entity: uint64(e), Reason: "circle radius must be positive"}
		}
	case component.ShapeBox:
		if col.Width <= 0 || col.Height <= 0 {
			return &BodyError{Entity: uint64(e), Reason: "box dimensions must be positive"}
		}
	default:
		return &BodyError{Entity: uint64(e), Reason: "unknown shape " + string(col.Shape)}
	}
	return nil
}

// EnsureBodies scans for colliders that do not have bodies yet
// Runs each step so entities spawned mid-run get their bodies
func (a *Adapter) EnsureBodies(w *engine.World) {
	for _, e := range w.Components.Collider.Entities() {
		_ = a.EnsureBody(w, e)
	}
}

// ApplyVelocities pushes component velocities into the bodies before a
// step. Systems steer bodied entities by writing Velocity only.
func (a *Adapter) ApplyVelocities(w *engine.World) {
	for e, body := range a.bodies {
		if body.GetType() == cp.BODY_STATIC {
			continue
		}
		if v, ok := w.Components.Velocity.Get(e); ok {
			body.SetVelocity(v.VX, v.VY)
		}
	}
}

// Step advances the space by dt seconds
func (a *Adapter) Step(dt float64) {
	a.space.Step(dt)
}

// SyncToWorld copies body state back into the components after a step.
// This is the only Transform write path for bodied entities; gravity and
// collision response reach the components here.
func (a *Adapter) SyncToWorld(w *engine.World) {
	for e, body := range a.bodies {
		if body.GetType() == cp.BODY_STATIC {
			continue
		}
		if t := w.Components.Transform.GetPtr(e); t != nil {
			pos := body.Position()
			t.X = pos.X
			t.Y = pos.Y
			t.Rotation = body.Angle() * 180 / math.Pi
		}
		if v := w.Components.Velocity.GetPtr(e); v != nil {
			vel := body.Velocity()
			v.VX = vel.X
			v.VY = vel.Y
		}
	}
}

// RemoveBody drops an entity's body and shape from the space
// Safe to call for entities without bodies
func (a *Adapter) RemoveBody(e core.Entity) {
	delete(a.skipped, e)
	if shape, ok := a.shapes[e]; ok {
		a.space.RemoveShape(shape)
		delete(a.shapes, e)
	}
	if body, ok := a.bodies[e]; ok {
		a.space.RemoveBody(body)
		delete(a.bodies, e)
	}
}

// Clear drops every body and rebuilds an empty space
// Used on spec reload before Configure runs again
func (a *Adapter) Clear() {
	a.bodies = make(map[core.Entity]*cp.Body)
	a.shapes = make(map[core.Entity]*cp.Shape)
	a.skipped = make(map[core.Entity]struct{})
	a.fence = nil
	a.space = a.newSpace()
	a.gravity = core.Vec2{}
	a.bounds = core.Rect{}
}

// Gravity returns the configured spec-unit gravity
func (a *Adapter) Gravity() core.Vec2 {
	return a.gravity
}

// Bounds returns the configured world bounds
func (a *Adapter) Bounds() core.Rect {
	return a.bounds
}

func (a *Adapter) onBegin(arb *cp.Arbiter, _ *cp.Space, _ any) bool {
	a.pushContact(arb, event.EventCollisionBegin)
	return true
}

func (a *Adapter) onSeparate(arb *cp.Arbiter, _ *cp.Space, _ any) {
	a.pushContact(arb, event.EventCollisionEnd)
}

// pushContact enqueues a contact pair. Fence shapes carry no entity id;
// contacts against them stay inside the space and never reach consumers.
func (a *Adapter) pushContact(arb *cp.Arbiter, typ event.Type) {
	if a.queue == nil {
		return
	}
	sa, sb := arb.Shapes()
	ea, _ := sa.UserData.(core.Entity)
	eb, _ := sb.UserData.(core.Entity)
	if ea == core.InvalidEntity || eb == core.InvalidEntity {
		return
	}
	a.queue.Push(event.Event{
		Type: typ,
		Collision: event.Collision{
			A:      ea,
			B:      eb,
			Sensor: sa.Sensor() || sb.Sensor(),
		},
	})
}
