package engine

import (
	"testing"

	"github.com/lixenwraith/sim2d/component"
	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/event"
)

func TestWorldEntityLifecycle(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Fatal("ids must be unique")
	}
	if !w.Alive(a) || !w.Alive(b) {
		t.Fatal("created entities must be alive")
	}

	w.Components.Transform.Set(a, component.Transform{X: 1})
	w.AddTag(a, "player")
	w.SetName(a, "hero")

	w.DestroyEntity(a)
	if w.Alive(a) {
		t.Error("destroyed entity still alive")
	}
	if w.Components.Transform.Has(a) {
		t.Error("components must be dropped on destroy")
	}
	if w.HasTag(a, "player") {
		t.Error("tags must be dropped on destroy")
	}
	if _, ok := w.EntityByName("hero"); ok {
		t.Error("name must be dropped on destroy")
	}

	// Ids are never reused
	c := w.CreateEntity()
	if c == a {
		t.Error("destroyed id was reused")
	}
}

func TestWorldDestroyIdempotent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	calls := 0
	w.OnDestroy(func(core.Entity) { calls++ })

	w.DestroyEntity(e)
	w.DestroyEntity(e)
	w.DestroyEntity(12345)

	if calls != 1 {
		t.Errorf("destroy listeners fired %d times, want 1", calls)
	}
	if w.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", w.EntityCount())
	}
}

func TestWorldDestroyEmitsEvent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	events := w.Events().Drain()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != event.EventEntityDestroyed || events[0].Entity != e {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestWorldTagQueries(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.AddTag(b, "enemy")
	w.AddTag(a, "enemy")
	w.AddTag(c, "boss")
	w.AddTag(c, "enemy")

	got := w.EntitiesWithTag("enemy")
	want := []core.Entity{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("EntitiesWithTag len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EntitiesWithTag[%d] = %d, want %d (creation order)", i, got[i], want[i])
		}
	}

	if got := w.EntitiesWithTag("nothing"); len(got) != 0 {
		t.Errorf("unknown tag returned %v", got)
	}

	w.RemoveTag(b, "enemy")
	if w.HasTag(b, "enemy") {
		t.Error("RemoveTag did not remove")
	}
}

func TestWorldNames(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.SetName(e, "door")

	if got, ok := w.EntityByName("door"); !ok || got != e {
		t.Errorf("EntityByName = %d, %v", got, ok)
	}
	if w.Name(e) != "door" {
		t.Errorf("Name = %q", w.Name(e))
	}

	// Renaming releases the old binding
	w.SetName(e, "gate")
	if _, ok := w.EntityByName("door"); ok {
		t.Error("old name still resolves")
	}
	if got, _ := w.EntityByName("gate"); got != e {
		t.Error("new name does not resolve")
	}
}

type orderSystem struct {
	SystemBase
	name  string
	trace *[]string
}

func (s *orderSystem) Name() string { return s.name }
func (s *orderSystem) Init(*World)  { *s.trace = append(*s.trace, "init:"+s.name) }
func (s *orderSystem) Update(*World, float64) {
	*s.trace = append(*s.trace, s.name)
}

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld()
	var trace []string
	w.RegisterSystem(&orderSystem{name: "a", trace: &trace})
	w.RegisterSystem(&orderSystem{name: "b", trace: &trace})

	w.Update(1.0 / 60.0)
	w.Update(1.0 / 60.0)

	want := []string{"init:a", "a", "init:b", "b", "a", "b"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
	if w.Tick() != 2 {
		t.Errorf("Tick = %d, want 2", w.Tick())
	}
}

func TestWorldTimeResource(t *testing.T) {
	w := NewWorld()
	w.Update(0.5)
	w.Update(0.5)

	tr, ok := GetResource[*TimeResource](w.Resources)
	if !ok {
		t.Fatal("TimeResource missing")
	}
	if tr.Elapsed != 1.0 {
		t.Errorf("Elapsed = %g, want 1.0", tr.Elapsed)
	}
	if tr.Tick != 2 {
		t.Errorf("Tick = %d, want 2", tr.Tick)
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Components.Velocity.Set(e, component.Velocity{VX: 1})
	w.AddTag(e, "x")
	w.SetName(e, "n")
	w.RegisterTexture("tex", "tex.png")
	var trace []string
	w.RegisterSystem(&orderSystem{name: "s", trace: &trace})

	fired := 0
	w.OnDestroy(func(core.Entity) { fired++ })

	w.Clear()

	if fired != 1 {
		t.Errorf("destroy listeners fired %d times during Clear, want 1", fired)
	}
	if w.EntityCount() != 0 || len(w.Systems()) != 0 || len(w.Textures()) != 0 {
		t.Error("Clear left state behind")
	}

	// Listeners survive a clear so adapters stay wired across reloads
	e2 := w.CreateEntity()
	w.DestroyEntity(e2)
	if fired != 2 {
		t.Error("destroy listener lost after Clear")
	}
}
