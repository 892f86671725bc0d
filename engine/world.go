package engine

import (
	"sort"

	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/event"
)

// System is implemented by all simulation systems
// Init runs once before the first Update; Update runs every fixed tick
// in registration order — order is part of the contract because later
// systems read earlier systems' writes within the same tick
type System interface {
	Init(w *World)
	Update(w *World, dt float64)
	Name() string
}

// World owns all logical game state: entities, components, tags, names,
// the texture registry and the registered systems. Backend resources
// (physics bodies, textures) live in the adapters' side tables, keyed by
// entity id.
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resources  *ResourceStore

	tags       map[string]map[core.Entity]struct{}
	entityTags map[core.Entity]map[string]struct{}

	names  map[string]core.Entity
	nameOf map[core.Entity]string

	textures map[string]string // asset name -> path/URL

	systems     []System
	initialized map[System]struct{}

	events *event.Queue

	destroyListeners []func(core.Entity)
	tick             uint64
}

// NewWorld creates an empty ECS world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Resources:    NewResourceStore(),
		tags:         make(map[string]map[core.Entity]struct{}),
		entityTags:   make(map[core.Entity]map[string]struct{}),
		names:        make(map[string]core.Entity),
		nameOf:       make(map[core.Entity]string),
		textures:     make(map[string]string),
		initialized:  make(map[System]struct{}),
		events:       event.NewQueue(),
	}
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether the id refers to a live entity
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes an entity, all its components, tags and name.
// Idempotent: destroying twice or destroying an unknown id is a no-op.
// Adapters registered through OnDestroy release their side-table
// resources before the storage is dropped.
func (w *World) DestroyEntity(e core.Entity) {
	if _, ok := w.alive[e]; !ok {
		return
	}
	for _, fn := range w.destroyListeners {
		fn(e)
	}

	w.Components.removeAll(e)

	if tags, ok := w.entityTags[e]; ok {
		for tag := range tags {
			delete(w.tags[tag], e)
		}
		delete(w.entityTags, e)
	}

	if name, ok := w.nameOf[e]; ok {
		delete(w.names, name)
		delete(w.nameOf, e)
	}

	delete(w.alive, e)
	w.events.Push(event.Event{Type: event.EventEntityDestroyed, Entity: e, Tick: w.tick})
}

// OnDestroy registers a callback fired at the start of DestroyEntity
// Used by the physics and render adapters to drop backend resources
func (w *World) OnDestroy(fn func(core.Entity)) {
	w.destroyListeners = append(w.destroyListeners, fn)
}

// AddTag attaches a string label to an entity
func (w *World) AddTag(e core.Entity, tag string) {
	if _, ok := w.alive[e]; !ok || tag == "" {
		return
	}
	if w.tags[tag] == nil {
		w.tags[tag] = make(map[core.Entity]struct{})
	}
	w.tags[tag][e] = struct{}{}
	if w.entityTags[e] == nil {
		w.entityTags[e] = make(map[string]struct{})
	}
	w.entityTags[e][tag] = struct{}{}
}

// RemoveTag detaches a label; unknown tags are a no-op
func (w *World) RemoveTag(e core.Entity, tag string) {
	if set, ok := w.tags[tag]; ok {
		delete(set, e)
	}
	if set, ok := w.entityTags[e]; ok {
		delete(set, tag)
	}
}

// HasTag reports tag membership
func (w *World) HasTag(e core.Entity, tag string) bool {
	if set, ok := w.entityTags[e]; ok {
		_, has := set[tag]
		return has
	}
	return false
}

// Tags returns the labels on an entity, sorted for stable output
func (w *World) Tags(e core.Entity) []string {
	set, ok := w.entityTags[e]
	if !ok || len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// EntitiesWithTag returns ids carrying the tag in creation order
// Unknown tags yield an empty slice, never an error
func (w *World) EntitiesWithTag(tag string) []core.Entity {
	set, ok := w.tags[tag]
	if !ok || len(set) == 0 {
		return nil
	}
	out := make([]core.Entity, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetName binds the external spec name for an entity
// Names address entities across the runtime boundary; ids do not leak
func (w *World) SetName(e core.Entity, name string) {
	if _, ok := w.alive[e]; !ok || name == "" {
		return
	}
	if old, ok := w.nameOf[e]; ok {
		delete(w.names, old)
	}
	w.names[name] = e
	w.nameOf[e] = name
}

// EntityByName resolves a spec name to a live entity id
func (w *World) EntityByName(name string) (core.Entity, bool) {
	e, ok := w.names[name]
	return e, ok
}

// Name returns the spec name of an entity, empty if unnamed
func (w *World) Name(e core.Entity) string {
	return w.nameOf[e]
}

// RegisterTexture maps an asset name to its source path
// Re-registration overwrites the mapping
func (w *World) RegisterTexture(name, path string) {
	if name == "" {
		return
	}
	w.textures[name] = path
}

// Textures returns a copy of the registry
func (w *World) Textures() map[string]string {
	out := make(map[string]string, len(w.textures))
	for k, v := range w.textures {
		out[k] = v
	}
	return out
}

// RegisterSystem appends a system, preserving registration order
func (w *World) RegisterSystem(sys System) {
	w.systems = append(w.systems, sys)
}

// Systems returns the registered systems in order
func (w *World) Systems() []System {
	return w.systems
}

// Update advances every registered system by dt, in registration order.
// First-time systems get their Init call immediately before their first
// Update so mid-run registration behaves the same as load-time.
func (w *World) Update(dt float64) {
	w.tick++
	AddResource(w.Resources, &TimeResource{
		Delta:   dt,
		Elapsed: w.elapsed() + dt,
		Tick:    w.tick,
	})
	for _, sys := range w.systems {
		if _, done := w.initialized[sys]; !done {
			sys.Init(w)
			w.initialized[sys] = struct{}{}
		}
		sys.Update(w, dt)
	}
}

func (w *World) elapsed() float64 {
	if tr, ok := GetResource[*TimeResource](w.Resources); ok {
		return tr.Elapsed
	}
	return 0
}

// Tick returns the current fixed tick index
func (w *World) Tick() uint64 {
	return w.tick
}

// Events exposes the world event queue shared with the adapters
func (w *World) Events() *event.Queue {
	return w.events
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Entities returns all live ids in creation order
func (w *World) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(w.alive))
	for e := range w.alive {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear removes every entity, component, tag, name, texture, system and
// pending event. Used by spec reload; destroy listeners stay registered.
func (w *World) Clear() {
	for e := range w.alive {
		for _, fn := range w.destroyListeners {
			fn(e)
		}
	}
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	w.Components.clear()
	w.Resources.clear()
	w.tags = make(map[string]map[core.Entity]struct{})
	w.entityTags = make(map[core.Entity]map[string]struct{})
	w.names = make(map[string]core.Entity)
	w.nameOf = make(map[core.Entity]string)
	w.textures = make(map[string]string)
	w.systems = nil
	w.initialized = make(map[System]struct{})
	w.events.Reset()
	w.tick = 0
}
