package registry

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/lixenwraith/sim2d/engine"
)

// Factory constructs a system bound to a world
type Factory func(w *engine.World) engine.System

var factories = make(map[string]Factory)

// Register binds a system name to its factory. Spec documents reference
// systems by these names. Re-registering a name overwrites it, which lets
// embedders replace a built-in.
func Register(name string, fn Factory) {
	if name == "" || fn == nil {
		return
	}
	factories[name] = fn
}

// Known reports whether a system name is registered
func Known(name string) bool {
	_, ok := factories[name]
	return ok
}

// Names returns the registered system names, sorted
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New instantiates the named system against a world
func New(name string, w *engine.World) (engine.System, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, eris.Errorf("registry: unknown system %q", name)
	}
	return fn(w), nil
}
