package registry

import (
	"testing"

	"github.com/lixenwraith/sim2d/engine"
	"github.com/lixenwraith/sim2d/system"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{
		"physics", "input", "collision", "animation",
		"camera", "particles", "audio", "ai", "health",
	} {
		if !Known(name) {
			t.Errorf("built-in %q not registered", name)
		}
	}
}

func TestNewBindsWorld(t *testing.T) {
	w := engine.NewWorld()
	sys, err := New("animation", w)
	if err != nil {
		t.Fatal(err)
	}
	if sys.Name() != "animation" {
		t.Errorf("Name = %q", sys.Name())
	}
}

func TestNewUnknownSystem(t *testing.T) {
	if _, err := New("warp-drive", engine.NewWorld()); err == nil {
		t.Error("unknown system must error")
	}
}

func TestRegisterOverride(t *testing.T) {
	called := false
	Register("animation", func(w *engine.World) engine.System {
		called = true
		return system.NewAnimationSystem(w)
	})
	// Restore the built-in for any test that follows
	defer Register("animation", func(w *engine.World) engine.System {
		return system.NewAnimationSystem(w)
	})

	_, _ = New("animation", engine.NewWorld())
	if !called {
		t.Error("override factory not used")
	}
}
