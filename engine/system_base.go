package engine

// SystemBase provides common dependencies for all systems
// Embed in system structs to eliminate boilerplate
type SystemBase struct {
	World      *World
	Components *ComponentStore
}

// NewSystemBase initializes base dependencies from world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:      w,
		Components: &w.Components,
	}
}

// Init satisfies System for systems with no setup of their own
func (b *SystemBase) Init(_ *World) {}
