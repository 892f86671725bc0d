package event

import (
	"github.com/lixenwraith/sim2d/core"
)

// Type discriminates queue entries
type Type uint8

const (
	EventNone Type = iota
	EventCollisionBegin
	EventCollisionEnd
	EventEntityDestroyed
)

// Collision is the payload for begin/end contact events
// Sensor marks overlap-only contacts that carry no physical response
type Collision struct {
	A, B   core.Entity
	Sensor bool
}

// Event is a single queue entry
// Tick records the fixed tick the event was raised on
type Event struct {
	Type      Type
	Collision Collision
	Entity    core.Entity
	Tick      uint64
}
