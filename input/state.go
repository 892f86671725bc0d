package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/sim2d/engine"
)

// State is the device-facing input accumulator. The event goroutine
// writes held keys and pointer position; the tick goroutine snapshots it
// once per fixed step into the world's InputResource.
//
// Hosts with real key-up events use the Set methods. Terminal hosts only
// see key-down repeats, so Tap holds a key for a short expiry window that
// each repeat refreshes.
type State struct {
	mu  sync.Mutex
	cur engine.InputResource

	leftUntil  time.Time
	rightUntil time.Time
	upUntil    time.Time
	downUntil  time.Time
	jumpUntil  time.Time
}

func NewState() *State {
	return &State{}
}

// SetLeft, SetRight, SetUp, SetDown and SetJump record held direction keys

func (s *State) SetLeft(down bool)  { s.mu.Lock(); s.cur.Left = down; s.mu.Unlock() }
func (s *State) SetRight(down bool) { s.mu.Lock(); s.cur.Right = down; s.mu.Unlock() }
func (s *State) SetUp(down bool)    { s.mu.Lock(); s.cur.Up = down; s.mu.Unlock() }
func (s *State) SetDown(down bool)  { s.mu.Lock(); s.cur.Down = down; s.mu.Unlock() }
func (s *State) SetJump(down bool)  { s.mu.Lock(); s.cur.Jump = down; s.mu.Unlock() }

// SetMouse records the pointer in world pixels plus the button state
func (s *State) SetMouse(x, y float64, down bool) {
	s.mu.Lock()
	s.cur.MouseX = x
	s.cur.MouseY = y
	s.cur.MouseDown = down
	s.mu.Unlock()
}

// TapLeft, TapRight, TapUp, TapDown and TapJump hold a key until the
// duration expires; repeats before expiry extend the hold

func (s *State) TapLeft(d time.Duration)  { s.mu.Lock(); s.leftUntil = time.Now().Add(d); s.mu.Unlock() }
func (s *State) TapRight(d time.Duration) { s.mu.Lock(); s.rightUntil = time.Now().Add(d); s.mu.Unlock() }
func (s *State) TapUp(d time.Duration)    { s.mu.Lock(); s.upUntil = time.Now().Add(d); s.mu.Unlock() }
func (s *State) TapDown(d time.Duration)  { s.mu.Lock(); s.downUntil = time.Now().Add(d); s.mu.Unlock() }
func (s *State) TapJump(d time.Duration)  { s.mu.Lock(); s.jumpUntil = time.Now().Add(d); s.mu.Unlock() }

// Snapshot returns the current device state by value, folding in any
// unexpired taps
func (s *State) Snapshot() engine.InputResource {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	snap := s.cur
	snap.Left = snap.Left || now.Before(s.leftUntil)
	snap.Right = snap.Right || now.Before(s.rightUntil)
	snap.Up = snap.Up || now.Before(s.upUntil)
	snap.Down = snap.Down || now.Before(s.downUntil)
	snap.Jump = snap.Jump || now.Before(s.jumpUntil)
	return snap
}

// Publish copies the snapshot into the world for this tick's systems
func (s *State) Publish(w *engine.World) {
	snap := s.Snapshot()
	engine.AddResource(w.Resources, &snap)
}

// Reset releases every held key and tap, used when focus is lost
func (s *State) Reset() {
	s.mu.Lock()
	s.cur = engine.InputResource{}
	s.leftUntil = time.Time{}
	s.rightUntil = time.Time{}
	s.upUntil = time.Time{}
	s.downUntil = time.Time{}
	s.jumpUntil = time.Time{}
	s.mu.Unlock()
}
