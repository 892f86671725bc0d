package input

import (
	"testing"
	"time"
)

func TestSetAndSnapshot(t *testing.T) {
	s := NewState()
	s.SetLeft(true)
	s.SetJump(true)
	s.SetMouse(10, 20, true)

	snap := s.Snapshot()
	if !snap.Left || !snap.Jump || snap.Right {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.MouseX != 10 || snap.MouseY != 20 || !snap.MouseDown {
		t.Errorf("mouse = (%g, %g, %v)", snap.MouseX, snap.MouseY, snap.MouseDown)
	}

	s.SetLeft(false)
	if s.Snapshot().Left {
		t.Error("release not recorded")
	}
}

func TestTapExpires(t *testing.T) {
	s := NewState()
	s.TapRight(10 * time.Millisecond)

	if !s.Snapshot().Right {
		t.Fatal("tap not held")
	}
	time.Sleep(20 * time.Millisecond)
	if s.Snapshot().Right {
		t.Error("tap did not expire")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s.SetDown(true)
	s.TapJump(time.Hour)
	s.Reset()

	snap := s.Snapshot()
	if snap.Down || snap.Jump {
		t.Errorf("Reset left keys held: %+v", snap)
	}
}
