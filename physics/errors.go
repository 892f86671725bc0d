package physics

import "fmt"

// BodyError reports a collider that cannot produce a valid rigid body
// The adapter logs it and skips the entity; simulation continues
type BodyError struct {
	Entity uint64
	Reason string
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("physics: entity %d: %s", e.Entity, e.Reason)
}
