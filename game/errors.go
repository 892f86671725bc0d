package game

import "fmt"

// RuntimeStateError reports an operation invoked in a lifecycle phase
// that cannot serve it, such as starting before a load or anything
// after destruction
type RuntimeStateError struct {
	Op    string
	State string
}

func (e *RuntimeStateError) Error() string {
	return fmt.Sprintf("game: cannot %s while %s", e.Op, e.State)
}
